package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jaiyan-th/portfolio/internal/assets"
	"github.com/spf13/cobra"
)

var (
	optimizeStaticDir  string
	optimizeReportPath string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Minify and compress the static CSS and JS assets",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Starting portfolio website optimization...")

		results, err := assets.OptimizeDir(optimizeStaticDir)
		if err != nil {
			return fmt.Errorf("optimization failed: %w", err)
		}

		for _, result := range results {
			fmt.Printf("  Processing %s\n", result.Name)
			color.Green("    Minified: %d chars -> %d chars (%.1f%% reduction)",
				result.OriginalSize, result.MinifiedSize, result.Reduction)
			color.Green("    Compressed: %d bytes -> %d bytes (%.1f%% reduction)",
				result.MinifiedSize, result.GzipSize, result.GzipReduction)
		}
		if len(results) == 0 {
			color.Yellow("  No assets found to optimize")
		}

		report, err := assets.GeneratePerformanceReport(optimizeStaticDir)
		if err != nil {
			return err
		}
		if err := os.WriteFile(optimizeReportPath, []byte(report), 0644); err != nil {
			return err
		}
		fmt.Printf("Performance report saved to %s\n", optimizeReportPath)
		fmt.Println("Optimization complete")
		return nil
	},
}

func init() {
	optimizeCmd.Flags().StringVar(&optimizeStaticDir, "static", "web/static", "static asset directory")
	optimizeCmd.Flags().StringVar(&optimizeReportPath, "report", "performance_report.md", "path of the Markdown report to write")
}
