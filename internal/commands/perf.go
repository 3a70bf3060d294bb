package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jaiyan-th/portfolio/internal/perf"
	"github.com/spf13/cobra"
)

var (
	perfStaticDir    string
	perfTemplatesDir string
	perfBaseURL      string
	perfSamples      int
	perfReportPath   string
)

var perfCmd = &cobra.Command{
	Use:   "perf",
	Short: "Validate asset optimizations and sample endpoint latency",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Testing file size optimizations...")
		sizeChecks := perf.CheckMinifiedSizes(perfStaticDir)
		printChecks(sizeChecks)

		fmt.Println("Testing gzip compression...")
		gzipChecks := perf.CheckGzipCompression(perfStaticDir)
		printChecks(gzipChecks)

		fmt.Println("Testing accessibility features...")
		accessChecks := perf.CheckAccessibilityFeatures(perfTemplatesDir, perfStaticDir)
		printChecks(accessChecks)

		fmt.Println("Testing SEO features...")
		seoChecks := perf.CheckSEOFeatures(perfTemplatesDir, perfStaticDir)
		printChecks(seoChecks)

		fmt.Println("Testing performance features...")
		performanceChecks := perf.CheckPerformanceFeatures(perfTemplatesDir, perfStaticDir)
		printChecks(performanceChecks)

		var stats []perf.EndpointStat
		if perfBaseURL != "" {
			fmt.Printf("Sampling endpoints at %s...\n", perfBaseURL)
			paths := []string{"/api/projects", "/api/projects/featured", "/api/skills", "/health"}
			stats = perf.MeasureEndpoints(perfBaseURL, paths, perfSamples)
			for _, stat := range stats {
				if stat.Err != nil {
					color.Red("  %s: %v", stat.Path, stat.Err)
					continue
				}
				fmt.Printf("  %s: status %d, avg %s\n", stat.Path, stat.Status, stat.Avg)
			}
		}

		report := perf.GenerateReport(sizeChecks, gzipChecks, accessChecks, seoChecks, performanceChecks, stats)
		if err := os.WriteFile(perfReportPath, []byte(report), 0644); err != nil {
			return err
		}
		fmt.Printf("Report saved to %s\n", perfReportPath)

		var all []perf.Check
		for _, group := range [][]perf.Check{sizeChecks, gzipChecks, accessChecks, seoChecks, performanceChecks} {
			all = append(all, group...)
		}
		for _, check := range all {
			if !check.OK {
				return fmt.Errorf("performance checks failed")
			}
		}
		return nil
	},
}

func printChecks(checks []perf.Check) {
	for _, check := range checks {
		if check.OK {
			color.Green("  %s", check.Detail)
		} else {
			color.Red("  %s", check.Detail)
		}
	}
}

func init() {
	perfCmd.Flags().StringVar(&perfStaticDir, "static", "web/static", "static asset directory")
	perfCmd.Flags().StringVar(&perfTemplatesDir, "templates", "web/templates", "directory of HTML templates")
	perfCmd.Flags().StringVar(&perfBaseURL, "base-url", "", "base URL of a running server to sample (optional)")
	perfCmd.Flags().IntVar(&perfSamples, "samples", 5, "latency samples per endpoint")
	perfCmd.Flags().StringVar(&perfReportPath, "report", "performance_test_report.md", "path of the Markdown report to write")
}
