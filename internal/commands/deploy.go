package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jaiyan-th/portfolio/internal/deploy"
	"github.com/spf13/cobra"
)

var deployOutputDir string

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Generate deployment files for the portfolio server",
	Long: `Write the container, reverse-proxy and process-manager configuration
files needed to run the portfolio server in production.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(deployOutputDir, 0755); err != nil {
			return err
		}

		written, err := deploy.WriteArtifacts(deployOutputDir)
		if err != nil {
			return fmt.Errorf("artifact generation failed: %w", err)
		}

		for _, name := range written {
			color.Green("Created %s/%s", deployOutputDir, name)
		}
		fmt.Println("Deployment preparation complete")
		return nil
	},
}

func init() {
	deployCmd.Flags().StringVar(&deployOutputDir, "output", "deploy", "directory to write deployment files into")
}
