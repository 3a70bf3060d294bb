package commands

import (
	"github.com/jaiyan-th/portfolio/pkg/config"
	"github.com/jaiyan-th/portfolio/pkg/database"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Operations toolbox for the portfolio website",
	Long: `The portfolio command bundles the operational tasks around the portfolio
web server: seeding the database, auditing the rendered pages for
accessibility and SEO problems, minifying static assets, generating
deployment files, and running performance checks.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// openDatabase loads configuration and opens the application database.
// The returned closer must be deferred by the caller.
func openDatabase() (func(), error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	if err := database.Init(config.AppConfig.Database.Path, config.AppConfig.Database.MigrationsDir); err != nil {
		return nil, err
	}
	return func() { _ = database.Close() }, nil
}

func init() {
	// Add all commands
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(deployCmd)
	rootCmd.AddCommand(perfCmd)
	rootCmd.AddCommand(exportCmd)
}
