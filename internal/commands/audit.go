package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/jaiyan-th/portfolio/internal/audit"
	"github.com/spf13/cobra"
)

var (
	auditTemplatesDir string
	auditReportPath   string
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit the HTML templates for accessibility and SEO issues",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := os.ReadDir(auditTemplatesDir)
		if err != nil {
			return fmt.Errorf("templates directory not found: %w", err)
		}

		auditor := audit.NewAuditor()
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
				continue
			}
			path := filepath.Join(auditTemplatesDir, entry.Name())
			fmt.Printf("Auditing %s...\n", entry.Name())
			if err := auditor.AuditFile(path); err != nil {
				return fmt.Errorf("audit of %s failed: %w", entry.Name(), err)
			}
		}

		report := auditor.GenerateReport()
		if err := os.WriteFile(auditReportPath, []byte(report), 0644); err != nil {
			return err
		}
		fmt.Printf("Report saved to %s\n\n", auditReportPath)

		fmt.Println("Summary:")
		color.Green("  Passed:   %d", len(auditor.Passed))
		color.Yellow("  Warnings: %d", len(auditor.Warnings))
		color.Red("  Issues:   %d", len(auditor.Issues))

		if len(auditor.Issues) > 0 {
			return fmt.Errorf("%d critical accessibility issues found", len(auditor.Issues))
		}
		fmt.Println("No critical accessibility issues found")
		return nil
	},
}

func init() {
	auditCmd.Flags().StringVar(&auditTemplatesDir, "templates", "web/templates", "directory of HTML templates to audit")
	auditCmd.Flags().StringVar(&auditReportPath, "report", "accessibility_report.md", "path of the Markdown report to write")
}
