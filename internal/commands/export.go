package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jaiyan-th/portfolio/internal/export"
	"github.com/jaiyan-th/portfolio/internal/repositories"
	"github.com/jaiyan-th/portfolio/internal/services"
	"github.com/jaiyan-th/portfolio/pkg/database"
	"github.com/spf13/cobra"
)

var exportOutputPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored contact messages to a spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		closeDB, err := openDatabase()
		if err != nil {
			return err
		}
		defer closeDB()

		contactRepo := repositories.NewContactMessageRepository(database.DB)
		contactService := services.NewContactService(contactRepo)

		count, err := export.MessagesToExcel(contactService, exportOutputPath)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		color.Green("Exported %d messages to %s", count, exportOutputPath)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOutputPath, "output", "contact_messages.xlsx", "path of the workbook to write")
}
