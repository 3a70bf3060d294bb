package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jaiyan-th/portfolio/internal/repositories"
	"github.com/jaiyan-th/portfolio/internal/seed"
	"github.com/jaiyan-th/portfolio/pkg/database"
	"github.com/spf13/cobra"
)

var seedReset bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with the initial portfolio data",
	Long: `Replace the stored projects and skills with the sample portfolio data.
Contact messages are preserved unless --reset is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		closeDB, err := openDatabase()
		if err != nil {
			return err
		}
		defer closeDB()

		projectRepo := repositories.NewProjectRepository(database.DB)
		skillRepo := repositories.NewSkillRepository(database.DB)
		contactRepo := repositories.NewContactMessageRepository(database.DB)

		summary, err := seed.Run(projectRepo, skillRepo, contactRepo, seedReset)
		if err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}

		color.Green("Sample data added successfully")
		fmt.Printf("  - Added %d projects\n", summary.Projects)
		fmt.Printf("  - Added %d skills\n", summary.Skills)
		if seedReset {
			color.Yellow("  - Contact messages cleared")
		}
		fmt.Println("Database initialization complete")
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "also clear stored contact messages")
}
