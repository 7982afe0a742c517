package cli

import (
	"fmt"
	"log"

	"carv-arcade-service/internal/config"
	"carv-arcade-service/internal/content"
	"carv-arcade-service/internal/infra/postgres"

	"github.com/spf13/cobra"
)

// NewSeedCmd loads the static question set into Postgres. Safe to re-run.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the questions table from the static content set",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.Postgres.URL == "" {
				return fmt.Errorf("postgres url not configured")
			}
			if err := runMigrationsWithConfig(cmd.Context(), cfg); err != nil {
				return err
			}

			db := openBunDB(cfg.Postgres.URL)
			defer db.Close()

			questions := content.Questions()
			if err := postgres.SeedQuestions(cmd.Context(), db, questions); err != nil {
				return err
			}
			log.Printf("seeded %d questions", len(questions))
			return nil
		},
	}
}
