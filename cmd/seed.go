package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mediveda/healthbot/internal/catalog"
	"github.com/mediveda/healthbot/internal/config"
	"github.com/mediveda/healthbot/internal/db"
	"github.com/mediveda/healthbot/internal/importers"
	"github.com/mediveda/healthbot/internal/knowledge"
	"github.com/mediveda/healthbot/internal/progress"
)

var (
	seedPatterns []string
	seedDefaults bool
)

var seedCmd = &cobra.Command{
	Use:   "seed [dir]",
	Short: "Load products and default knowledge into the database",
	Long: `Imports product seed files (YAML) matched by glob patterns into the
catalog, and optionally installs the built-in knowledge base entries.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		database, err := db.Open(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		ctx := cmd.Context()

		if seedDefaults {
			knowledgeStore := knowledge.NewStore(database)
			for _, entry := range knowledge.DefaultEntries {
				if _, err := knowledgeStore.Create(ctx, entry); err != nil {
					return fmt.Errorf("seeding knowledge entry %q: %w", entry.Pattern, err)
				}
			}
			fmt.Fprintf(os.Stderr, "Installed %d knowledge base entries\n", len(knowledge.DefaultEntries))
		}

		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		importer := importers.New(
			catalog.NewStore(database),
			progress.NewReporter("Importing products"),
		)
		n, err := importer.Import(ctx, root, seedPatterns)
		if err != nil {
			if seedDefaults {
				// Knowledge seeding alone is a valid run.
				fmt.Fprintf(os.Stderr, "Skipped product import: %v\n", err)
				return nil
			}
			return err
		}

		fmt.Fprintf(os.Stderr, "Imported %d products\n", n)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringSliceVar(&seedPatterns, "glob", []string{"seed/**/*.yml"}, "Glob patterns for product seed files")
	seedCmd.Flags().BoolVar(&seedDefaults, "defaults", false, "Install the built-in knowledge base entries")
	rootCmd.AddCommand(seedCmd)
}
