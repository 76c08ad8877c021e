package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mediveda/healthbot/internal/assistant"
	"github.com/mediveda/healthbot/internal/catalog"
	"github.com/mediveda/healthbot/internal/chatlog"
	"github.com/mediveda/healthbot/internal/config"
	"github.com/mediveda/healthbot/internal/db"
	"github.com/mediveda/healthbot/internal/knowledge"
	mcpserver "github.com/mediveda/healthbot/internal/mcp"
	"github.com/mediveda/healthbot/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the store assistant and catalog search as tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		database, err := db.Open(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		catalogStore := catalog.NewStore(database)
		knowledgeStore := knowledge.NewStore(database)
		logStore := chatlog.NewStore(database)
		dispatcher := chatlog.NewDispatcher(logStore, cfg.Assistant.LogBuffer)
		defer dispatcher.Close()

		sessions := session.NewStore(
			session.WithTTL(time.Duration(cfg.Session.TTLMinutes) * time.Minute),
		)

		bot := assistant.New(catalogStore, knowledgeStore, sessions, dispatcher,
			assistant.WithMaxResults(cfg.Assistant.MaxResults),
			assistant.WithListingLimit(cfg.Assistant.ListingLimit),
			assistant.WithFuzzyCutoff(cfg.Assistant.FuzzyCutoff),
			assistant.WithStoreName(cfg.StoreName),
		)

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		products, _ := catalogStore.Count(cmd.Context())
		fmt.Fprintf(os.Stderr, "healthbot MCP server started on stdio (db=%s, products=%d)\n", cfg.DatabasePath, products)

		srv := mcpserver.NewServer(bot, catalogStore, dispatcher)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
