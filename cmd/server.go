package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mediveda/healthbot/internal/assistant"
	"github.com/mediveda/healthbot/internal/catalog"
	"github.com/mediveda/healthbot/internal/chatlog"
	"github.com/mediveda/healthbot/internal/config"
	"github.com/mediveda/healthbot/internal/dashboard"
	"github.com/mediveda/healthbot/internal/db"
	"github.com/mediveda/healthbot/internal/knowledge"
	"github.com/mediveda/healthbot/internal/server"
	"github.com/mediveda/healthbot/internal/session"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the healthbot HTTP server",
	Long:  `Starts the healthbot server with the chat API, product catalog endpoints, knowledge base curation API and the admin dashboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if serverPort != 0 {
			cfg.Server.Port = serverPort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		database, err := db.Open(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		// Stores and background workers.
		catalogStore := catalog.NewStore(database)
		knowledgeStore := knowledge.NewStore(database)
		logStore := chatlog.NewStore(database)
		dispatcher := chatlog.NewDispatcher(logStore, cfg.Assistant.LogBuffer)
		defer dispatcher.Close()

		sessions := session.NewStore(
			session.WithTTL(time.Duration(cfg.Session.TTLMinutes) * time.Minute),
		)
		stopSweeper := sessions.StartSweeper(time.Duration(cfg.Session.SweepMinutes) * time.Minute)
		defer stopSweeper()

		bot := assistant.New(catalogStore, knowledgeStore, sessions, dispatcher,
			assistant.WithMaxResults(cfg.Assistant.MaxResults),
			assistant.WithListingLimit(cfg.Assistant.ListingLimit),
			assistant.WithFuzzyCutoff(cfg.Assistant.FuzzyCutoff),
			assistant.WithStoreName(cfg.StoreName),
		)

		srv := server.New(server.Config{
			Host:           cfg.Server.Host,
			Port:           cfg.Server.Port,
			AllowedOrigins: cfg.Server.CORSOrigins,
		}, database)

		// Feature routes.
		r := srv.Router()
		catalog.RegisterRoutes(r, catalogStore)
		knowledge.RegisterRoutes(r, knowledgeStore)
		chatlog.RegisterRoutes(r, logStore)
		assistant.RegisterRoutes(r, bot, logStore)
		dashboard.New(bot, catalogStore, knowledgeStore, logStore).RegisterRoutes(r)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		products, _ := catalogStore.Count(cmd.Context())
		fmt.Fprintf(os.Stderr, "healthbot v%s starting on %s:%d\n", Version, cfg.Server.Host, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", cfg.DatabasePath)
		fmt.Fprintf(os.Stderr, "  Products: %d\n", products)

		return srv.Start()
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
