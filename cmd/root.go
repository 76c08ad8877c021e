package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mediveda/healthbot/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "healthbot",
	Short: "Rule-based shopping assistant for Ayurvedic wellness stores",
	Long: `Healthbot answers shopper questions about an e-commerce catalog using a
deterministic rule pipeline: greetings, price filters, product listings,
a curated knowledge base and fuzzy product matching. It serves an HTTP
chat API, an admin dashboard, and an MCP interface for AI agents.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
