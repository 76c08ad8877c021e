package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mediveda/healthbot/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize healthbot configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure healthbot for your store and generates a .healthbot.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
