package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .healthbot.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to healthbot! Let's configure your store assistant.")
	fmt.Println()

	cfg := DefaultConfig()

	namePrompt := promptui.Prompt{
		Label:   "Store name shown in assistant replies",
		Default: cfg.StoreName,
	}
	storeName, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("store name: %w", err)
	}
	cfg.StoreName = storeName

	dbPrompt := promptui.Prompt{
		Label:   "SQLite database path",
		Default: cfg.DatabasePath,
	}
	dbPath, err := dbPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("database path: %w", err)
	}
	cfg.DatabasePath = dbPath

	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p < 1 || p > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	originsPrompt := promptui.Prompt{
		Label:   "Allowed CORS origins (comma-separated, * for any)",
		Default: strings.Join(cfg.Server.CORSOrigins, ","),
	}
	originsStr, err := originsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cors origins: %w", err)
	}
	cfg.Server.CORSOrigins = splitAndTrim(originsStr)

	resultsPrompt := promptui.Select{
		Label: "Products per answer",
		Items: []string{"3", "5", "10"},
	}
	_, resultsStr, err := resultsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("result count: %w", err)
	}
	cfg.Assistant.MaxResults, _ = strconv.Atoi(resultsStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(DefaultConfigFile); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultConfigFile)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
