package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"postdesk"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the postdesk server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := postdesk.LoadConfig(configPath)
		if err != nil {
			return err
		}

		// Environment variables win over the config file.
		cfg.Name = postdesk.EnvOr("SITE_NAME", cfg.Name)
		cfg.URL = postdesk.EnvOr("SITE_URL", cfg.URL)
		cfg.Description = postdesk.EnvOr("SITE_DESCRIPTION", cfg.Description)
		cfg.Addr = postdesk.EnvOr("ADDR", cfg.Addr)
		cfg.DatabasePath = postdesk.EnvOr("DATABASE_PATH", cfg.DatabasePath)
		cfg.SessionSecret = postdesk.EnvOr("SESSION_SECRET", cfg.SessionSecret)
		if os.Getenv("COOKIE_SECURE") == "true" {
			cfg.CookieSecure = true
		}
		if cfg.SessionSecret == "" {
			return fmt.Errorf("session_secret (or SESSION_SECRET) is required")
		}

		app := postdesk.New(cfg)
		defer app.Close()
		return app.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
