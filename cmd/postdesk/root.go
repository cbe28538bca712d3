package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "postdesk",
	Short: "A local-first blog post manager with a webauto element helper",
	Long: `Postdesk serves a local web app for creating, filtering, and managing
blog posts, plus a small helper for authoring labeled UI elements for web
automation practice. Everything persists to a local SQLite file.`,
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "postdesk.yml", "Path to the YAML config file")
}
