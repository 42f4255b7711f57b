package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/folio/internal/cli"
	"github.com/aretw0/folio/pkg/site"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Folio inspects how a site's pages resolve to layouts",
	Long: `Folio is the composition core of a document generator.
This tool loads a site configuration and its content pages and reports
which layout each page will be rendered inside.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// envDefaults seeds flag defaults. Package variables are initialized before
// any init function runs, so every command file can read it.
var envDefaults, envErr = cli.ParseEnv()

func init() {
	if envErr != nil {
		fmt.Fprintln(os.Stderr, envErr)
		os.Exit(1)
	}
	e := envDefaults

	// Persistent flags (available to all commands); the environment supplies defaults.
	rootCmd.PersistentFlags().String("config", e.Config, "Site configuration file (FOLIO_CONFIG)")
	rootCmd.PersistentFlags().String("content", e.Content, "Directory containing content pages (FOLIO_CONTENT)")
	rootCmd.PersistentFlags().String("log-level", e.LogLevel, "Log level: debug, info, warn, error (FOLIO_LOG_LEVEL)")
}

// loadSite builds the logger and the site from the persistent flags.
func loadSite(cmd *cobra.Command) (*site.Site, *slog.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	logger, err := cli.NewLogger(level)
	if err != nil {
		return nil, nil, err
	}

	path, _ := cmd.Flags().GetString("config")
	s, err := cli.LoadSite(path, logger)
	if err != nil {
		return nil, nil, err
	}
	return s, logger, nil
}
