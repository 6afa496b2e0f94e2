package cli

// root.go defines the root command for the booknet admin CLI and the shared
// client construction helpers used by every subcommand.

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"booknet/internal/api"
	"booknet/internal/config"
	"booknet/internal/logging"
	"booknet/internal/session"
)

var apiURL string // global flag for the API server URL

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "booknet",
	Short: "booknet - BookNet catalog administration",
	Long: `booknet is the administrative front-end for the BookNet cataloging
platform. Authenticated staff can manage authors, genres and ingestion
sources, review notifications and bulk-import catalog data from files.

Run "booknet console" for the interactive console, or use the entity
subcommands directly. Use "booknet <command> -h" for details.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "API server URL (overrides BOOKNET_API_URL)")
}

// loadedConfig loads and validates the environment configuration, applying
// the --api override.
func loadedConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) logging.Logger {
	return logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
}

// newClient builds an anonymous API client from the configuration.
func newClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.APIBaseURL,
		api.WithTimeout(cfg.HTTPTimeout),
		api.WithRateLimit(cfg.RateLimit, cfg.RateBurst),
	)
}

// newAuthenticatedClient builds an API client carrying the stored bearer
// token. It fails when no credentials are stored.
func newAuthenticatedClient(cfg *config.Config) (*api.Client, error) {
	client := newClient(cfg)
	creds, err := session.LoadCredentials()
	if err != nil || creds.Token == "" {
		return nil, fmt.Errorf("not signed in; run `booknet auth login` first")
	}
	client.SetToken(creds.Token)
	return client, nil
}
