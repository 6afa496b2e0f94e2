package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"booknet/internal/console"
	"booknet/internal/session"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the interactive admin console",
	Long: `Start the interactive admin console.

The console mirrors the admin site: navigate with "go /authors",
"go /genres" and so on, and manage entries page by page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig()
		if err != nil {
			return err
		}

		client := newClient(cfg)
		log := newLogger(cfg)
		sess := session.New(client, log)

		c, err := console.New(client, sess, log, cfg.DefaultPageSize, os.Stdin, os.Stdout)
		if err != nil {
			return fmt.Errorf("failed to start console: %w", err)
		}
		return c.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}
