package cli

// auth.go handles authentication commands: login, logout and whoami.

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"booknet/internal/session"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Authenticate with the BookNet API server. Supports login, logout and identity lookup.`,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to BookNet",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig()
		if err != nil {
			return err
		}

		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			raw, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = strings.TrimSpace(string(raw))
		}

		sess := session.New(newClient(cfg), newLogger(cfg))
		user, err := sess.Login(cmd.Context(), username, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		fmt.Println("✓ Successfully signed in!")
		fmt.Printf("User: %s <%s> (%s)\n", user.Username, user.Email, user.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := session.DeleteCredentials(); err != nil {
			return fmt.Errorf("failed to clear stored credentials: %w", err)
		}
		fmt.Println("✓ Successfully signed out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig()
		if err != nil {
			return err
		}
		client, err := newAuthenticatedClient(cfg)
		if err != nil {
			return err
		}

		user, err := client.Me(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch identity: %w", err)
		}
		fmt.Printf("%s <%s> (%s)\n", user.Username, user.Email, user.Role)
		return nil
	},
}

func init() {
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)

	loginCmd.Flags().StringP("username", "u", "", "Username for the account")
	loginCmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")
	loginCmd.MarkFlagRequired("username")

	rootCmd.AddCommand(authCmd)
}
