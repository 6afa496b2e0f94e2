package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"booknet/internal/models"
)

var notificationCmd = &cobra.Command{
	Use:   "notification",
	Short: "Notification commands",
}

var listNotificationsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig()
		if err != nil {
			return err
		}
		client, err := newAuthenticatedClient(cfg)
		if err != nil {
			return err
		}

		items, err := client.Notifications(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list notifications: %w", err)
		}
		printNotifications(items)
		return nil
	},
}

var latestNotificationsCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recent notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig()
		if err != nil {
			return err
		}
		client, err := newAuthenticatedClient(cfg)
		if err != nil {
			return err
		}

		items, err := client.LatestNotifications(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch latest notifications: %w", err)
		}
		printNotifications(items)
		return nil
	},
}

func printNotifications(items []models.Notification) {
	if len(items) == 0 {
		fmt.Println("No notifications.")
		return
	}
	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, " \tFrom\tMessage\tWhen")
	for _, n := range items {
		marker := " "
		if !n.Read {
			marker = "•"
		}
		message := n.Message
		if n.Type == models.NotificationTypeSystem {
			message = "[system] " + message
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", marker, n.Author.Username, message, n.CreatedAt.Format("2006-01-02 15:04"))
	}
	tw.Flush()
}

func init() {
	notificationCmd.AddCommand(listNotificationsCmd)
	notificationCmd.AddCommand(latestNotificationsCmd)
	rootCmd.AddCommand(notificationCmd)
}
