package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"booknet/internal/models"
)

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Ingestion source management commands",
	Long:  `Manage ingestion sources that bulk uploads are attributed to.`,
}

var listSourcesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig()
		if err != nil {
			return err
		}
		client, err := newAuthenticatedClient(cfg)
		if err != nil {
			return err
		}

		sources, err := client.ListSources(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list sources: %w", err)
		}
		if len(sources) == 0 {
			fmt.Println("No sources found.")
			return nil
		}

		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tName\tDescription")
		for _, s := range sources {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, s.Name, s.Description)
		}
		tw.Flush()
		return nil
	},
}

var getSourceCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig()
		if err != nil {
			return err
		}
		client, err := newAuthenticatedClient(cfg)
		if err != nil {
			return err
		}

		source, err := client.GetSource(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get source: %w", err)
		}
		fmt.Printf("ID: %s\nName: %s\nDescription: %s\n", source.ID, source.Name, source.Description)
		return nil
	},
}

var createSourceCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new source",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig()
		if err != nil {
			return err
		}
		client, err := newAuthenticatedClient(cfg)
		if err != nil {
			return err
		}

		request, err := sourceRequestFromFlags(cmd)
		if err != nil {
			return err
		}
		source, err := client.CreateSource(cmd.Context(), request)
		if err != nil {
			return fmt.Errorf("failed to create source: %w", err)
		}

		fmt.Println("✓ Source created successfully!")
		fmt.Printf("ID: %s\nName: %s\n", source.ID, source.Name)
		return nil
	},
}

var updateSourceCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update an existing source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig()
		if err != nil {
			return err
		}
		client, err := newAuthenticatedClient(cfg)
		if err != nil {
			return err
		}

		request, err := sourceRequestFromFlags(cmd)
		if err != nil {
			return err
		}
		source, err := client.UpdateSource(cmd.Context(), args[0], request)
		if err != nil {
			return fmt.Errorf("failed to update source: %w", err)
		}

		fmt.Println("✓ Source updated successfully!")
		fmt.Printf("ID: %s\nName: %s\n", source.ID, source.Name)
		return nil
	},
}

var deleteSourceCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig()
		if err != nil {
			return err
		}
		client, err := newAuthenticatedClient(cfg)
		if err != nil {
			return err
		}

		if err := client.DeleteSource(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete source: %w", err)
		}
		fmt.Println("✓ Source deleted.")
		return nil
	},
}

func sourceRequestFromFlags(cmd *cobra.Command) (*models.SourceCreateRequest, error) {
	name, _ := cmd.Flags().GetString("name")
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	description, _ := cmd.Flags().GetString("description")
	return &models.SourceCreateRequest{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}, nil
}

func init() {
	sourceCmd.AddCommand(listSourcesCmd)
	sourceCmd.AddCommand(getSourceCmd)
	sourceCmd.AddCommand(createSourceCmd)
	sourceCmd.AddCommand(updateSourceCmd)
	sourceCmd.AddCommand(deleteSourceCmd)

	for _, c := range []*cobra.Command{createSourceCmd, updateSourceCmd} {
		c.Flags().String("name", "", "Source name")
		c.Flags().String("description", "", "Source description")
	}

	rootCmd.AddCommand(sourceCmd)
}
