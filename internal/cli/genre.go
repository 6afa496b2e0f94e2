package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"booknet/internal/models"
)

var genreCmd = &cobra.Command{
	Use:   "genre",
	Short: "Genre management commands",
	Long:  `Manage catalog genres: list, inspect, create, update, delete and bulk-import.`,
}

var listGenresCmd = &cobra.Command{
	Use:   "list",
	Short: "List genres (paginated)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig()
		if err != nil {
			return err
		}
		client, err := newAuthenticatedClient(cfg)
		if err != nil {
			return err
		}

		page, _ := cmd.Flags().GetInt("page")
		size, _ := cmd.Flags().GetInt("size")
		name, _ := cmd.Flags().GetString("name")
		if size == 0 {
			size = cfg.DefaultPageSize
		}

		result, err := client.ListGenres(cmd.Context(), page, size, name)
		if err != nil {
			return fmt.Errorf("failed to list genres: %w", err)
		}
		if len(result.Content) == 0 {
			fmt.Println("No genres found.")
			return nil
		}

		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tName")
		for _, g := range result.Content {
			fmt.Fprintf(tw, "%s\t%s\n", g.ID, g.Name)
		}
		tw.Flush()
		fmt.Printf("Page %d, size %d, %d rows.\n", result.CurrentPage, result.PageSize, len(result.Content))
		return nil
	},
}

var getGenreCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one genre",
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

		genre, err := client.GetGenre(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get genre: %w", err)
		}
		fmt.Printf("ID: %s\nName: %s\n", genre.ID, genre.Name)
		return nil
	},
}

var createGenreCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new genre",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig()
		if err != nil {
			return err
		}
		client, err := newAuthenticatedClient(cfg)
		if err != nil {
			return err
		}

		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			return fmt.Errorf("name is required")
		}

		genre, err := client.CreateGenre(cmd.Context(), &models.GenreCreateRequest{Name: name})
		if err != nil {
			return fmt.Errorf("failed to create genre: %w", err)
		}

		fmt.Println("✓ Genre created successfully!")
		fmt.Printf("ID: %s\nName: %s\n", genre.ID, genre.Name)
		return nil
	},
}

var updateGenreCmd = &cobra.Command{
	Use:   "update [id] [name]",
	Short: "Rename a genre",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig()
		if err != nil {
			return err
		}
		client, err := newAuthenticatedClient(cfg)
		if err != nil {
			return err
		}

		name := strings.TrimSpace(strings.Join(args[1:], " "))
		if name == "" {
			return fmt.Errorf("name is required")
		}

		genre, err := client.UpdateGenre(cmd.Context(), args[0], &models.GenreCreateRequest{Name: name})
		if err != nil {
			return fmt.Errorf("failed to update genre: %w", err)
		}

		fmt.Println("✓ Genre updated successfully!")
		fmt.Printf("ID: %s\nName: %s\n", genre.ID, genre.Name)
		return nil
	},
}

var deleteGenreCmd = &cobra.Command{
	Use:   "delete [id…]",
	Short: "Delete one or more genres",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig()
		if err != nil {
			return err
		}
		client, err := newAuthenticatedClient(cfg)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			if err := client.DeleteGenre(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete genre: %w", err)
			}
		} else {
			if err := client.DeleteGenres(cmd.Context(), args); err != nil {
				return fmt.Errorf("failed to delete genres: %w", err)
			}
		}
		fmt.Printf("✓ Deleted %d genre(s).\n", len(args))
		return nil
	},
}

var uploadGenreCmd = &cobra.Command{
	Use:   "upload [source-id] [file]",
	Short: "Bulk-import genres from a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig()
		if err != nil {
			return err
		}
		client, err := newAuthenticatedClient(cfg)
		if err != nil {
			return err
		}

		file, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer file.Close()

		result, err := client.UploadGenres(cmd.Context(), args[0], filepath.Base(args[1]), file)
		if err != nil {
			return fmt.Errorf("upload failed: %w", err)
		}
		fmt.Println("✓ Upload accepted.")
		if result != "" {
			fmt.Println(result)
		}
		return nil
	},
}

func init() {
	genreCmd.AddCommand(listGenresCmd)
	genreCmd.AddCommand(getGenreCmd)
	genreCmd.AddCommand(createGenreCmd)
	genreCmd.AddCommand(updateGenreCmd)
	genreCmd.AddCommand(deleteGenreCmd)
	genreCmd.AddCommand(uploadGenreCmd)

	listGenresCmd.Flags().Int("page", 0, "Zero-based page index")
	listGenresCmd.Flags().Int("size", 0, "Page size (default from config)")
	listGenresCmd.Flags().String("name", "", "Filter by name")

	rootCmd.AddCommand(genreCmd)
}
