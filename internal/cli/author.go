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

var authorCmd = &cobra.Command{
	Use:   "author",
	Short: "Author management commands",
	Long:  `Manage catalog authors: list, inspect, create, update, delete and bulk-import.`,
}

var listAuthorsCmd = &cobra.Command{
	Use:   "list",
	Short: "List authors (paginated)",
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

		result, err := client.ListAuthors(cmd.Context(), page, size, name)
		if err != nil {
			return fmt.Errorf("failed to list authors: %w", err)
		}
		if len(result.Content) == 0 {
			fmt.Println("No authors found.")
			return nil
		}

		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tName\tDescription")
		for _, a := range result.Content {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", a.ID, a.Name, a.Description)
		}
		tw.Flush()
		fmt.Printf("Page %d, size %d, %d rows.\n", result.CurrentPage, result.PageSize, len(result.Content))
		return nil
	},
}

var getAuthorCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one author",
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

		author, err := client.GetAuthor(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get author: %w", err)
		}
		fmt.Printf("ID: %s\nName: %s\nDescription: %s\nImage Url: %s\n",
			author.ID, author.Name, author.Description, author.ImageURL)
		for _, b := range author.Books {
			fmt.Printf("Book: %s (%s)\n", b.Title, b.ID)
		}
		return nil
	},
}

var createAuthorCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new author",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig()
		if err != nil {
			return err
		}
		client, err := newAuthenticatedClient(cfg)
		if err != nil {
			return err
		}

		request, err := authorRequestFromFlags(cmd)
		if err != nil {
			return err
		}
		author, err := client.CreateAuthor(cmd.Context(), request)
		if err != nil {
			return fmt.Errorf("failed to create author: %w", err)
		}

		fmt.Println("✓ Author created successfully!")
		fmt.Printf("ID: %s\nName: %s\n", author.ID, author.Name)
		return nil
	},
}

var updateAuthorCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update an existing author",
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

		request, err := authorRequestFromFlags(cmd)
		if err != nil {
			return err
		}
		author, err := client.UpdateAuthor(cmd.Context(), args[0], request)
		if err != nil {
			return fmt.Errorf("failed to update author: %w", err)
		}

		fmt.Println("✓ Author updated successfully!")
		fmt.Printf("ID: %s\nName: %s\n", author.ID, author.Name)
		return nil
	},
}

var deleteAuthorCmd = &cobra.Command{
	Use:   "delete [id…]",
	Short: "Delete one or more authors",
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
			if err := client.DeleteAuthor(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete author: %w", err)
			}
		} else {
			if err := client.DeleteAuthors(cmd.Context(), args); err != nil {
				return fmt.Errorf("failed to delete authors: %w", err)
			}
		}
		fmt.Printf("✓ Deleted %d author(s).\n", len(args))
		return nil
	},
}

var uploadAuthorCmd = &cobra.Command{
	Use:   "upload [source-id] [file]",
	Short: "Bulk-import authors from a file",
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

		result, err := client.UploadAuthors(cmd.Context(), args[0], filepath.Base(args[1]), file)
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

func authorRequestFromFlags(cmd *cobra.Command) (*models.AuthorCreateRequest, error) {
	name, _ := cmd.Flags().GetString("name")
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	description, _ := cmd.Flags().GetString("description")
	imageURL, _ := cmd.Flags().GetString("image-url")
	books, _ := cmd.Flags().GetStringSlice("books")
	if books == nil {
		books = []string{}
	}
	return &models.AuthorCreateRequest{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		ImageURL:    strings.TrimSpace(imageURL),
		Books:       books,
	}, nil
}

func init() {
	authorCmd.AddCommand(listAuthorsCmd)
	authorCmd.AddCommand(getAuthorCmd)
	authorCmd.AddCommand(createAuthorCmd)
	authorCmd.AddCommand(updateAuthorCmd)
	authorCmd.AddCommand(deleteAuthorCmd)
	authorCmd.AddCommand(uploadAuthorCmd)

	listAuthorsCmd.Flags().Int("page", 0, "Zero-based page index")
	listAuthorsCmd.Flags().Int("size", 0, "Page size (default from config)")
	listAuthorsCmd.Flags().String("name", "", "Filter by name")

	for _, c := range []*cobra.Command{createAuthorCmd, updateAuthorCmd} {
		c.Flags().String("name", "", "Author name")
		c.Flags().String("description", "", "Author description")
		c.Flags().String("image-url", "", "Author image URL")
		c.Flags().StringSlice("books", nil, "Book ids associated with the author")
	}

	rootCmd.AddCommand(authorCmd)
}
