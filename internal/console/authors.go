package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"booknet/internal/models"
	"booknet/internal/routes"
)

const (
	pathAuthors = "/authors"
	pathAuthor  = "/authors/:idAuthor"
)

func authorItemPath(id string) string {
	return pathAuthors + "/" + id
}

// authorRoutes is the author module's contribution to the route table.
func authorRoutes(d *Deps) []routes.Route {
	return []routes.Route{
		{
			Path:         pathAuthors,
			Title:        "Authors",
			RequiresAuth: true,
			New: func(map[string]string) routes.Page {
				return newAuthorsPage(d)
			},
		},
		{
			Path:         pathAuthor,
			Title:        "Author",
			RequiresAuth: true,
			New: func(params map[string]string) routes.Page {
				return newAuthorPage(d, params["idAuthor"])
			},
		},
	}
}

func authorFields(initial *models.AuthorSimple) map[string]string {
	if initial == nil {
		return nil
	}
	return map[string]string{
		"name":        initial.Name,
		"description": initial.Description,
		"imageUrl":    initial.ImageURL,
	}
}

func authorRequest(values map[string]string, books []string) *models.AuthorCreateRequest {
	if books == nil {
		books = []string{}
	}
	return &models.AuthorCreateRequest{
		Name:        values["name"],
		Description: values["description"],
		ImageURL:    values["imageUrl"],
		Books:       books,
	}
}

func newAuthorDialog(d *Deps, existing *models.AuthorSimple, books []string) *EditDialog {
	title := "Add Author"
	if existing != nil {
		title = "Edit Author"
	}
	dialog := NewEditDialog(title, []Field{
		{Name: "name", Label: "Name", Required: true},
		{Name: "description", Label: "Description"},
		{Name: "imageUrl", Label: "Image Url"},
	}, func(ctx context.Context, values map[string]string) error {
		if existing != nil {
			_, err := d.API.UpdateAuthor(ctx, existing.ID, authorRequest(values, books))
			return err
		}
		_, err := d.API.CreateAuthor(ctx, authorRequest(values, books))
		return err
	})
	dialog.Open(authorFields(existing))
	return dialog
}

func newAuthorsPage(d *Deps) routes.Page {
	uploader := NewUploadDialog("Upload Authors", "Source", []string{".csv", ".json", ".jsonl"},
		d.API.ListSources, d.API.UploadAuthors)

	return NewListPage("Authors", d.PageSize,
		Capabilities[models.AuthorSimple]{
			FetchPage:   d.API.ListAuthors,
			Delete:      d.API.DeleteAuthor,
			DeleteBatch: d.API.DeleteAuthors,
		},
		RowSpec[models.AuthorSimple]{
			Columns: []string{"ID", "Name", "Description", "Image Url"},
			Row: func(a models.AuthorSimple) []string {
				return []string{a.ID, a.Name, clip(a.Description, 40), clip(a.ImageURL, 40)}
			},
			ID:   func(a models.AuthorSimple) string { return a.ID },
			Name: func(a models.AuthorSimple) string { return a.Name },
		},
		WithDialog(func(existing *models.AuthorSimple) *EditDialog {
			return newAuthorDialog(d, existing, nil)
		}),
		WithUploader[models.AuthorSimple](uploader),
		WithItemPath[models.AuthorSimple](authorItemPath, d.Nav),
	)
}

func newAuthorPage(d *Deps, id string) routes.Page {
	return NewDetailPage("Author", id,
		d.API.GetAuthor,
		func(w io.Writer, a *models.Author) {
			fmt.Fprintf(w, "Name:        %s\n", a.Name)
			fmt.Fprintf(w, "Description: %s\n", a.Description)
			fmt.Fprintf(w, "Image Url:   %s\n", a.ImageURL)
			if len(a.Books) == 0 {
				fmt.Fprintln(w, "Books:       (none)")
				return
			}
			titles := make([]string, 0, len(a.Books))
			for _, b := range a.Books {
				titles = append(titles, b.Title)
			}
			fmt.Fprintf(w, "Books:       %s\n", strings.Join(titles, ", "))
		},
		func(existing *models.Author) *EditDialog {
			bookIDs := make([]string, 0, len(existing.Books))
			for _, b := range existing.Books {
				bookIDs = append(bookIDs, b.ID)
			}
			return newAuthorDialog(d, &existing.AuthorSimple, bookIDs)
		},
		WithDelete[models.Author](d.API.DeleteAuthor, func() { d.Nav(pathAuthors) }),
	)
}

// clip shortens s to max runes, never splitting a multi-byte character.
func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max-1]) + "…"
	}
	return s
}
