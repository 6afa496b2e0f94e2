package console

import (
	"context"
	"fmt"
	"io"

	"booknet/internal/models"
	"booknet/internal/routes"
)

const (
	pathGenres = "/genres"
	pathGenre  = "/genres/:idGenre"
)

func genreItemPath(id string) string {
	return pathGenres + "/" + id
}

func genreRoutes(d *Deps) []routes.Route {
	return []routes.Route{
		{
			Path:         pathGenres,
			Title:        "Genres",
			RequiresAuth: true,
			New: func(map[string]string) routes.Page {
				return newGenresPage(d)
			},
		},
		{
			Path:         pathGenre,
			Title:        "Genre",
			RequiresAuth: true,
			New: func(params map[string]string) routes.Page {
				return newGenrePage(d, params["idGenre"])
			},
		},
	}
}

func newGenreDialog(d *Deps, existing *models.Genre) *EditDialog {
	title := "Add Genre"
	if existing != nil {
		title = "Edit Genre"
	}
	dialog := NewEditDialog(title, []Field{
		{Name: "name", Label: "Name", Required: true},
	}, func(ctx context.Context, values map[string]string) error {
		request := &models.GenreCreateRequest{Name: values["name"]}
		if existing != nil {
			_, err := d.API.UpdateGenre(ctx, existing.ID, request)
			return err
		}
		_, err := d.API.CreateGenre(ctx, request)
		return err
	})
	var initial map[string]string
	if existing != nil {
		initial = map[string]string{"name": existing.Name}
	}
	dialog.Open(initial)
	return dialog
}

func newGenresPage(d *Deps) routes.Page {
	uploader := NewUploadDialog("Upload Genres", "Source", []string{".csv", ".json", ".jsonl"},
		d.API.ListSources, d.API.UploadGenres)

	return NewListPage("Genres", d.PageSize,
		Capabilities[models.Genre]{
			FetchPage:   d.API.ListGenres,
			Delete:      d.API.DeleteGenre,
			DeleteBatch: d.API.DeleteGenres,
		},
		RowSpec[models.Genre]{
			Columns: []string{"ID", "Name"},
			Row:     func(g models.Genre) []string { return []string{g.ID, g.Name} },
			ID:      func(g models.Genre) string { return g.ID },
			Name:    func(g models.Genre) string { return g.Name },
		},
		WithDialog(func(existing *models.Genre) *EditDialog {
			return newGenreDialog(d, existing)
		}),
		WithUploader[models.Genre](uploader),
		WithItemPath[models.Genre](genreItemPath, d.Nav),
	)
}

func newGenrePage(d *Deps, id string) routes.Page {
	return NewDetailPage("Genre", id,
		d.API.GetGenre,
		func(w io.Writer, g *models.Genre) {
			fmt.Fprintf(w, "Name: %s\n", g.Name)
		},
		func(existing *models.Genre) *EditDialog {
			return newGenreDialog(d, existing)
		},
		WithDelete[models.Genre](d.API.DeleteGenre, func() { d.Nav(pathGenres) }),
	)
}
