package console

import (
	"context"
	"fmt"
	"io"

	"booknet/internal/models"
	"booknet/internal/routes"
)

const (
	pathSources = "/sources"
	pathSource  = "/sources/:idSource"
)

func sourceItemPath(id string) string {
	return pathSources + "/" + id
}

func sourceRoutes(d *Deps) []routes.Route {
	return []routes.Route{
		{
			Path:         pathSources,
			Title:        "Sources",
			RequiresAuth: true,
			New: func(map[string]string) routes.Page {
				return newSourcesPage(d)
			},
		},
		{
			Path:         pathSource,
			Title:        "Source",
			RequiresAuth: true,
			New: func(params map[string]string) routes.Page {
				return newSourcePage(d, params["idSource"])
			},
		},
	}
}

func newSourceDialog(d *Deps, existing *models.Source) *EditDialog {
	title := "Add Source"
	if existing != nil {
		title = "Edit Source"
	}
	dialog := NewEditDialog(title, []Field{
		{Name: "name", Label: "Name", Required: true},
		{Name: "description", Label: "Description"},
	}, func(ctx context.Context, values map[string]string) error {
		request := &models.SourceCreateRequest{
			Name:        values["name"],
			Description: values["description"],
		}
		if existing != nil {
			_, err := d.API.UpdateSource(ctx, existing.ID, request)
			return err
		}
		_, err := d.API.CreateSource(ctx, request)
		return err
	})
	var initial map[string]string
	if existing != nil {
		initial = map[string]string{"name": existing.Name, "description": existing.Description}
	}
	dialog.Open(initial)
	return dialog
}

func newSourcesPage(d *Deps) routes.Page {
	// The source resource is unpaginated server-side; the full list is
	// wrapped into a single page. No batch delete either.
	fetch := func(ctx context.Context, page, size int, filter string) (*models.Page[models.Source], error) {
		sources, err := d.API.ListSources(ctx)
		if err != nil {
			return nil, err
		}
		return &models.Page[models.Source]{Content: sources, CurrentPage: 0, PageSize: len(sources)}, nil
	}

	return NewListPage("Sources", d.PageSize,
		Capabilities[models.Source]{
			FetchPage: fetch,
			Delete:    d.API.DeleteSource,
		},
		RowSpec[models.Source]{
			Columns: []string{"ID", "Name", "Description"},
			Row: func(s models.Source) []string {
				return []string{s.ID, s.Name, clip(s.Description, 40)}
			},
			ID:   func(s models.Source) string { return s.ID },
			Name: func(s models.Source) string { return s.Name },
		},
		WithDialog(func(existing *models.Source) *EditDialog {
			return newSourceDialog(d, existing)
		}),
		WithItemPath[models.Source](sourceItemPath, d.Nav),
	)
}

func newSourcePage(d *Deps, id string) routes.Page {
	return NewDetailPage("Source", id,
		d.API.GetSource,
		func(w io.Writer, s *models.Source) {
			fmt.Fprintf(w, "Name:        %s\n", s.Name)
			fmt.Fprintf(w, "Description: %s\n", s.Description)
		},
		func(existing *models.Source) *EditDialog {
			return newSourceDialog(d, existing)
		},
		WithDelete[models.Source](d.API.DeleteSource, func() { d.Nav(pathSources) }),
	)
}
