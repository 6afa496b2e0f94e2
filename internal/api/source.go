package api

import (
	"context"
	"net/http"

	"booknet/internal/models"
)

const sourcePath = "/source"

// ListSources returns every ingestion source. The source resource is small
// and bounded, so the server exposes no pagination or batch delete for it.
func (c *Client) ListSources(ctx context.Context) ([]models.Source, error) {
	var result []models.Source
	if err := c.do(ctx, http.MethodGet, sourcePath, nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GetSource(ctx context.Context, id string) (*models.Source, error) {
	var result models.Source
	if err := c.do(ctx, http.MethodGet, sourcePath+"/"+id, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreateSource(ctx context.Context, request *models.SourceCreateRequest) (*models.Source, error) {
	var result models.Source
	if err := c.do(ctx, http.MethodPost, sourcePath, nil, request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateSource(ctx context.Context, id string, request *models.SourceCreateRequest) (*models.Source, error) {
	var result models.Source
	if err := c.do(ctx, http.MethodPut, sourcePath+"/"+id, nil, request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteSource(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, sourcePath+"/"+id, nil, nil, nil)
}
