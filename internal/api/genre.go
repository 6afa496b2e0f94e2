package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"booknet/internal/models"
)

const genrePath = "/genre"

// ListGenres fetches one page of genres, optionally filtered by name.
func (c *Client) ListGenres(ctx context.Context, page, size int, name string) (*models.Page[models.Genre], error) {
	var result models.Page[models.Genre]
	if err := c.do(ctx, http.MethodGet, genrePath, pageQuery(page, size, name), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetGenre(ctx context.Context, id string) (*models.Genre, error) {
	var result models.Genre
	if err := c.do(ctx, http.MethodGet, genrePath+"/"+id, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreateGenre(ctx context.Context, request *models.GenreCreateRequest) (*models.Genre, error) {
	var result models.Genre
	if err := c.do(ctx, http.MethodPost, genrePath, nil, request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateGenre(ctx context.Context, id string, request *models.GenreCreateRequest) (*models.Genre, error) {
	var result models.Genre
	if err := c.do(ctx, http.MethodPut, genrePath+"/"+id, nil, request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteGenre(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, genrePath+"/"+id, nil, nil, nil)
}

// DeleteGenres removes several genres in one call.
func (c *Client) DeleteGenres(ctx context.Context, ids []string) error {
	return c.do(ctx, http.MethodPost, genrePath+"/delete", nil, ids, nil)
}

// UploadGenres bulk-imports genres from a file attributed to sourceID.
func (c *Client) UploadGenres(ctx context.Context, sourceID, filename string, file io.Reader) (string, error) {
	return c.upload(ctx, fmt.Sprintf("%s/upload/%s", genrePath, sourceID), filename, file)
}
