package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"booknet/internal/models"
)

const authorPath = "/author"

// ListAuthors fetches one page of authors, optionally filtered by name.
func (c *Client) ListAuthors(ctx context.Context, page, size int, name string) (*models.Page[models.AuthorSimple], error) {
	var result models.Page[models.AuthorSimple]
	if err := c.do(ctx, http.MethodGet, authorPath, pageQuery(page, size, name), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetAuthor(ctx context.Context, id string) (*models.Author, error) {
	var result models.Author
	if err := c.do(ctx, http.MethodGet, authorPath+"/"+id, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreateAuthor(ctx context.Context, request *models.AuthorCreateRequest) (*models.Author, error) {
	var result models.Author
	if err := c.do(ctx, http.MethodPost, authorPath, nil, request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateAuthor(ctx context.Context, id string, request *models.AuthorCreateRequest) (*models.Author, error) {
	var result models.Author
	if err := c.do(ctx, http.MethodPut, authorPath+"/"+id, nil, request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteAuthor(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, authorPath+"/"+id, nil, nil, nil)
}

// DeleteAuthors removes several authors in one call.
func (c *Client) DeleteAuthors(ctx context.Context, ids []string) error {
	return c.do(ctx, http.MethodPost, authorPath+"/delete", nil, ids, nil)
}

// UploadAuthors bulk-imports authors from a file attributed to sourceID.
// The returned string is the server's opaque import summary.
func (c *Client) UploadAuthors(ctx context.Context, sourceID, filename string, file io.Reader) (string, error) {
	return c.upload(ctx, fmt.Sprintf("%s/upload/%s", authorPath, sourceID), filename, file)
}
