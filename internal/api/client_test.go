package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booknet/internal/models"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newTestClient(t *testing.T, r *gin.Engine) *Client {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestListAuthors_QueryAndDecode(t *testing.T) {
	r := setupRouter()
	var gotPage, gotSize, gotName string
	r.GET("/author", func(c *gin.Context) {
		gotPage = c.Query("page")
		gotSize = c.Query("size")
		gotName = c.Query("name")
		c.JSON(http.StatusOK, gin.H{
			"content": []gin.H{
				{"idAuthor": "a1", "name": "Ursula"},
				{"idAuthor": "a2", "name": "Umberto"},
			},
			"currentPage":   2,
			"pageSize":      25,
			"totalElements": 51,
			"totalPages":    3,
		})
	})
	client := newTestClient(t, r)

	page, err := client.ListAuthors(context.Background(), 2, 25, "u")
	require.NoError(t, err)

	assert.Equal(t, "2", gotPage)
	assert.Equal(t, "25", gotSize)
	assert.Equal(t, "u", gotName)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "a1", page.Content[0].ID)
	assert.Equal(t, "Ursula", page.Content[0].Name)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
}

func TestListAuthors_NegativePageFallsBack(t *testing.T) {
	r := setupRouter()
	var gotPage, gotSize string
	r.GET("/author", func(c *gin.Context) {
		gotPage = c.Query("page")
		gotSize = c.Query("size")
		c.JSON(http.StatusOK, gin.H{"content": []gin.H{}, "currentPage": 0, "pageSize": 100})
	})
	client := newTestClient(t, r)

	_, err := client.ListAuthors(context.Background(), -1, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "0", gotPage)
	assert.Equal(t, "100", gotSize)
}

func TestGetAuthor_NotFound(t *testing.T) {
	r := setupRouter()
	r.GET("/author/:id", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "author not found"})
	})
	client := newTestClient(t, r)

	_, err := client.GetAuthor(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "author not found")
}

func TestCreateAuthor_SendsBodyAndHeaders(t *testing.T) {
	r := setupRouter()
	var gotAuth, gotRequestID string
	var gotBody models.AuthorCreateRequest
	r.POST("/author", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		gotRequestID = c.GetHeader("X-Request-Id")
		require.NoError(t, c.ShouldBindJSON(&gotBody))
		c.JSON(http.StatusCreated, gin.H{"idAuthor": "a9", "name": gotBody.Name})
	})
	client := newTestClient(t, r)
	client.SetToken("tok-123")

	author, err := client.CreateAuthor(context.Background(), &models.AuthorCreateRequest{
		Name:  "New Author",
		Books: []string{"b1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "New Author", gotBody.Name)
	assert.Equal(t, []string{"b1"}, gotBody.Books)
	assert.Equal(t, "a9", author.ID)
}

func TestDeleteAuthors_BatchBody(t *testing.T) {
	r := setupRouter()
	var gotIDs []string
	r.POST("/author/delete", func(c *gin.Context) {
		require.NoError(t, c.ShouldBindJSON(&gotIDs))
		c.Status(http.StatusOK)
	})
	client := newTestClient(t, r)

	err := client.DeleteAuthors(context.Background(), []string{"a1", "a2", "a3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "a3"}, gotIDs)
}

func TestUploadAuthors_MultipartFileField(t *testing.T) {
	r := setupRouter()
	var gotSource, gotFilename, gotContents string
	r.POST("/author/upload/:sourceId", func(c *gin.Context) {
		gotSource = c.Param("sourceId")
		fh, err := c.FormFile("file")
		require.NoError(t, err)
		gotFilename = fh.Filename
		f, err := fh.Open()
		require.NoError(t, err)
		defer f.Close()
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		gotContents = string(data)
		c.String(http.StatusOK, "imported 2 authors")
	})
	client := newTestClient(t, r)

	result, err := client.UploadAuthors(context.Background(), "s1", "authors.csv", strings.NewReader("name\nOne\nTwo\n"))
	require.NoError(t, err)

	assert.Equal(t, "s1", gotSource)
	assert.Equal(t, "authors.csv", gotFilename)
	assert.Equal(t, "name\nOne\nTwo\n", gotContents)
	assert.Equal(t, "imported 2 authors", result)
}

func TestUpload_ServerError(t *testing.T) {
	r := setupRouter()
	r.POST("/genre/upload/:sourceId", func(c *gin.Context) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "malformed row 3"})
	})
	client := newTestClient(t, r)

	_, err := client.UploadGenres(context.Background(), "s1", "genres.csv", strings.NewReader("bad"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed row 3")
	assert.False(t, IsNotFound(err))
}

func TestListSources_Unpaginated(t *testing.T) {
	r := setupRouter()
	r.GET("/source", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{"idSource": "s1", "name": "Library Feed"},
			{"idSource": "s2", "name": "Publisher Drop"},
		})
	})
	client := newTestClient(t, r)

	sources, err := client.ListSources(context.Background())
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "s2", sources[1].ID)
	assert.Equal(t, "Publisher Drop", sources[1].Name)
}

func TestLogin_TokenFromHeader(t *testing.T) {
	r := setupRouter()
	var gotUsername, gotPassword string
	r.POST("/auth/login-alt", func(c *gin.Context) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, c.ShouldBindJSON(&body))
		gotUsername = body.Username
		gotPassword = body.Password
		c.Header("Authorization", "Bearer token-abc")
		c.Status(http.StatusOK)
	})
	client := newTestClient(t, r)

	token, err := client.Login(context.Background(), "admin", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
	assert.Equal(t, "admin", gotUsername)
	assert.Equal(t, "secret1", gotPassword)
}

func TestLogin_MissingHeader(t *testing.T) {
	r := setupRouter()
	r.POST("/auth/login-alt", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	client := newTestClient(t, r)

	_, err := client.Login(context.Background(), "admin", "secret1")
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestLogin_BadCredentials(t *testing.T) {
	r := setupRouter()
	r.POST("/auth/login-alt", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
	})
	client := newTestClient(t, r)

	_, err := client.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTokenMissing)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestMe_DecodesUser(t *testing.T) {
	r := setupRouter()
	r.GET("/auth/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"idUser":   "u1",
			"username": "admin",
			"email":    "admin@example.com",
			"role":     "ADMIN",
		})
	})
	client := newTestClient(t, r)

	user, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.True(t, user.Role.IsAdmin())
}

func TestNotifications_Decode(t *testing.T) {
	r := setupRouter()
	r.GET("/notification", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{
				"idNotification": "n1",
				"title":          "New books",
				"message":        "12 books were imported",
				"author":         gin.H{"idUser": "u2", "username": "importer"},
				"createdAt":      "2026-08-30T10:00:00Z",
				"read":           false,
				"type":           "import",
				"data":           gin.H{"data": "/sources/s1"},
			},
			{
				"idNotification": "n2",
				"title":          "Maintenance",
				"message":        "scheduled downtime",
				"author":         gin.H{"idUser": "u0", "username": "booknet"},
				"createdAt":      "2026-08-29T08:00:00Z",
				"read":           true,
				"type":           "system",
			},
		})
	})
	client := newTestClient(t, r)

	items, err := client.Notifications(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].Navigable())
	assert.Equal(t, "/sources/s1", items[0].Data.Data)
	assert.False(t, items[1].Navigable())
	assert.Nil(t, items[1].Data)
}

func TestStatusError_NoMessageBody(t *testing.T) {
	r := setupRouter()
	r.GET("/genre/:id", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "boom")
	})
	client := newTestClient(t, r)

	_, err := client.GetGenre(context.Background(), "g1")
	require.Error(t, err)
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusInternalServerError, te.Status)
	assert.Empty(t, te.Message)
}
