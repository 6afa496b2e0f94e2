package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoutes() []Route {
	return []Route{
		{Path: "/login", Title: "Login"},
		{Path: "/sign-in", Title: "Sign In"},
		{Path: "/home", Title: "Home", RequiresAuth: true},
		{
			Path: "/authors", Title: "Authors", RequiresAuth: true,
			Children: []Route{
				{Path: "/:idAuthor", Title: "Author", RequiresAuth: true},
			},
		},
	}
}

func TestNewTable_RejectsDuplicatePaths(t *testing.T) {
	_, err := NewTable(
		[]Route{{Path: "/home", Title: "Home"}},
		[]Route{{Path: "/home", Title: "Other Home"}},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate route path "/home"`)
}

func TestNewTable_RejectsRelativePath(t *testing.T) {
	_, err := NewTable([]Route{{Path: "home", Title: "Home"}})
	require.Error(t, err)
}

func TestMatch_StaticAndParam(t *testing.T) {
	table, err := NewTable(testRoutes())
	require.NoError(t, err)

	r, params, ok := table.Match("/home")
	require.True(t, ok)
	assert.Equal(t, "Home", r.Title)
	assert.Empty(t, params)

	r, params, ok = table.Match("/authors/a42")
	require.True(t, ok)
	assert.Equal(t, "Author", r.Title)
	assert.Equal(t, map[string]string{"idAuthor": "a42"}, params)

	_, _, ok = table.Match("/authors/a42/books")
	assert.False(t, ok)

	_, _, ok = table.Match("/nowhere")
	assert.False(t, ok)
}

func TestMatch_TrailingSlash(t *testing.T) {
	table, err := NewTable(testRoutes())
	require.NoError(t, err)

	r, _, ok := table.Match("/authors/")
	require.True(t, ok)
	assert.Equal(t, "Authors", r.Title)
}

func TestIsUnAuth_ExactMembership(t *testing.T) {
	table, err := NewTable(testRoutes())
	require.NoError(t, err)

	assert.True(t, table.IsUnAuth("/login"))
	assert.True(t, table.IsUnAuth("/sign-in"))
	assert.True(t, table.IsUnAuth("/sign-in/"), "one trailing slash is stripped before the membership test")
	assert.False(t, table.IsUnAuth("/sign-in//"), "only one trailing slash is stripped")
	assert.False(t, table.IsUnAuth("/home"))
	assert.False(t, table.IsUnAuth("/authors/a42"))
}

func TestUnAuth_ListsOnlyOpenRoutes(t *testing.T) {
	table, err := NewTable(testRoutes())
	require.NoError(t, err)

	open := table.UnAuth()
	require.Len(t, open, 2)
	assert.Equal(t, "/login", open[0].Path)
	assert.Equal(t, "/sign-in", open[1].Path)
}

func TestCleanPath(t *testing.T) {
	assert.Equal(t, "/authors", CleanPath("/authors/"))
	assert.Equal(t, "/authors", CleanPath("/authors"))
	assert.Equal(t, "/authors/", CleanPath("/authors//"))
	assert.Equal(t, "/", CleanPath("/"))
}
