package console

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"booknet/internal/api"
	"booknet/internal/logging"
	"booknet/internal/session"
)

// consoleServer is a minimal fake of the API surface the shell touches during
// a sign-in, browse and quit run.
func consoleServer(t *testing.T) *api.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login-alt", func(c *gin.Context) {
		c.Header("Authorization", "Bearer run-token")
		c.Status(http.StatusOK)
	})
	r.GET("/auth/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"idUser": "u1", "username": "admin",
			"email": "admin@example.com", "role": "ADMIN",
		})
	})
	r.GET("/notification/latest", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{
				"idNotification": "n1",
				"title":          "New books",
				"message":        "12 books were imported",
				"author":         gin.H{"idUser": "u2", "username": "importer"},
				"createdAt":      "2026-08-30T10:00:00Z",
				"read":           false,
				"type":           "import",
			},
		})
	})
	r.GET("/genre", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"content":     []gin.H{{"idGenre": "g1", "name": "Fantasy"}},
			"currentPage": 0,
			"pageSize":    20,
		})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL)
}

func newTestConsole(t *testing.T, client *api.Client, in io.Reader, out io.Writer) *Console {
	t.Helper()
	keyring.MockInit()
	c, err := New(client, session.New(client, nil), logging.New(io.Discard, "info", "text"), 20, in, out)
	require.NoError(t, err)
	return c
}

func TestConsoleRun_SignInAndBrowse(t *testing.T) {
	client := consoleServer(t)
	script := strings.Join([]string{
		"admin",     // sign-in username
		"secret1",   // sign-in password
		"go /genres",
		"whoami",
		"exit",
	}, "\n")
	var out bytes.Buffer
	c := newTestConsole(t, client, strings.NewReader(script), &out)

	require.NoError(t, c.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "== Sign in ==", "an anonymous run starts on the sign-in page")
	assert.Contains(t, text, "✓ Signed in as admin (ADMIN).")
	assert.Contains(t, text, "Fantasy")
	assert.Contains(t, text, "admin <admin@example.com> (ADMIN)")
}

func TestConsoleRun_UnreadCountAfterSignIn(t *testing.T) {
	client := consoleServer(t)
	script := strings.Join([]string{
		"admin",
		"secret1",
		"exit",
	}, "\n")
	var out bytes.Buffer
	c := newTestConsole(t, client, strings.NewReader(script), &out)

	require.NoError(t, c.Run(context.Background()))

	assert.Contains(t, out.String(), "1 unread",
		"signing in interactively pulls the unread count into the chrome")
}

func TestConsoleNavigate_UsesRunContext(t *testing.T) {
	client := consoleServer(t)
	var out bytes.Buffer
	c := newTestConsole(t, client, strings.NewReader(""), &out)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.ctx = ctx

	c.navigate("/genres")

	assert.Contains(t, out.String(), "context canceled",
		"page loads run under the shell's context, not a fresh background one")
}

func TestConsoleNavigate_UnknownPath(t *testing.T) {
	client := consoleServer(t)
	var out bytes.Buffer
	c := newTestConsole(t, client, strings.NewReader(""), &out)

	c.navigate("/nowhere")

	assert.Contains(t, out.String(), `No page at "/nowhere".`)
	assert.Nil(t, c.page)
}

func TestConsoleDispatch_Routes(t *testing.T) {
	client := consoleServer(t)
	var out bytes.Buffer
	c := newTestConsole(t, client, strings.NewReader(""), &out)

	quit := c.dispatch(context.Background(), "routes")

	assert.False(t, quit)
	text := out.String()
	assert.Contains(t, text, "/sign-in")
	assert.Contains(t, text, "* /authors")
	assert.Contains(t, text, "* /notification")
}

func TestConsoleDispatch_UnknownCommand(t *testing.T) {
	client := consoleServer(t)
	var out bytes.Buffer
	c := newTestConsole(t, client, strings.NewReader(""), &out)
	c.navigate("/sign-up")

	quit := c.dispatch(context.Background(), "frobnicate")

	assert.False(t, quit)
	assert.Contains(t, out.String(), `Unknown command "frobnicate". Type help.`)
}

func TestConsoleDispatch_Quit(t *testing.T) {
	client := consoleServer(t)
	var out bytes.Buffer
	c := newTestConsole(t, client, strings.NewReader(""), &out)

	assert.True(t, c.dispatch(context.Background(), "exit"))
	assert.True(t, c.dispatch(context.Background(), "quit"))
}
