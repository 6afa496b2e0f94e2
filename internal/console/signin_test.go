package console

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"booknet/internal/api"
	"booknet/internal/session"
)

func signInDeps(t *testing.T, nav func(path string)) (*Deps, *int) {
	t.Helper()
	keyring.MockInit()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	logins := 0
	r.POST("/auth/login-alt", func(c *gin.Context) {
		logins++
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, c.ShouldBindJSON(&body))
		if body.Password != "secret1" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
			return
		}
		c.Header("Authorization", "Bearer test-token")
		c.Status(http.StatusOK)
	})
	r.GET("/auth/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"idUser": "u1", "username": "admin",
			"email": "admin@example.com", "role": "ADMIN",
		})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL)
	return &Deps{
		API:      client,
		Session:  session.New(client, nil),
		PageSize: 20,
		Nav:      nav,
	}, &logins
}

func TestSignInPage_EmptyUsernameRejectedLocally(t *testing.T) {
	d, logins := signInDeps(t, func(string) { t.Fatal("must not navigate") })
	p := newSignInPage(d).(*signInPage)
	var out bytes.Buffer
	ctx := context.Background()
	p.Open(ctx, &out)

	require.True(t, p.Handle(ctx, "   ", &out))

	assert.Contains(t, out.String(), "Please enter a valid username.")
	assert.Equal(t, 0, *logins, "local validation must not issue a request")
}

func TestSignInPage_ShortPasswordRejectedLocally(t *testing.T) {
	d, logins := signInDeps(t, func(string) { t.Fatal("must not navigate") })
	p := newSignInPage(d).(*signInPage)
	var out bytes.Buffer
	ctx := context.Background()
	p.Open(ctx, &out)

	require.True(t, p.Handle(ctx, "admin", &out))
	require.True(t, p.Handle(ctx, "abcd", &out))

	assert.Contains(t, out.String(), "Password must be at least 5 characters long.")
	assert.Equal(t, 0, *logins)
}

func TestSignInPage_BadCredentialsStayOnPage(t *testing.T) {
	d, logins := signInDeps(t, func(string) { t.Fatal("must not navigate") })
	p := newSignInPage(d).(*signInPage)
	var out bytes.Buffer
	ctx := context.Background()
	p.Open(ctx, &out)

	require.True(t, p.Handle(ctx, "admin", &out))
	require.True(t, p.Handle(ctx, "wrong-password", &out))

	assert.Equal(t, 1, *logins)
	assert.Contains(t, out.String(), "Login failed: invalid credentials")
	assert.False(t, d.Session.Authenticated())
}

func TestSignInPage_SuccessNavigatesHome(t *testing.T) {
	var navigated string
	d, logins := signInDeps(t, func(path string) { navigated = path })
	p := newSignInPage(d).(*signInPage)
	var out bytes.Buffer
	ctx := context.Background()
	p.Open(ctx, &out)

	require.True(t, p.Handle(ctx, "admin", &out))
	require.True(t, p.Handle(ctx, "secret1", &out))

	assert.Equal(t, 1, *logins)
	assert.Equal(t, "/home", navigated)
	assert.Contains(t, out.String(), "✓ Signed in as admin (ADMIN).")
	assert.True(t, d.Session.Authenticated())

	user, ok := d.Session.User()
	require.True(t, ok)
	assert.Equal(t, "admin", user.Username)

	creds, err := session.LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "test-token", creds.Token)
	assert.Equal(t, "admin", creds.Username)
}
