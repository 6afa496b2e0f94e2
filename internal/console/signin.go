package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"booknet/internal/routes"
)

const (
	pathLogin  = "/login"
	pathSignIn = "/sign-in"
	pathSignUp = "/sign-up"
	pathHome   = "/home"
)

func authenticationRoutes(d *Deps) []routes.Route {
	return []routes.Route{
		{
			Path:  pathLogin,
			Title: "Sign in",
			New: func(map[string]string) routes.Page {
				return newSignInPage(d)
			},
		},
		{
			Path:  pathSignIn,
			Title: "Sign in",
			New: func(map[string]string) routes.Page {
				return newSignInPage(d)
			},
		},
		{
			Path:  pathSignUp,
			Title: "Sign up",
			New: func(map[string]string) routes.Page {
				return newSignUpPage(d)
			},
		},
	}
}

// signInPage prompts for username then password. Field validation is local;
// only a valid form issues the login request. A successful login stores the
// token, refreshes the session and navigates home; any failure keeps the
// user on this page.
type signInPage struct {
	d        *Deps
	username string
	stage    int // 0 = username, 1 = password
	errMsg   string
}

func newSignInPage(d *Deps) routes.Page {
	return &signInPage{d: d}
}

func (p *signInPage) Title() string {
	return "Sign in"
}

func (p *signInPage) Open(ctx context.Context, w io.Writer) {
	p.stage = 0
	p.username = ""
	p.Render(w)
}

func (p *signInPage) Close() {}

func (p *signInPage) Render(w io.Writer) {
	fmt.Fprintln(w, "== Sign in ==")
	if p.errMsg != "" {
		fmt.Fprintf(w, "! %s\n", p.errMsg)
	}
	if p.stage == 0 {
		fmt.Fprint(w, "Username: ")
	} else {
		fmt.Fprint(w, "Password: ")
	}
}

func (p *signInPage) Handle(ctx context.Context, line string, w io.Writer) bool {
	value := strings.TrimSpace(line)
	p.errMsg = ""

	if p.stage == 0 {
		if value == "" {
			p.errMsg = "Please enter a valid username."
			p.Render(w)
			return true
		}
		p.username = value
		p.stage = 1
		p.Render(w)
		return true
	}

	if len(value) < 5 {
		p.errMsg = "Password must be at least 5 characters long."
		p.stage = 0
		p.Render(w)
		return true
	}

	user, err := p.d.Session.Login(ctx, p.username, value)
	if err != nil {
		p.errMsg = fmt.Sprintf("Login failed: %v", err)
		p.stage = 0
		p.Render(w)
		return true
	}

	fmt.Fprintf(w, "✓ Signed in as %s (%s).\n", user.Username, user.Role)
	p.d.Nav(pathHome)
	return true
}

// signUpPage exists as a route target; account creation runs through the
// platform's public site, not this console.
type signUpPage struct{}

func newSignUpPage(*Deps) routes.Page {
	return &signUpPage{}
}

func (p *signUpPage) Title() string {
	return "Sign up"
}

func (p *signUpPage) Open(ctx context.Context, w io.Writer) {
	p.Render(w)
}

func (p *signUpPage) Render(w io.Writer) {
	fmt.Fprintln(w, "== Sign up ==")
	fmt.Fprintln(w, "Accounts are created on the BookNet site. Use `go /sign-in` once you have one.")
}

func (p *signUpPage) Handle(ctx context.Context, line string, w io.Writer) bool {
	return false
}

func (p *signUpPage) Close() {}
