package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"booknet/internal/models"
	"booknet/internal/routes"
	"booknet/internal/session"
)

const pathSettings = "/settings"

func homeRoutes(d *Deps) []routes.Route {
	return []routes.Route{
		{
			Path:         pathHome,
			Title:        "Home",
			RequiresAuth: true,
			New: func(map[string]string) routes.Page {
				return newHomePage(d)
			},
		},
	}
}

func settingsRoutes(d *Deps) []routes.Route {
	return []routes.Route{
		{
			Path:         pathSettings,
			Title:        "Settings",
			RequiresAuth: true,
			New: func(map[string]string) routes.Page {
				return newSettingsPage(d)
			},
		},
	}
}

// homePage is the landing screen: identity summary plus the latest
// notifications, fetched once when the page opens.
type homePage struct {
	d      *Deps
	latest []models.Notification
}

func newHomePage(d *Deps) routes.Page {
	return &homePage{d: d}
}

func (p *homePage) Title() string {
	return "Home"
}

func (p *homePage) Open(ctx context.Context, w io.Writer) {
	latest, err := p.d.API.LatestNotifications(ctx)
	if err != nil {
		p.d.Log.Warn(ctx, "failed to load latest notifications", "error", err)
	} else {
		p.latest = latest
	}
	p.Render(w)
}

func (p *homePage) Close() {}

func (p *homePage) Render(w io.Writer) {
	fmt.Fprintln(w, "== Home ==")
	if user, ok := p.d.Session.User(); ok {
		fmt.Fprintf(w, "Signed in as %s (%s).\n", user.Username, user.Role)
	}
	if len(p.latest) > 0 {
		fmt.Fprintln(w, "Latest notifications:")
		for _, n := range p.latest {
			marker := " "
			if !n.Read {
				marker = "•"
			}
			fmt.Fprintf(w, "%s %s: %s\n", marker, n.Title, clip(n.Message, 60))
		}
	}
	fmt.Fprintln(w, "Pages: /authors /genres /sources /notification /settings")
}

func (p *homePage) Handle(ctx context.Context, line string, w io.Writer) bool {
	return false
}

// settingsPage shows the session in read-only form.
type settingsPage struct {
	d *Deps
}

func newSettingsPage(d *Deps) routes.Page {
	return &settingsPage{d: d}
}

func (p *settingsPage) Title() string {
	return "Settings"
}

func (p *settingsPage) Open(ctx context.Context, w io.Writer) {
	p.Render(w)
}

func (p *settingsPage) Render(w io.Writer) {
	fmt.Fprintln(w, "== Settings ==")
	user, ok := p.d.Session.User()
	if !ok {
		fmt.Fprintln(w, "Not signed in.")
		return
	}
	fmt.Fprintf(w, "User:  %s\n", user.Username)
	fmt.Fprintf(w, "Email: %s\n", user.Email)
	fmt.Fprintf(w, "Role:  %s\n", user.Role)
	if creds, err := session.LoadCredentials(); err == nil && creds.ExpiresAt > 0 {
		fmt.Fprintf(w, "Token expires: %s\n", time.Unix(creds.ExpiresAt, 0).Format(time.RFC1123))
	}
}

func (p *settingsPage) Handle(ctx context.Context, line string, w io.Writer) bool {
	return false
}

func (p *settingsPage) Close() {}
