package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"booknet/internal/models"
	"booknet/internal/routes"
)

const pathNotification = "/notification"

func notificationRoutes(d *Deps) []routes.Route {
	return []routes.Route{
		{
			Path:         pathNotification,
			Title:        "Notifications",
			RequiresAuth: true,
			New: func(map[string]string) routes.Page {
				return newNotificationPage(d)
			},
		},
	}
}

// notificationPage lists the user's notifications. System notifications are
// informational only and cannot be opened.
type notificationPage struct {
	d      *Deps
	items  []models.Notification
	errMsg string
}

func newNotificationPage(d *Deps) routes.Page {
	return &notificationPage{d: d}
}

func (p *notificationPage) Title() string {
	return "Notifications"
}

func (p *notificationPage) Open(ctx context.Context, w io.Writer) {
	p.load(ctx)
	p.Render(w)
}

func (p *notificationPage) Close() {}

func (p *notificationPage) load(ctx context.Context) {
	p.errMsg = ""
	items, err := p.d.API.Notifications(ctx)
	if err != nil {
		p.errMsg = err.Error()
		p.items = nil
		return
	}
	p.items = items
}

func (p *notificationPage) Render(w io.Writer) {
	fmt.Fprintln(w, "== Notifications ==")
	switch {
	case p.errMsg != "":
		fmt.Fprintf(w, "! %s\n", p.errMsg)
		fmt.Fprintln(w, "Type refresh to retry.")
	case len(p.items) == 0:
		fmt.Fprintln(w, "No notifications.")
	default:
		for i, n := range p.items {
			marker := " "
			if !n.Read {
				marker = "•"
			}
			tag := ""
			if !n.Navigable() {
				tag = " [system]"
			}
			fmt.Fprintf(w, "%s %2d) %s: %s (%s, from %s)%s\n",
				marker, i+1, n.Title, clip(n.Message, 60),
				n.CreatedAt.Format("2006-01-02 15:04"), n.Author.Username, tag)
		}
	}
}

func (p *notificationPage) Handle(ctx context.Context, line string, w io.Writer) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "refresh":
		p.load(ctx)
		p.Render(w)
	case "open":
		n, err := strconv.Atoi(argOr(fields, 1, ""))
		if err != nil || n < 1 || n > len(p.items) {
			fmt.Fprintln(w, "Usage: open <number>")
			return true
		}
		item := p.items[n-1]
		if !item.Navigable() {
			fmt.Fprintln(w, "System notifications cannot be opened.")
			return true
		}
		if item.Data == nil || item.Data.Data == "" {
			fmt.Fprintln(w, "This notification carries no destination.")
			return true
		}
		p.d.Nav(item.Data.Data)
	default:
		return false
	}
	return true
}
