// Package console implements the interactive admin shell: a route table of
// pages, a layout gate choosing between bare and chromed rendering, and the
// generic list/detail/dialog machinery every entity module instantiates.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"booknet/internal/api"
	"booknet/internal/logging"
	"booknet/internal/routes"
	"booknet/internal/session"
)

// Console is the interactive shell. It owns the current page, the navigation
// history position and the chrome state. Everything runs on one goroutine;
// pages own any concurrency of their own.
type Console struct {
	deps  *Deps
	table *routes.Table
	gate  *Gate

	in  *bufio.Scanner
	out io.Writer

	// ctx is the run context; page opens inherit it so cancelling Run
	// cancels any open-time fetch.
	ctx context.Context

	path         string
	page         routes.Page
	unread       int
	unreadLoaded bool
}

func New(client *api.Client, sess *session.Session, log logging.Logger, pageSize int, in io.Reader, out io.Writer) (*Console, error) {
	c := &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
	c.deps = &Deps{
		API:      client,
		Session:  sess,
		Log:      log,
		PageSize: pageSize,
		Nav:      c.navigate,
	}
	table, err := BuildTable(c.deps)
	if err != nil {
		return nil, err
	}
	c.table = table
	c.gate = NewGate(table)
	return c, nil
}

// Run starts the console loop. The session is refreshed once here; pages read
// it but never mutate it.
func (c *Console) Run(ctx context.Context) error {
	c.ctx = ctx
	start := pathSignIn
	if c.deps.Session.Restore() {
		if _, err := c.deps.Session.Refresh(ctx); err != nil {
			fmt.Fprintf(c.out, "Stored session is no longer valid: %v\n", err)
			_ = c.deps.Session.Logout()
		} else {
			start = pathHome
		}
	}
	c.navigate(start)

	for {
		fmt.Fprintf(c.out, "\n%s> ", routes.CleanPath(c.path))
		if !c.in.Scan() {
			return c.in.Err()
		}
		line := c.in.Text()
		if c.dispatch(ctx, line) {
			return nil
		}
	}
}

// dispatch handles one input line; it returns true when the user quits.
func (c *Console) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	// While a dialog is open, the page consumes everything, including words
	// that look like shell commands.
	if c.page != nil && c.pageConsumesInput() {
		c.page.Handle(ctx, line, c.out)
		return false
	}

	switch fields[0] {
	case "exit", "quit":
		return true
	case "help":
		c.printHelp()
	case "go":
		if len(fields) < 2 {
			fmt.Fprintln(c.out, "Usage: go <path>")
			return false
		}
		c.navigate(fields[1])
	case "routes":
		for _, r := range c.table.All() {
			auth := " "
			if r.RequiresAuth {
				auth = "*"
			}
			fmt.Fprintf(c.out, " %s %-24s %s\n", auth, r.Path, r.Title)
		}
	case "whoami":
		if user, ok := c.deps.Session.User(); ok {
			fmt.Fprintf(c.out, "%s <%s> (%s)\n", user.Username, user.Email, user.Role)
		} else {
			fmt.Fprintln(c.out, "Not signed in.")
		}
	case "logout":
		if err := c.deps.Session.Logout(); err != nil {
			c.deps.Log.Warn(ctx, "failed to clear stored credentials", "error", err)
		}
		c.unread = 0
		c.unreadLoaded = false
		fmt.Fprintln(c.out, "✓ Signed out.")
		c.navigate(pathSignIn)
	default:
		if c.page != nil && c.page.Handle(ctx, line, c.out) {
			return false
		}
		fmt.Fprintf(c.out, "Unknown command %q. Type help.\n", fields[0])
	}
	return false
}

// pageConsumesInput reports whether the current page has an open dialog or
// pending confirmation that must see raw input.
func (c *Console) pageConsumesInput() bool {
	type consuming interface{ ConsumesInput() bool }
	if p, ok := c.page.(consuming); ok {
		return p.ConsumesInput()
	}
	return false
}

// navigate resolves path against the route table, closes the previous page
// and opens the new one under the gate's layout decision.
func (c *Console) navigate(path string) {
	ctx := c.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	route, params, ok := c.table.Match(path)
	if !ok {
		fmt.Fprintf(c.out, "No page at %q.\n", path)
		return
	}

	if c.page != nil {
		c.page.Close()
	}
	c.path = path
	c.page = route.New(params)

	if c.gate.Mode(path) == LayoutChromed {
		// The unread count is pulled once per authenticated session, the
		// first time the chrome is shown.
		if !c.unreadLoaded && c.deps.Session.Authenticated() {
			c.refreshUnread(ctx)
			c.unreadLoaded = true
		}
		c.renderChrome()
	}
	c.page.Open(ctx, c.out)
}

// renderChrome prints the persistent shell around authenticated pages.
func (c *Console) renderChrome() {
	fmt.Fprintln(c.out, strings.Repeat("─", 64))
	if user, ok := c.deps.Session.User(); ok {
		fmt.Fprintf(c.out, " booknet admin │ %s (%s)", user.Username, user.Role)
	} else {
		fmt.Fprint(c.out, " booknet admin │ not signed in")
	}
	if c.unread > 0 {
		fmt.Fprintf(c.out, " │ %d unread", c.unread)
	}
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, " nav: /home /authors /genres /sources /notification /settings")
	fmt.Fprintln(c.out, strings.Repeat("─", 64))
}

// refreshUnread pulls the latest notifications once; the count feeds the
// chrome only. There is no polling or push.
func (c *Console) refreshUnread(ctx context.Context) {
	latest, err := c.deps.API.LatestNotifications(ctx)
	if err != nil {
		c.deps.Log.Warn(ctx, "failed to load notifications", "error", err)
		return
	}
	unread := 0
	for _, n := range latest {
		if !n.Read {
			unread++
		}
	}
	c.unread = unread
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, "Shell commands: go <path>, routes, whoami, logout, help, exit")
	fmt.Fprintln(c.out, "List pages:     next, prev, page <n>, size <n>, filter <name>, refresh,")
	fmt.Fprintln(c.out, "                add, edit <id>, del <id> [id…], open <id>, upload")
	fmt.Fprintln(c.out, "Detail pages:   edit, del, refresh")
}
