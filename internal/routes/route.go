// Package routes holds the declarative route table of the admin console:
// every URL-style path the console can navigate to, bound to the page that
// renders it and flagged with its authentication requirement.
package routes

import (
	"context"
	"io"
	"strings"
)

// Page is a navigable console screen. Implementations live in the console
// package; the route table only carries factories for them.
type Page interface {
	// Title is the human name shown in the chrome.
	Title() string

	// Open loads the page's data and renders the initial view.
	Open(ctx context.Context, w io.Writer)

	// Handle processes one line of user input. It returns false when the
	// input is not a command of this page.
	Handle(ctx context.Context, line string, w io.Writer) bool

	// Close cancels any in-flight work owned by the page.
	Close()
}

// PageFactory builds a fresh page instance for one navigation. Params carries
// the values bound to :param path segments.
type PageFactory func(params map[string]string) Page

// Route is a single path-to-page binding.
type Route struct {
	Path         string
	Title        string
	RequiresAuth bool
	New          PageFactory
	Children     []Route
}

// CleanPath strips one trailing slash, mirroring how the web console
// normalized the location before the layout membership test.
func CleanPath(p string) string {
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		return p[:len(p)-1]
	}
	return p
}
