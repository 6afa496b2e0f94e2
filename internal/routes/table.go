package routes

import (
	"fmt"
	"strings"
)

// Table is the merged, immutable route table. It is built once at startup
// from per-module fragments and never mutated afterwards.
type Table struct {
	routes []Route
	flat   []flatRoute
}

// flatRoute is a routing entry with child paths joined onto their parent,
// pre-split for matching.
type flatRoute struct {
	route    *Route
	segments []string
}

// NewTable concatenates the given route fragments in order. Overlapping paths
// across modules would be resolved silently by first-match-wins at lookup
// time, so duplicates within a tree level are rejected here instead.
func NewTable(fragments ...[]Route) (*Table, error) {
	t := &Table{}
	for _, fragment := range fragments {
		t.routes = append(t.routes, fragment...)
	}
	if err := checkUnique(t.routes); err != nil {
		return nil, err
	}
	for i := range t.routes {
		if err := t.flatten(&t.routes[i], ""); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func checkUnique(level []Route) error {
	seen := make(map[string]bool, len(level))
	for i := range level {
		if seen[level[i].Path] {
			return fmt.Errorf("duplicate route path %q", level[i].Path)
		}
		seen[level[i].Path] = true
		if err := checkUnique(level[i].Children); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) flatten(r *Route, prefix string) error {
	full := prefix + r.Path
	if !strings.HasPrefix(full, "/") {
		return fmt.Errorf("route path %q does not start with /", full)
	}
	t.flat = append(t.flat, flatRoute{route: r, segments: splitPath(full)})
	for i := range r.Children {
		if err := t.flatten(&r.Children[i], full); err != nil {
			return err
		}
	}
	return nil
}

// All returns the top-level routes in registration order.
func (t *Table) All() []Route {
	return t.routes
}

// UnAuth returns the routes that do not require authentication.
func (t *Table) UnAuth() []Route {
	var out []Route
	for _, r := range t.routes {
		if !r.RequiresAuth {
			out = append(out, r)
		}
	}
	return out
}

// IsUnAuth reports whether path (trailing slash stripped) exactly matches a
// route flagged as not requiring authentication. This drives layout selection
// only; it is not an access-control decision.
func (t *Table) IsUnAuth(path string) bool {
	path = CleanPath(path)
	for _, r := range t.UnAuth() {
		if r.Path == path {
			return true
		}
	}
	return false
}

// Match resolves a concrete path to its route, binding :param segments.
// Entries are tried in registration order; the first match wins.
func (t *Table) Match(path string) (*Route, map[string]string, bool) {
	segments := splitPath(CleanPath(path))
	for _, fr := range t.flat {
		if params, ok := matchSegments(fr.segments, segments); ok {
			return fr.route, params, true
		}
	}
	return nil, nil, false
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func matchSegments(pattern, actual []string) (map[string]string, bool) {
	if len(pattern) != len(actual) {
		return nil, false
	}
	params := map[string]string{}
	for i, seg := range pattern {
		if strings.HasPrefix(seg, ":") {
			if actual[i] == "" {
				return nil, false
			}
			params[seg[1:]] = actual[i]
			continue
		}
		if seg != actual[i] {
			return nil, false
		}
	}
	return params, true
}
