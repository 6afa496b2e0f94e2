package console

import "booknet/internal/routes"

// LayoutMode selects how a page is framed.
type LayoutMode int

const (
	// LayoutBare renders the page without the navigation chrome. Used for
	// the sign-in and sign-up screens.
	LayoutBare LayoutMode = iota
	// LayoutChromed wraps the page in the header and navigation shell.
	LayoutChromed
)

// Gate decides, on every navigation, whether the target path gets the
// authenticated chrome. The decision is purely presentational: it is a
// membership test against the unauthenticated route set, not access control.
// Authorization is enforced by the server on every API call.
type Gate struct {
	table *routes.Table
}

func NewGate(table *routes.Table) *Gate {
	return &Gate{table: table}
}

func (g *Gate) Mode(path string) LayoutMode {
	if g.table.IsUnAuth(path) {
		return LayoutBare
	}
	return LayoutChromed
}
