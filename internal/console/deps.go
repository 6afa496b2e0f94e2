package console

import (
	"booknet/internal/api"
	"booknet/internal/logging"
	"booknet/internal/session"
)

// Deps is what every page constructor needs: the API boundary, the session
// and navigation back into the console shell.
type Deps struct {
	API      *api.Client
	Session  *session.Session
	Log      logging.Logger
	PageSize int

	// Nav navigates the console to another route path.
	Nav func(path string)
}
