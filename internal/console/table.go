package console

import "booknet/internal/routes"

// BuildTable merges every module's route fragment into the app route table.
// Fragment order matters: the first match wins at lookup time, and NewTable
// rejects duplicate paths outright.
func BuildTable(d *Deps) (*routes.Table, error) {
	return routes.NewTable(
		authenticationRoutes(d),
		authorRoutes(d),
		genreRoutes(d),
		homeRoutes(d),
		notificationRoutes(d),
		settingsRoutes(d),
		sourceRoutes(d),
	)
}
