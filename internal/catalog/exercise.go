package catalog

// Exercise is a catalog entry users pick from when composing workouts.
// The catalog is read-only from the API's perspective, rows are seeded
// via migrations.
type Exercise struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Photo *string `json:"photo"`
}
