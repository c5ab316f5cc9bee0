package portfolio

import (
	"embed"
)

//go:embed data/sql/migrations/*.sql
var migrationsFS embed.FS

// GetMigrationsFS returns the embedded migration files for the hosted store
// schema.
func GetMigrationsFS() embed.FS {
	return migrationsFS
}
