// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"strings"

	"github.com/dtlpy/dtlpy-go/internal/config"
)

// memoryDSN is the sqlite in-memory database.
const memoryDSN = ":memory:"

// Create builds the Data Source Name for the configured engine.
func Create(db *config.DB) string {
	switch db.GormEngine {
	case config.EngineMySQL:
		return MySQL(db)
	case config.EnginePostgres:
		return Postgres(db)
	default:
		return SQLite(db)
	}
}

// MySQL builds a go-sql-driver/mysql DSN.
func MySQL(db *config.DB) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
		db.Extras,
	)
}

// Postgres builds a key/value pgx DSN. Extras are appended as given,
// e.g. "sslmode=disable TimeZone=UTC".
func Postgres(db *config.DB) string {
	out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		db.Host,
		db.Port,
		db.User,
		db.Password,
		db.Name,
	)

	if extras := strings.TrimSpace(db.Extras); extras != "" {
		out += " " + extras
	}

	return out
}

// SQLite returns the database file, or an in-memory database when no path is set.
func SQLite(db *config.DB) string {
	if db.Path == "" {
		return memoryDSN
	}

	if db.Extras != "" {
		return db.Path + "?" + db.Extras
	}

	return db.Path
}
