package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver for database/sql
	_ "modernc.org/sqlite"             // pure-Go SQLite driver, used for tests and local runs
)

// Open connects to the database named by url. postgres:// and postgresql://
// URLs use the pgx driver; sqlite:// URLs (and bare paths, including
// :memory:) use SQLite.
func Open(url string) (*sql.DB, error) {
	driver, dsn := driverFor(url)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// An in-memory SQLite database lives and dies with a single connection.
	if driver == "sqlite" && strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot connect to database: %w", err)
	}

	return db, nil
}

func driverFor(url string) (driver, dsn string) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return "pgx", url
	case strings.HasPrefix(url, "sqlite://"):
		return "sqlite", strings.TrimPrefix(url, "sqlite://")
	default:
		return "sqlite", url
	}
}

// Migrate creates the tables if they do not exist. The url decides which
// autoincrement spelling the tasks table gets.
func Migrate(db *sql.DB, url string) error {
	taskID := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if driver, _ := driverFor(url); driver == "pgx" {
		taskID = "BIGSERIAL PRIMARY KEY"
	}

	statements := []string{
		// timestamps are unix milliseconds so both engines round-trip them
		// without driver-specific time handling
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			created_at BIGINT NOT NULL
		)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS tasks (
			id %s,
			user_id TEXT NOT NULL REFERENCES users (id),
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at BIGINT NOT NULL,
			updated_at BIGINT NOT NULL
		)`, taskID),
		`CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON tasks (user_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}
	return nil
}
