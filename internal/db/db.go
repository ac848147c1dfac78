// internal/db/db.go
package db

import (
    _ "embed"
    "fmt"

    "github.com/jmoiron/sqlx"
    _ "github.com/lib/pq"
)

//go:embed schema.sql
var schemaSQL string

// Open connects to Postgres, verifies the connection and makes sure the
// tables exist. The schema uses CREATE TABLE IF NOT EXISTS so running it
// on every start is safe.
func Open(databaseURL string) (*sqlx.DB, error) {
    conn, err := sqlx.Open("postgres", databaseURL)
    if err != nil {
        return nil, fmt.Errorf("open database: %w", err)
    }

    if err = conn.Ping(); err != nil {
        return nil, fmt.Errorf("ping database: %w", err)
    }

    if _, err = conn.Exec(schemaSQL); err != nil {
        return nil, fmt.Errorf("apply schema: %w", err)
    }

    return conn, nil
}
