// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: the first goose query fails
	err = Migrate(db, DriverPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DriverPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "mysql")
	require.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestDialectFor(t *testing.T) {
	tests := []struct {
		driver  string
		dialect string
		dir     string
	}{
		{"pgx", "postgres", "postgres"},
		{"postgres", "postgres", "postgres"},
		{"sqlite3", "sqlite3", "sqlite"},
		{"sqlite", "sqlite3", "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			dialect, dir, err := dialectFor(tt.driver)
			require.NoError(t, err)
			assert.Equal(t, tt.dialect, dialect)
			assert.Equal(t, tt.dir, dir)
		})
	}
}

// TestMigrate_SQLite runs the embedded sqlite migrations against a real
// file database and checks that both tables accept rows.
func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "kb.db"))
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db, DriverSQLite))

	_, err = db.Exec(`INSERT INTO categories (name, slug) VALUES ('Go', 'go')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO posts (title, slug, category_id) VALUES ('Hello', 'hello', 1)`)
	require.NoError(t, err)

	var status string
	require.NoError(t, db.QueryRow(`SELECT sync_status FROM posts WHERE slug = 'hello'`).Scan(&status))
	assert.Equal(t, "UNSYNCED", status)

	// second run is a no-op
	require.NoError(t, Migrate(db, DriverSQLite))
}
