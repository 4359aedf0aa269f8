package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-kb-sync/internal/logger"
	"github.com/MKhiriev/go-kb-sync/migrations"
)

func newTestDB(t *testing.T, driver string) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return newDB(conn, driver, logger.Nop()), mock
}

func newTestPostgresDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	return newTestDB(t, migrations.DriverPostgres)
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var categoryRowColumns = []string{
	"id", "name", "slug", "description", "is_active",
	"remote_dataset_id", "sync_status", "sync_error", "created_at", "updated_at",
}

var postRowColumns = []string{
	"id", "title", "slug", "content", "excerpt", "meta_keywords", "published_at",
	"status", "visibility", "password", "category_id",
	"remote_document_id", "sync_status", "sync_error", "created_at", "updated_at",
	"c_id", "c_name", "c_slug", "c_description", "c_is_active",
	"c_remote_dataset_id", "c_sync_status", "c_sync_error", "c_created_at", "c_updated_at",
}
