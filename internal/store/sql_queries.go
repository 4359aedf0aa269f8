package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-kb-sync/models"
)

const (
	categoriesTable = "categories"
	postsTable      = "posts"
)

var categoryColumns = []string{
	"id", "name", "slug", "description", "is_active",
	"remote_dataset_id", "sync_status", "sync_error", "created_at", "updated_at",
}

// postColumns are qualified because post reads join categories.
var postColumns = []string{
	"p.id", "p.title", "p.slug", "p.content", "p.excerpt", "p.meta_keywords", "p.published_at",
	"p.status", "p.visibility", "p.password", "p.category_id",
	"p.remote_document_id", "p.sync_status", "p.sync_error", "p.created_at", "p.updated_at",
	"c.id", "c.name", "c.slug", "c.description", "c.is_active",
	"c.remote_dataset_id", "c.sync_status", "c.sync_error", "c.created_at", "c.updated_at",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (models.Category, error) {
	var (
		c         models.Category
		datasetID sql.NullString
		syncErr   sql.NullString
	)

	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IsActive,
		&datasetID, &c.SyncStatus, &syncErr, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return models.Category{}, err
	}

	c.RemoteDatasetID = datasetID.String
	c.SyncError = syncErr.String
	return c, nil
}

func scanPost(row rowScanner) (models.Post, error) {
	var (
		p           models.Post
		publishedAt sql.NullTime
		categoryID  sql.NullInt64
		documentID  sql.NullString
		syncErr     sql.NullString

		cID        sql.NullInt64
		cName      sql.NullString
		cSlug      sql.NullString
		cDesc      sql.NullString
		cActive    sql.NullBool
		cDatasetID sql.NullString
		cStatus    sql.NullString
		cSyncErr   sql.NullString
		cCreatedAt sql.NullTime
		cUpdatedAt sql.NullTime
	)

	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.MetaKeywords, &publishedAt,
		&p.Status, &p.Visibility, &p.Password, &categoryID,
		&documentID, &p.SyncStatus, &syncErr, &p.CreatedAt, &p.UpdatedAt,
		&cID, &cName, &cSlug, &cDesc, &cActive,
		&cDatasetID, &cStatus, &cSyncErr, &cCreatedAt, &cUpdatedAt)
	if err != nil {
		return models.Post{}, err
	}

	if publishedAt.Valid {
		t := publishedAt.Time
		p.PublishedAt = &t
	}
	if categoryID.Valid {
		id := categoryID.Int64
		p.CategoryID = &id
	}
	p.RemoteDocumentID = documentID.String
	p.SyncError = syncErr.String

	if cID.Valid {
		p.Category = &models.Category{
			ID:              cID.Int64,
			Name:            cName.String,
			Slug:            cSlug.String,
			Description:     cDesc.String,
			IsActive:        cActive.Bool,
			RemoteDatasetID: cDatasetID.String,
			SyncStatus:      models.SyncStatus(cStatus.String),
			SyncError:       cSyncErr.String,
			CreatedAt:       cCreatedAt.Time,
			UpdatedAt:       cUpdatedAt.Time,
		}
	}

	return p, nil
}

// nullString maps "" to NULL so remote ids and errors stay NULL when unset.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

// statusFilter turns optional statuses into a WHERE clause. No statuses
// means no filter.
func statusFilter(column string, statuses []models.SyncStatus) sq.Sqlizer {
	if len(statuses) == 0 {
		return nil
	}

	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	return sq.Eq{column: values}
}

// now is replaced in tests.
var now = func() time.Time {
	return time.Now().UTC()
}
