package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-kb-sync/models"
)

// CategoryRepository persists categories and their sync state.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) error
	FindCategoryByID(ctx context.Context, id int64) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	// SaveCategorySyncSuccess records the remote dataset id, marks the
	// category SYNCED and clears the stored error.
	SaveCategorySyncSuccess(ctx context.Context, id int64, datasetID string) error
	// SaveCategorySyncFailure stores status and error text, leaving the
	// remote dataset id untouched.
	SaveCategorySyncFailure(ctx context.Context, id int64, status models.SyncStatus, syncErr string) error

	// ListCategoryIDs returns ids in ascending order. With statuses given
	// only categories in one of them are returned.
	ListCategoryIDs(ctx context.Context, statuses ...models.SyncStatus) ([]int64, error)
}

// PostRepository persists posts and their sync state.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) error
	// FindPostByID loads the post together with its category, if any.
	FindPostByID(ctx context.Context, id int64) (models.Post, error)

	SavePostSyncSuccess(ctx context.Context, id int64, documentID string) error
	SavePostSyncFailure(ctx context.Context, id int64, status models.SyncStatus, syncErr string) error
	// ClearPostRemoteDocument forgets the remote document id after a
	// successful remote delete and marks the post UNSYNCED.
	ClearPostRemoteDocument(ctx context.Context, id int64) error
	// DetachCategoryDocuments clears remote document ids of every post in
	// the category. Returns the number of posts touched.
	DetachCategoryDocuments(ctx context.Context, categoryID int64) (int64, error)

	ListPostIDs(ctx context.Context, statuses ...models.SyncStatus) ([]int64, error)
}

// Transactor runs fn inside a database transaction. See [DB.WithinTransaction].
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
