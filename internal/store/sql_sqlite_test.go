package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-kb-sync/internal/config"
	"github.com/MKhiriev/go-kb-sync/internal/logger"
	"github.com/MKhiriev/go-kb-sync/models"
)

// newSQLiteStorages opens a migrated file database in a temp dir.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	ctx := context.Background()
	db, err := NewConnect(ctx, config.DB{
		Driver: "sqlite3",
		DSN:    filepath.Join(t.TempDir(), "kb.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, db.Migrate())
	return NewStorages(db, logger.Nop())
}

func TestSQLite_CategoryLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	created, err := s.CategoryRepository.CreateCategory(ctx, models.Category{
		Name: "Go", Slug: "go", Description: "all things go", IsActive: true,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	_, err = s.CategoryRepository.CreateCategory(ctx, models.Category{Name: "Go again", Slug: "go"})
	assert.ErrorIs(t, err, ErrSlugAlreadyExists)

	require.NoError(t, s.CategoryRepository.SaveCategorySyncSuccess(ctx, created.ID, "ds-1"))

	found, err := s.CategoryRepository.FindCategoryByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ds-1", found.RemoteDatasetID)
	assert.Equal(t, models.SyncStatusSynced, found.SyncStatus)
	assert.Empty(t, found.SyncError)
	assert.True(t, found.IsActive)

	require.NoError(t, s.CategoryRepository.SaveCategorySyncFailure(ctx, created.ID, models.SyncStatusFailed, "boom"))
	ids, err := s.CategoryRepository.ListCategoryIDs(ctx, models.SyncStatusFailed)
	require.NoError(t, err)
	assert.Equal(t, []int64{created.ID}, ids)

	require.NoError(t, s.CategoryRepository.DeleteCategory(ctx, created.ID))
	_, err = s.CategoryRepository.FindCategoryByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

// TestSQLite_CategoryDeleteDetachesPosts verifies that documents are
// detached and the foreign key clears the post's category.
func TestSQLite_CategoryDeleteDetachesPosts(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	category, err := s.CategoryRepository.CreateCategory(ctx, models.Category{Name: "Go", Slug: "go", IsActive: true})
	require.NoError(t, err)

	published := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	post, err := s.PostRepository.CreatePost(ctx, models.Post{
		Title: "Hello", Slug: "hello", Content: "body",
		Status: models.PostStatusPublished, Visibility: models.VisibilityPublic,
		CategoryID: &category.ID, PublishedAt: &published,
	})
	require.NoError(t, err)
	require.NoError(t, s.PostRepository.SavePostSyncSuccess(ctx, post.ID, "doc-1"))

	loaded, err := s.PostRepository.FindPostByID(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Category)
	assert.Equal(t, "Go", loaded.Category.Name)
	require.NotNil(t, loaded.PublishedAt)
	assert.True(t, published.Equal(*loaded.PublishedAt))

	err = s.DB.WithinTransaction(ctx, func(ctx context.Context) error {
		n, err := s.PostRepository.DetachCategoryDocuments(ctx, category.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, int64(1), n)
		return s.CategoryRepository.DeleteCategory(ctx, category.ID)
	})
	require.NoError(t, err)

	loaded, err = s.PostRepository.FindPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded.CategoryID)
	assert.Nil(t, loaded.Category)
	assert.Empty(t, loaded.RemoteDocumentID)
	assert.Equal(t, models.SyncStatusUnsynced, loaded.SyncStatus)
}

func TestSQLite_CreatePostUnknownCategory(t *testing.T) {
	s := newSQLiteStorages(t)
	missing := int64(404)

	_, err := s.PostRepository.CreatePost(context.Background(), models.Post{
		Title: "x", Slug: "x", Status: models.PostStatusDraft, Visibility: models.VisibilityPublic,
		CategoryID: &missing,
	})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
