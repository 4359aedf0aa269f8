package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-kb-sync/internal/mock"
	"github.com/MKhiriev/go-kb-sync/internal/validators"
	"github.com/MKhiriev/go-kb-sync/models"
)

func newValidationService(t *testing.T) (ContentService, *mock.MockContentService) {
	t.Helper()
	inner := mock.NewMockContentService(gomock.NewController(t))
	return NewContentValidationService().Wrap(inner), inner
}

func TestContentValidationService_Category(t *testing.T) {
	ctx := context.Background()

	t.Run("valid category is forwarded", func(t *testing.T) {
		svc, inner := newValidationService(t)
		in := models.Category{Name: "Go", Slug: "go"}
		inner.EXPECT().CreateCategory(ctx, in).Return(models.Category{ID: 1, Name: "Go", Slug: "go"}, nil)

		got, err := svc.CreateCategory(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("invalid slug never reaches storage", func(t *testing.T) {
		svc, _ := newValidationService(t)

		_, err := svc.CreateCategory(ctx, models.Category{Name: "Go", Slug: "Go Lang"})
		assert.ErrorIs(t, err, ErrInvalidContent)
		assert.ErrorIs(t, err, validators.ErrInvalidSlug)

		_, err = svc.UpdateCategory(ctx, models.Category{ID: 1, Name: " ", Slug: "go"})
		assert.ErrorIs(t, err, validators.ErrEmptyName)
	})
}

func TestContentValidationService_Post(t *testing.T) {
	ctx := context.Background()
	post := eligiblePost()
	post.Slug = "hello"

	t.Run("valid post is forwarded", func(t *testing.T) {
		svc, inner := newValidationService(t)
		inner.EXPECT().UpdatePost(ctx, post).Return(post, nil)

		_, err := svc.UpdatePost(ctx, post)
		require.NoError(t, err)
	})

	t.Run("password visibility needs a password", func(t *testing.T) {
		svc, _ := newValidationService(t)
		bad := post
		bad.Visibility = models.VisibilityPassword

		_, err := svc.CreatePost(ctx, bad)
		assert.ErrorIs(t, err, ErrInvalidContent)
		assert.ErrorIs(t, err, validators.ErrPasswordRequired)
	})
}

func TestContentValidationService_PassThrough(t *testing.T) {
	ctx := context.Background()
	svc, inner := newValidationService(t)
	task := models.SyncTask{Kind: models.TaskCategoryDelete, EntityID: 2}

	inner.EXPECT().DeactivateCategory(ctx, int64(2)).Return(task, nil)
	inner.EXPECT().RequestCategorySync(ctx, int64(2)).Return(task, nil)
	inner.EXPECT().RequestPostSync(ctx, int64(5)).Return(models.SyncTask{}, nil)
	inner.EXPECT().CategorySyncState(ctx, int64(2)).Return(models.SyncState{EntityID: 2}, nil)
	inner.EXPECT().PostSyncState(ctx, int64(5)).Return(models.SyncState{EntityID: 5}, nil)
	inner.EXPECT().PendingTasks(ctx, true).Return([]models.SyncTask{task}, nil)

	got, err := svc.DeactivateCategory(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, task, got)
	_, err = svc.RequestCategorySync(ctx, 2)
	require.NoError(t, err)
	_, err = svc.RequestPostSync(ctx, 5)
	require.NoError(t, err)
	_, err = svc.CategorySyncState(ctx, 2)
	require.NoError(t, err)
	_, err = svc.PostSyncState(ctx, 5)
	require.NoError(t, err)
	tasks, err := svc.PendingTasks(ctx, true)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}
