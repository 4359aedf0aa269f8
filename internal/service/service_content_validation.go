package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-kb-sync/internal/validators"
	"github.com/MKhiriev/go-kb-sync/models"
)

// ContentValidationService rejects categories and posts breaking content
// rules before they reach the wrapped service.
type ContentValidationService struct {
	inner     ContentService
	validator validators.Validator
}

func NewContentValidationService() *ContentValidationService {
	return &ContentValidationService{
		validator: validators.NewContentValidator(),
	}
}

// Wrap sets the service calls are forwarded to after validation.
func (v *ContentValidationService) Wrap(inner ContentService) ContentService {
	v.inner = inner
	return v
}

func (v *ContentValidationService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if err := v.validator.Validate(ctx, category); err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	return v.inner.CreateCategory(ctx, category)
}

func (v *ContentValidationService) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if err := v.validator.Validate(ctx, category); err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	return v.inner.UpdateCategory(ctx, category)
}

func (v *ContentValidationService) DeactivateCategory(ctx context.Context, id int64) (models.SyncTask, error) {
	return v.inner.DeactivateCategory(ctx, id)
}

func (v *ContentValidationService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if err := v.validator.Validate(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	return v.inner.CreatePost(ctx, post)
}

func (v *ContentValidationService) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if err := v.validator.Validate(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	return v.inner.UpdatePost(ctx, post)
}

func (v *ContentValidationService) RequestCategorySync(ctx context.Context, id int64) (models.SyncTask, error) {
	return v.inner.RequestCategorySync(ctx, id)
}

func (v *ContentValidationService) RequestPostSync(ctx context.Context, id int64) (models.SyncTask, error) {
	return v.inner.RequestPostSync(ctx, id)
}

func (v *ContentValidationService) CategorySyncState(ctx context.Context, id int64) (models.SyncState, error) {
	return v.inner.CategorySyncState(ctx, id)
}

func (v *ContentValidationService) PostSyncState(ctx context.Context, id int64) (models.SyncState, error) {
	return v.inner.PostSyncState(ctx, id)
}

func (v *ContentValidationService) PendingTasks(ctx context.Context, all bool) ([]models.SyncTask, error) {
	return v.inner.PendingTasks(ctx, all)
}
