package service

import (
	"context"

	"github.com/MKhiriev/go-kb-sync/internal/logger"
	"github.com/MKhiriev/go-kb-sync/internal/store"
	"github.com/MKhiriev/go-kb-sync/models"
)

// contentService owns category and post writes. It never talks to the
// remote side: it marks entities UNSYNCED and hands sync tasks to the
// scheduler after commit, so no remote call races a transaction that could
// still roll back.
type contentService struct {
	tx         store.Transactor
	categories store.CategoryRepository
	posts      store.PostRepository
	scheduler  TaskScheduler

	logger *logger.Logger
}

func NewContentService(
	tx store.Transactor,
	categories store.CategoryRepository,
	posts store.PostRepository,
	scheduler TaskScheduler,
	logger *logger.Logger,
) ContentService {
	logger.Debug().Msg("creating content service")
	return &contentService{
		tx:         tx,
		categories: categories,
		posts:      posts,
		scheduler:  scheduler,
		logger:     logger,
	}
}

func (s *contentService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	category.RemoteDatasetID = ""
	category.SyncStatus = models.SyncStatusUnsynced
	category.SyncError = ""

	var created models.Category
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.categories.CreateCategory(ctx, category)
		if err != nil {
			return err
		}

		s.scheduleAfterCommit(ctx, models.SyncTask{Kind: models.TaskCategorySync, EntityID: created.ID})
		return nil
	})

	return created, err
}

func (s *contentService) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	var updated models.Category
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.categories.FindCategoryByID(ctx, category.ID)
		if err != nil {
			return err
		}

		existing.Name = category.Name
		existing.Slug = category.Slug
		existing.Description = category.Description
		existing.SyncStatus = models.SyncStatusUnsynced
		if err = s.categories.UpdateCategory(ctx, existing); err != nil {
			return err
		}

		updated = existing
		s.scheduleAfterCommit(ctx, models.SyncTask{Kind: models.TaskCategorySync, EntityID: existing.ID})
		return nil
	})

	return updated, err
}

// DeactivateCategory marks the category inactive. The row is removed by the
// scheduled delete task once the remote dataset is gone.
func (s *contentService) DeactivateCategory(ctx context.Context, id int64) (models.SyncTask, error) {
	task := models.SyncTask{Kind: models.TaskCategoryDelete, EntityID: id}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		category, err := s.categories.FindCategoryByID(ctx, id)
		if err != nil {
			return err
		}

		category.IsActive = false
		category.SyncStatus = models.SyncStatusUnsynced
		if err = s.categories.UpdateCategory(ctx, category); err != nil {
			return err
		}

		s.scheduleAfterCommit(ctx, task)
		return nil
	})
	if err != nil {
		return models.SyncTask{}, err
	}

	return task, nil
}

func (s *contentService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	post.RemoteDocumentID = ""
	post.SyncStatus = models.SyncStatusUnsynced
	post.SyncError = ""

	var created models.Post
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		inserted, err := s.posts.CreatePost(ctx, post)
		if err != nil {
			return err
		}

		// reload to pick up the category used by the eligibility check
		created, err = s.posts.FindPostByID(ctx, inserted.ID)
		if err != nil {
			return err
		}

		if created.IsEligibleForKnowledgeBase() {
			s.scheduleAfterCommit(ctx, models.SyncTask{Kind: models.TaskPostSync, EntityID: created.ID})
		}
		return nil
	})

	return created, err
}

// UpdatePost saves the editable fields. An eligible post is queued for
// sync; a post that lost eligibility but still has a remote document is
// queued for remote removal.
func (s *contentService) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	var updated models.Post
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.posts.FindPostByID(ctx, post.ID)
		if err != nil {
			return err
		}

		existing.Title = post.Title
		existing.Slug = post.Slug
		existing.Content = post.Content
		existing.Excerpt = post.Excerpt
		existing.MetaKeywords = post.MetaKeywords
		existing.PublishedAt = post.PublishedAt
		existing.Status = post.Status
		existing.Visibility = post.Visibility
		existing.Password = post.Password
		existing.CategoryID = post.CategoryID
		existing.SyncStatus = models.SyncStatusUnsynced
		if err = s.posts.UpdatePost(ctx, existing); err != nil {
			return err
		}

		updated, err = s.posts.FindPostByID(ctx, post.ID)
		if err != nil {
			return err
		}

		switch {
		case updated.IsEligibleForKnowledgeBase():
			s.scheduleAfterCommit(ctx, models.SyncTask{Kind: models.TaskPostSync, EntityID: updated.ID})
		case updated.HasRemoteDocument():
			s.scheduleAfterCommit(ctx, models.SyncTask{Kind: models.TaskPostRemoteDelete, EntityID: updated.ID})
		}
		return nil
	})

	return updated, err
}

func (s *contentService) RequestCategorySync(ctx context.Context, id int64) (models.SyncTask, error) {
	if _, err := s.categories.FindCategoryByID(ctx, id); err != nil {
		return models.SyncTask{}, err
	}

	task := models.SyncTask{Kind: models.TaskCategorySync, EntityID: id}
	s.scheduler.Schedule(task)
	return task, nil
}

func (s *contentService) RequestPostSync(ctx context.Context, id int64) (models.SyncTask, error) {
	if _, err := s.posts.FindPostByID(ctx, id); err != nil {
		return models.SyncTask{}, err
	}

	task := models.SyncTask{Kind: models.TaskPostSync, EntityID: id}
	s.scheduler.Schedule(task)
	return task, nil
}

func (s *contentService) CategorySyncState(ctx context.Context, id int64) (models.SyncState, error) {
	category, err := s.categories.FindCategoryByID(ctx, id)
	if err != nil {
		return models.SyncState{}, err
	}
	return category.SyncState(), nil
}

func (s *contentService) PostSyncState(ctx context.Context, id int64) (models.SyncState, error) {
	post, err := s.posts.FindPostByID(ctx, id)
	if err != nil {
		return models.SyncState{}, err
	}
	return post.SyncState(), nil
}

func (s *contentService) PendingTasks(ctx context.Context, all bool) ([]models.SyncTask, error) {
	var statuses []models.SyncStatus
	if !all {
		statuses = []models.SyncStatus{models.SyncStatusUnsynced, models.SyncStatusFailed}
	}

	categoryIDs, err := s.categories.ListCategoryIDs(ctx, statuses...)
	if err != nil {
		return nil, err
	}
	postIDs, err := s.posts.ListPostIDs(ctx, statuses...)
	if err != nil {
		return nil, err
	}

	tasks := make([]models.SyncTask, 0, len(categoryIDs)+len(postIDs))
	for _, id := range categoryIDs {
		tasks = append(tasks, models.SyncTask{Kind: models.TaskCategorySync, EntityID: id})
	}
	for _, id := range postIDs {
		tasks = append(tasks, models.SyncTask{Kind: models.TaskPostSync, EntityID: id})
	}

	return tasks, nil
}

func (s *contentService) scheduleAfterCommit(ctx context.Context, task models.SyncTask) {
	store.AfterCommit(ctx, func(ctx context.Context) {
		logger.FromContext(ctx).Debug().Stringer("task", task).Msg("scheduling sync task")
		s.scheduler.Schedule(task)
	})
}
