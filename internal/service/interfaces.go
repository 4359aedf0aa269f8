package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-kb-sync/models"
)

// TaskScheduler accepts sync tasks for background execution. Schedule must
// not block.
type TaskScheduler interface {
	Schedule(task models.SyncTask)
}

// SyncService mirrors local categories and posts into the remote knowledge
// base. Its operations never return errors: failures are logged and stored
// on the entity's sync state.
type SyncService interface {
	SyncCategory(ctx context.Context, id int64)
	DeleteCategoryAsync(ctx context.Context, id int64)

	SyncPost(ctx context.Context, id int64)
	CreatePostDocument(ctx context.Context, id int64)
	UpdatePostDocument(ctx context.Context, id int64)
	DeletePostFromKnowledgeBase(ctx context.Context, id int64)

	// HandleSyncTask dispatches a scheduled task to the operation above
	// matching its kind.
	HandleSyncTask(ctx context.Context, task models.SyncTask)
}

// WorkflowService runs remote workflows synchronously.
type WorkflowService interface {
	// RunWorkflowAndWait starts a run and blocks until it reaches a terminal
	// state or timeout elapses. A non-positive timeout uses the configured
	// default.
	RunWorkflowAndWait(ctx context.Context, inputs map[string]any, timeout time.Duration) (json.RawMessage, error)
}

// ContentService is the write side of categories and posts. Every mutation
// marks the entity UNSYNCED and schedules its sync task once the surrounding
// transaction commits.
type ContentService interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeactivateCategory(ctx context.Context, id int64) (models.SyncTask, error)

	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)

	RequestCategorySync(ctx context.Context, id int64) (models.SyncTask, error)
	RequestPostSync(ctx context.Context, id int64) (models.SyncTask, error)

	CategorySyncState(ctx context.Context, id int64) (models.SyncState, error)
	PostSyncState(ctx context.Context, id int64) (models.SyncState, error)

	// PendingTasks lists sync tasks for entities in UNSYNCED or FAILED
	// state, or for every entity when all is set. Category tasks come first.
	PendingTasks(ctx context.Context, all bool) ([]models.SyncTask, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}
