// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that starts and stops
// several workers together, the keyed sync task executor and the periodic
// reconcile job.
package workers

import (
	"context"

	"github.com/MKhiriev/go-kb-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns without blocking; the worker keeps going
// until ctx is cancelled or Stop is called. Stop blocks until every
// goroutine started by Run has exited and is safe to call more than once.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// TaskHandler executes one sync task. Handlers record failures on the
// entity instead of returning them.
type TaskHandler interface {
	HandleSyncTask(ctx context.Context, task models.SyncTask)
}

// TaskSource lists the sync tasks needed to bring stale entities up to date.
type TaskSource interface {
	PendingTasks(ctx context.Context, all bool) ([]models.SyncTask, error)
}
