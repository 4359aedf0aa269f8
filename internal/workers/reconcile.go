package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-kb-sync/internal/logger"
	"github.com/MKhiriev/go-kb-sync/internal/service"
)

// ReconcileJob periodically schedules sync tasks for every UNSYNCED or
// FAILED entity. A non-positive interval disables it.
type ReconcileJob struct {
	source    TaskSource
	scheduler service.TaskScheduler
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewReconcileJob(source TaskSource, scheduler service.TaskScheduler, interval time.Duration, logger *logger.Logger) *ReconcileJob {
	return &ReconcileJob{
		source:    source,
		scheduler: scheduler,
		interval:  interval,
		logger:    logger,
	}
}

// Run starts the ticker goroutine. It stops any previously running ticker
// first.
func (j *ReconcileJob) Run(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Info().Msg("reconcile job disabled")
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.Reconcile(jobCtx)
			}
		}
	}()
}

// Reconcile runs one pass and returns the number of scheduled tasks.
func (j *ReconcileJob) Reconcile(ctx context.Context) int {
	tasks, err := j.source.PendingTasks(ctx, false)
	if err != nil {
		j.logger.Err(err).Str("func", "*ReconcileJob.Reconcile").Msg("error listing pending entities")
		return 0
	}

	for _, task := range tasks {
		j.scheduler.Schedule(task)
	}
	if len(tasks) > 0 {
		j.logger.Info().Int("tasks", len(tasks)).Msg("reconcile scheduled sync tasks")
	}

	return len(tasks)
}

// Stop cancels the ticker goroutine and waits for it to exit.
func (j *ReconcileJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
