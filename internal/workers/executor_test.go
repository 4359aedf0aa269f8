package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-kb-sync/internal/logger"
	"github.com/MKhiriev/go-kb-sync/internal/service"
	"github.com/MKhiriev/go-kb-sync/internal/utils"
	"github.com/MKhiriev/go-kb-sync/models"
)

var _ service.TaskScheduler = (*SyncExecutor)(nil)

const waitFor = 2 * time.Second

func postTask(kind models.SyncTaskKind, id int64) models.SyncTask {
	return models.SyncTask{Kind: kind, EntityID: id}
}

// recorder collects handled tasks.
type recorder struct {
	mu    sync.Mutex
	tasks []models.SyncTask
}

func (r *recorder) HandleSyncTask(_ context.Context, task models.SyncTask) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, task)
}

func (r *recorder) handled() []models.SyncTask {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.SyncTask(nil), r.tasks...)
}

func TestSyncExecutor_RunsScheduledTasks(t *testing.T) {
	rec := &recorder{}
	e := NewSyncExecutor(rec, 2, logger.Nop())
	e.Run(context.Background())
	defer e.Stop()

	e.Schedule(postTask(models.TaskPostSync, 1))
	e.Schedule(postTask(models.TaskCategorySync, 2))

	require.Eventually(t, func() bool { return len(rec.handled()) == 2 }, waitFor, time.Millisecond)
	assert.ElementsMatch(t, []models.SyncTask{
		postTask(models.TaskPostSync, 1),
		postTask(models.TaskCategorySync, 2),
	}, rec.handled())
}

func TestSyncExecutor_HoldsTasksUntilRun(t *testing.T) {
	rec := &recorder{}
	e := NewSyncExecutor(rec, 1, logger.Nop())

	e.Schedule(postTask(models.TaskPostSync, 1))
	time.Sleep(10 * time.Millisecond)
	assert.Empty(t, rec.handled())
	assert.Equal(t, 1, e.Pending())

	e.Run(context.Background())
	defer e.Stop()

	require.Eventually(t, func() bool { return len(rec.handled()) == 1 }, waitFor, time.Millisecond)
	assert.Zero(t, e.Pending())
}

func TestSyncExecutor_SameKeyNeverRunsConcurrently(t *testing.T) {
	var (
		active  atomic.Int32
		overlap atomic.Bool
		total   atomic.Int32
	)
	handler := TaskHandlerFunc(func(context.Context, models.SyncTask) {
		if active.Add(1) > 1 {
			overlap.Store(true)
		}
		time.Sleep(time.Millisecond)
		active.Add(-1)
		total.Add(1)
	})

	e := NewSyncExecutor(handler, 8, logger.Nop())
	e.Run(context.Background())
	defer e.Stop()

	for range 20 {
		e.Schedule(postTask(models.TaskPostSync, 7))
		e.Schedule(postTask(models.TaskPostRemoteDelete, 7))
		time.Sleep(200 * time.Microsecond)
	}

	require.Eventually(t, func() bool { return e.Pending() == 0 && active.Load() == 0 }, waitFor, time.Millisecond)
	assert.False(t, overlap.Load(), "two tasks for one entity ran at the same time")
	assert.Positive(t, total.Load())
}

func TestSyncExecutor_CoalescesPendingDuplicates(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 10)
	var calls atomic.Int32

	handler := TaskHandlerFunc(func(context.Context, models.SyncTask) {
		calls.Add(1)
		started <- struct{}{}
		<-release
	})

	e := NewSyncExecutor(handler, 2, logger.Nop())
	e.Run(context.Background())
	defer e.Stop()

	task := postTask(models.TaskCategorySync, 3)
	e.Schedule(task)
	<-started

	// the first run is in flight; these collapse into one follow-up run
	for range 5 {
		e.Schedule(task)
	}
	assert.Equal(t, 1, e.Pending())

	close(release)
	require.Eventually(t, func() bool { return calls.Load() == 2 && e.Pending() == 0 }, waitFor, time.Millisecond)

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(2), calls.Load())
}

func TestSyncExecutor_CoalescedTaskMovesToBack(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	rec := &recorder{}
	var once sync.Once

	handler := TaskHandlerFunc(func(ctx context.Context, task models.SyncTask) {
		once.Do(func() {
			started <- struct{}{}
			<-release
		})
		rec.HandleSyncTask(ctx, task)
	})

	e := NewSyncExecutor(handler, 1, logger.Nop())
	e.Run(context.Background())
	defer e.Stop()

	e.Schedule(postTask(models.TaskPostSync, 7))
	<-started

	// publish, unpublish, republish while the first sync is in flight
	e.Schedule(postTask(models.TaskPostSync, 7))
	e.Schedule(postTask(models.TaskPostRemoteDelete, 7))
	e.Schedule(postTask(models.TaskPostSync, 7))
	assert.Equal(t, 2, e.Pending())

	close(release)
	require.Eventually(t, func() bool { return len(rec.handled()) == 3 }, waitFor, time.Millisecond)
	assert.Equal(t, []models.SyncTask{
		postTask(models.TaskPostSync, 7),
		postTask(models.TaskPostRemoteDelete, 7),
		postTask(models.TaskPostSync, 7),
	}, rec.handled())
}

func TestSyncExecutor_KeepsSubmissionOrderPerKey(t *testing.T) {
	release := make(chan struct{})
	rec := &recorder{}
	first := true

	handler := TaskHandlerFunc(func(ctx context.Context, task models.SyncTask) {
		if first {
			first = false
			<-release
		}
		rec.HandleSyncTask(ctx, task)
	})

	e := NewSyncExecutor(handler, 4, logger.Nop())
	e.Schedule(postTask(models.TaskCategorySync, 1))
	e.Schedule(postTask(models.TaskCategoryDelete, 1))
	e.Run(context.Background())
	defer e.Stop()

	close(release)
	require.Eventually(t, func() bool { return len(rec.handled()) == 2 }, waitFor, time.Millisecond)
	assert.Equal(t, []models.SyncTask{
		postTask(models.TaskCategorySync, 1),
		postTask(models.TaskCategoryDelete, 1),
	}, rec.handled())
}

func TestSyncExecutor_DifferentKeysRunConcurrently(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(2)
	bothRunning := make(chan struct{})

	handler := TaskHandlerFunc(func(context.Context, models.SyncTask) {
		wg.Done()
		wg.Wait()
	})

	e := NewSyncExecutor(handler, 2, logger.Nop())
	e.Run(context.Background())
	defer e.Stop()

	e.Schedule(postTask(models.TaskPostSync, 1))
	e.Schedule(postTask(models.TaskPostSync, 2))

	go func() {
		wg.Wait()
		close(bothRunning)
	}()

	select {
	case <-bothRunning:
	case <-time.After(waitFor):
		t.Fatal("tasks for different entities did not overlap")
	}
}

func TestSyncExecutor_StopWaitsForRunningTask(t *testing.T) {
	started := make(chan struct{})
	var finished atomic.Bool

	handler := TaskHandlerFunc(func(ctx context.Context, _ models.SyncTask) {
		close(started)
		time.Sleep(20 * time.Millisecond)
		assert.NoError(t, ctx.Err(), "running task must not be cancelled by Stop")
		finished.Store(true)
	})

	e := NewSyncExecutor(handler, 1, logger.Nop())
	e.Run(context.Background())
	e.Schedule(postTask(models.TaskPostSync, 1))
	<-started

	e.Stop()

	assert.True(t, finished.Load())
}

func TestSyncExecutor_ScheduleAfterStopIsDropped(t *testing.T) {
	rec := &recorder{}
	e := NewSyncExecutor(rec, 1, logger.Nop())
	e.Run(context.Background())
	e.Stop()

	e.Schedule(postTask(models.TaskPostSync, 1))

	assert.Zero(t, e.Pending())
	assert.Empty(t, rec.handled())
	assert.NotPanics(t, e.Stop)
}

func TestSyncExecutor_ContextCancelStopsWorkers(t *testing.T) {
	rec := &recorder{}
	e := NewSyncExecutor(rec, 2, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	e.Run(ctx)

	cancel()

	done := make(chan struct{})
	go func() {
		e.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(waitFor):
		t.Fatal("executor did not stop after context cancellation")
	}
}

func TestSyncExecutor_RecoversFromPanic(t *testing.T) {
	rec := &recorder{}
	handler := TaskHandlerFunc(func(ctx context.Context, task models.SyncTask) {
		if task.EntityID == 1 {
			panic("boom")
		}
		rec.HandleSyncTask(ctx, task)
	})

	e := NewSyncExecutor(handler, 1, logger.Nop())
	e.Run(context.Background())
	defer e.Stop()

	e.Schedule(postTask(models.TaskPostSync, 1))
	e.Schedule(postTask(models.TaskPostSync, 2))

	require.Eventually(t, func() bool { return len(rec.handled()) == 1 }, waitFor, time.Millisecond)
}

func TestSyncExecutor_TaskContextCarriesTraceID(t *testing.T) {
	traceIDs := make(chan string, 1)
	handler := TaskHandlerFunc(func(ctx context.Context, _ models.SyncTask) {
		id, _ := utils.GetTraceIDFromContext(ctx)
		traceIDs <- id
	})

	e := NewSyncExecutor(handler, 1, logger.Nop())
	e.Run(context.Background())
	defer e.Stop()

	e.Schedule(postTask(models.TaskPostSync, 1))

	select {
	case id := <-traceIDs:
		assert.NotEmpty(t, id)
	case <-time.After(waitFor):
		t.Fatal("task did not run")
	}
}

func TestNewSyncExecutor_DefaultConcurrency(t *testing.T) {
	e := NewSyncExecutor(&recorder{}, 0, logger.Nop())
	assert.Equal(t, defaultSyncConcurrency, e.concurrency)
}
