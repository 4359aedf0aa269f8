// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-kb-sync/internal/logger"
	"github.com/MKhiriev/go-kb-sync/internal/utils"
	"github.com/MKhiriev/go-kb-sync/models"
)

const defaultSyncConcurrency = 4

// TaskHandlerFunc adapts a plain function to [TaskHandler].
type TaskHandlerFunc func(ctx context.Context, task models.SyncTask)

func (f TaskHandlerFunc) HandleSyncTask(ctx context.Context, task models.SyncTask) {
	f(ctx, task)
}

// SyncExecutor runs sync tasks on a fixed pool of goroutines.
//
// Tasks are grouped by [models.SyncTask.Key]. At most one task per key runs
// at a time and tasks of one key run in submission order. A task is dropped
// when a task of the same kind for the same key is already waiting, since
// the handler re-reads the entity and one later run covers both.
//
// Schedule never blocks. Tasks scheduled before Run are held until Run.
type SyncExecutor struct {
	handler     TaskHandler
	concurrency int
	logger      *logger.Logger

	mu       sync.Mutex
	cond     *sync.Cond
	pending  map[string][]models.SyncTask
	running  map[string]bool
	ready    []string
	started  bool
	stopping bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSyncExecutor(handler TaskHandler, concurrency int, logger *logger.Logger) *SyncExecutor {
	if concurrency <= 0 {
		concurrency = defaultSyncConcurrency
	}

	e := &SyncExecutor{
		handler:     handler,
		concurrency: concurrency,
		logger:      logger,
		pending:     make(map[string][]models.SyncTask),
		running:     make(map[string]bool),
	}
	e.cond = sync.NewCond(&e.mu)

	return e
}

// Schedule queues task. A pending task of the same kind for the same entity
// is removed and task takes its turn at the back of the queue. After Stop
// the task is dropped.
func (e *SyncExecutor) Schedule(task models.SyncTask) {
	key := task.Key()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopping {
		e.logger.Warn().Str("func", "*SyncExecutor.Schedule").Stringer("task", task).Msg("executor stopped, task dropped")
		return
	}

	queue := e.pending[key]
	for i, queued := range queue {
		if queued.Kind == task.Kind {
			// the newest intent for the entity must run last
			e.pending[key] = append(append(queue[:i:i], queue[i+1:]...), task)
			e.logger.Debug().Stringer("task", task).Msg("task coalesced with a pending one")
			return
		}
	}

	e.pending[key] = append(queue, task)
	if len(queue) == 0 && !e.running[key] {
		e.ready = append(e.ready, key)
		e.cond.Signal()
	}
}

// Pending returns the number of queued tasks that have not started.
func (e *SyncExecutor) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := 0
	for _, queue := range e.pending {
		n += len(queue)
	}
	return n
}

// Run starts the worker goroutines. Cancelling ctx has the same effect as
// Stop except that it does not wait. Running tasks get a context that
// outlives ctx so an in-flight remote call can record its outcome.
func (e *SyncExecutor) Run(ctx context.Context) {
	e.mu.Lock()
	if e.started || e.stopping {
		e.mu.Unlock()
		return
	}
	e.started = true

	runCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.wg.Add(e.concurrency)
	e.mu.Unlock()

	taskCtx := context.WithoutCancel(runCtx)
	for range e.concurrency {
		go e.work(taskCtx)
	}

	go func() {
		<-runCtx.Done()
		e.mu.Lock()
		e.stopping = true
		e.cond.Broadcast()
		e.mu.Unlock()
	}()

	e.logger.Info().Int("concurrency", e.concurrency).Msg("sync executor started")
}

// Stop stops accepting tasks, lets running tasks finish and waits for the
// worker goroutines. Tasks still queued are dropped; their entities stay
// UNSYNCED until the next sync.
func (e *SyncExecutor) Stop() {
	e.mu.Lock()
	e.stopping = true
	cancel := e.cancel
	e.cancel = nil
	e.cond.Broadcast()
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	e.wg.Wait()

	if dropped := e.Pending(); dropped > 0 {
		e.logger.Warn().Int("tasks", dropped).Msg("sync executor stopped with queued tasks")
	}
}

func (e *SyncExecutor) work(ctx context.Context) {
	defer e.wg.Done()

	for {
		task, ok := e.next()
		if !ok {
			return
		}

		e.execute(ctx, task)
		e.done(task.Key())
	}
}

// next blocks until a key is ready and claims its oldest task.
func (e *SyncExecutor) next() (models.SyncTask, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for len(e.ready) == 0 && !e.stopping {
		e.cond.Wait()
	}
	if e.stopping {
		return models.SyncTask{}, false
	}

	key := e.ready[0]
	e.ready = e.ready[1:]

	queue := e.pending[key]
	task := queue[0]
	if len(queue) == 1 {
		delete(e.pending, key)
	} else {
		e.pending[key] = queue[1:]
	}
	e.running[key] = true

	return task, true
}

func (e *SyncExecutor) done(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.running, key)
	if len(e.pending[key]) > 0 {
		e.ready = append(e.ready, key)
		e.cond.Signal()
	}
}

func (e *SyncExecutor) execute(ctx context.Context, task models.SyncTask) {
	runID := utils.NewTraceID()
	taskLogger := e.logger.With().Str("task", task.String()).Str("trace_id", runID).Logger()
	ctx = taskLogger.WithContext(utils.WithTraceID(ctx, runID))

	defer func() {
		if r := recover(); r != nil {
			taskLogger.Error().Err(fmt.Errorf("panic: %v", r)).Str("func", "*SyncExecutor.execute").Msg("sync task panicked")
		}
	}()

	taskLogger.Debug().Msg("sync task started")
	e.handler.HandleSyncTask(ctx, task)
	taskLogger.Debug().Msg("sync task finished")
}
