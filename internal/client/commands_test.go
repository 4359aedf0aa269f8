package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-kb-sync/internal/logger"
	"github.com/MKhiriev/go-kb-sync/internal/mock"
	"github.com/MKhiriev/go-kb-sync/internal/service"
	"github.com/MKhiriev/go-kb-sync/models"
)

type cliMocks struct {
	sync     *mock.MockSyncService
	content  *mock.MockContentService
	workflow *mock.MockWorkflowService
	migrated *bool
	closed   *bool
	opts     **Options
}

func newTestApp(t *testing.T) (*App, *bytes.Buffer, cliMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := cliMocks{
		sync:     mock.NewMockSyncService(ctrl),
		content:  mock.NewMockContentService(ctrl),
		workflow: mock.NewMockWorkflowService(ctrl),
		migrated: new(bool),
		closed:   new(bool),
		opts:     new(*Options),
	}

	out := &bytes.Buffer{}
	app := &App{
		build:  models.NewAppBuildInfo("1.2.3", "2026-01-02", "abc123"),
		out:    out,
		errOut: &bytes.Buffer{},
	}
	app.open = func(_ context.Context, opts *Options) (*Runtime, error) {
		*m.opts = opts
		return &Runtime{
			Services: &service.Services{
				SyncService:     m.sync,
				ContentService:  m.content,
				WorkflowService: m.workflow,
			},
			Logger:  logger.Nop(),
			Migrate: func() error { *m.migrated = true; return nil },
			Close:   func() error { *m.closed = true; return nil },
		}, nil
	}

	return app, out, m
}

// ── root ──

func TestRootCommand_Subcommands(t *testing.T) {
	app, _, _ := newTestApp(t)
	root := app.rootCommand()

	for _, path := range [][]string{
		{"version"},
		{"migrate"},
		{"sync", "category"},
		{"sync", "post"},
		{"sync", "all"},
		{"delete-post-document"},
		{"workflow", "run"},
	} {
		sub, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], sub.Name())
	}

	cfg := root.PersistentFlags().Lookup("config")
	require.NotNil(t, cfg)
	assert.Equal(t, "c", cfg.Shorthand)
}

func TestVersion_DoesNotOpenRuntime(t *testing.T) {
	app, out, _ := newTestApp(t)
	app.open = func(context.Context, *Options) (*Runtime, error) {
		t.Fatal("version must not open a runtime")
		return nil, nil
	}

	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.Contains(t, out.String(), "Build version: 1.2.3")
	assert.Contains(t, out.String(), "Build commit: abc123")
}

func TestOpenError_IsReturned(t *testing.T) {
	app, _, _ := newTestApp(t)
	boom := errors.New("no config")
	app.open = func(context.Context, *Options) (*Runtime, error) { return nil, boom }

	err := app.Run(context.Background(), []string{"migrate"})
	assert.ErrorIs(t, err, boom)
}

func TestMigrate(t *testing.T) {
	app, out, m := newTestApp(t)

	require.NoError(t, app.Run(context.Background(), []string{"migrate", "--config", "kb.json", "-v"}))

	assert.True(t, *m.migrated)
	assert.True(t, *m.closed)
	assert.Equal(t, "kb.json", (*m.opts).ConfigPath)
	assert.True(t, (*m.opts).Verbose)
	assert.Contains(t, out.String(), "migrations applied")
}

// ── sync ──

func TestSyncCategory(t *testing.T) {
	t.Run("synced", func(t *testing.T) {
		app, out, m := newTestApp(t)
		m.sync.EXPECT().SyncCategory(gomock.Any(), int64(3))
		m.content.EXPECT().CategorySyncState(gomock.Any(), int64(3)).
			Return(models.SyncState{EntityID: 3, RemoteID: "ds-1", Status: models.SyncStatusSynced}, nil)

		require.NoError(t, app.Run(context.Background(), []string{"sync", "category", "3"}))
		assert.Equal(t, "category 3: SYNCED (ds-1)\n", out.String())
	})

	t.Run("failed", func(t *testing.T) {
		app, out, m := newTestApp(t)
		m.sync.EXPECT().SyncCategory(gomock.Any(), int64(3))
		m.content.EXPECT().CategorySyncState(gomock.Any(), int64(3)).
			Return(models.SyncState{EntityID: 3, Status: models.SyncStatusFailed, Error: "remote: 500"}, nil)

		err := app.Run(context.Background(), []string{"sync", "category", "3"})
		assert.ErrorIs(t, err, ErrSyncFailed)
		assert.Contains(t, err.Error(), "remote: 500")
		assert.Equal(t, "category 3: FAILED\n", out.String())
	})

	t.Run("invalid id", func(t *testing.T) {
		app, _, m := newTestApp(t)

		err := app.Run(context.Background(), []string{"sync", "category", "abc"})
		assert.ErrorIs(t, err, ErrInvalidID)
		assert.True(t, *m.closed)
	})
}

func TestSyncPost(t *testing.T) {
	app, out, m := newTestApp(t)
	m.sync.EXPECT().SyncPost(gomock.Any(), int64(9))
	m.content.EXPECT().PostSyncState(gomock.Any(), int64(9)).
		Return(models.SyncState{EntityID: 9, RemoteID: "doc-9", Status: models.SyncStatusSynced}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"sync", "post", "9"}))
	assert.Equal(t, "post 9: SYNCED (doc-9)\n", out.String())
}

func TestSyncAll(t *testing.T) {
	tasks := []models.SyncTask{
		{Kind: models.TaskCategorySync, EntityID: 1},
		{Kind: models.TaskPostSync, EntityID: 2},
	}

	t.Run("all entities in order", func(t *testing.T) {
		app, out, m := newTestApp(t)
		m.content.EXPECT().PendingTasks(gomock.Any(), true).Return(tasks, nil)
		gomock.InOrder(
			m.sync.EXPECT().HandleSyncTask(gomock.Any(), tasks[0]),
			m.sync.EXPECT().HandleSyncTask(gomock.Any(), tasks[1]),
		)
		m.content.EXPECT().CategorySyncState(gomock.Any(), int64(1)).
			Return(models.SyncState{Status: models.SyncStatusSynced}, nil)
		m.content.EXPECT().PostSyncState(gomock.Any(), int64(2)).
			Return(models.SyncState{Status: models.SyncStatusSynced}, nil)

		require.NoError(t, app.Run(context.Background(), []string{"sync", "all"}))
		assert.Contains(t, out.String(), "synced 2, failed 0")
	})

	t.Run("pending only with failure", func(t *testing.T) {
		app, out, m := newTestApp(t)
		m.content.EXPECT().PendingTasks(gomock.Any(), false).Return(tasks, nil)
		m.sync.EXPECT().HandleSyncTask(gomock.Any(), gomock.Any()).Times(2)
		m.content.EXPECT().CategorySyncState(gomock.Any(), int64(1)).
			Return(models.SyncState{Status: models.SyncStatusSynced}, nil)
		m.content.EXPECT().PostSyncState(gomock.Any(), int64(2)).
			Return(models.SyncState{Status: models.SyncStatusFailed}, nil)

		err := app.Run(context.Background(), []string{"sync", "all", "--pending"})
		assert.ErrorIs(t, err, ErrSyncFailed)
		assert.Contains(t, out.String(), "synced 1, failed 1")
	})

	t.Run("nothing to do", func(t *testing.T) {
		app, out, m := newTestApp(t)
		m.content.EXPECT().PendingTasks(gomock.Any(), false).Return(nil, nil)

		require.NoError(t, app.Run(context.Background(), []string{"sync", "all", "--pending"}))
		assert.Contains(t, out.String(), "nothing to sync")
	})
}

func TestDeletePostDocument(t *testing.T) {
	app, out, m := newTestApp(t)
	gomock.InOrder(
		m.sync.EXPECT().DeletePostFromKnowledgeBase(gomock.Any(), int64(4)),
		m.content.EXPECT().PostSyncState(gomock.Any(), int64(4)).
			Return(models.SyncState{EntityID: 4, Status: models.SyncStatusUnsynced}, nil),
	)

	require.NoError(t, app.Run(context.Background(), []string{"delete-post-document", "4"}))
	assert.Equal(t, "post 4: UNSYNCED\n", out.String())
}

// ── workflow ──

func TestWorkflowRun(t *testing.T) {
	t.Run("prints outputs", func(t *testing.T) {
		app, out, m := newTestApp(t)
		m.workflow.EXPECT().
			RunWorkflowAndWait(gomock.Any(), map[string]any{"query": "a=b", "lang": "en"}, 90*time.Second).
			Return(json.RawMessage(`{"text":"ok"}`), nil)

		args := []string{"workflow", "run", "--input", "query=a=b", "-i", "lang=en", "--timeout", "90s"}
		require.NoError(t, app.Run(context.Background(), args))
		assert.Equal(t, "{\"text\":\"ok\"}\n", out.String())
	})

	t.Run("bad input", func(t *testing.T) {
		app, _, _ := newTestApp(t)

		err := app.Run(context.Background(), []string{"workflow", "run", "--input", "novalue"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("run error", func(t *testing.T) {
		app, _, m := newTestApp(t)
		m.workflow.EXPECT().RunWorkflowAndWait(gomock.Any(), map[string]any{}, time.Duration(0)).
			Return(nil, service.ErrWorkflowTimeout)

		err := app.Run(context.Background(), []string{"workflow", "run"})
		assert.ErrorIs(t, err, service.ErrWorkflowTimeout)
	})
}

func TestParseID(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"x", 0, false},
	} {
		id, err := parseID(tc.in)
		if tc.ok {
			require.NoError(t, err, tc.in)
			assert.Equal(t, tc.want, id)
		} else {
			assert.ErrorIs(t, err, ErrInvalidID, tc.in)
		}
	}
}

func TestInlineScheduler_RunsTaskImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	sync := mock.NewMockSyncService(ctrl)
	task := models.SyncTask{Kind: models.TaskPostSync, EntityID: 5}
	sync.EXPECT().HandleSyncTask(gomock.Any(), task)

	inlineScheduler{handler: sync}.Schedule(task)
}
