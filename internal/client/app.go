package client

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/go-kb-sync/internal/adapter"
	"github.com/MKhiriev/go-kb-sync/internal/config"
	"github.com/MKhiriev/go-kb-sync/internal/logger"
	"github.com/MKhiriev/go-kb-sync/internal/service"
	"github.com/MKhiriev/go-kb-sync/internal/store"
	"github.com/MKhiriev/go-kb-sync/models"
)

const role = "kbsync"

// Runtime is everything a command needs once configuration is loaded.
type Runtime struct {
	Services *service.Services
	Logger   *logger.Logger
	Migrate  func() error
	Close    func() error
}

// Opener builds a Runtime for a single command invocation.
type Opener func(ctx context.Context, opts *Options) (*Runtime, error)

// Options holds the global flags shared by all commands.
type Options struct {
	ConfigPath string
	Verbose    bool
}

type App struct {
	build  models.AppBuildInfo
	open   Opener
	out    io.Writer
	errOut io.Writer
}

var _ Client = (*App)(nil)

func NewApp(build models.AppBuildInfo) *App {
	a := &App{
		build:  build,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	a.open = a.openRuntime

	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	cmd := a.rootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	return cmd.ExecuteContext(ctx)
}

// openRuntime connects to the database and the remote knowledge base. Tasks
// scheduled by content operations run inline since the CLI has no
// background executor.
func (a *App) openRuntime(ctx context.Context, opts *Options) (*Runtime, error) {
	cfg, err := config.GetCLIConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	log := logger.NewConsoleLogger(role, a.errOut, opts.Verbose)
	if cfg.App.LogFile != "" {
		log = logger.NewFileLogger(role, cfg.App.LogFile)
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	kb, err := adapter.NewKnowledgeBaseAdapter(cfg.Adapter.KnowledgeBase, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	storages := store.NewStorages(db, log)
	syncService := service.NewStorageSyncService(storages, kb, cfg.Adapter.KnowledgeBase, log)

	services, err := service.NewServices(storages, kb, syncService, inlineScheduler{syncService}, *cfg, a.build, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Runtime{
		Services: services,
		Logger:   log,
		Migrate:  db.Migrate,
		Close:    db.Close,
	}, nil
}

type inlineScheduler struct {
	handler service.SyncService
}

func (s inlineScheduler) Schedule(task models.SyncTask) {
	s.handler.HandleSyncTask(context.Background(), task)
}
