package service

import (
	"github.com/MKhiriev/go-kb-sync/internal/adapter"
	"github.com/MKhiriev/go-kb-sync/internal/config"
	"github.com/MKhiriev/go-kb-sync/internal/logger"
	"github.com/MKhiriev/go-kb-sync/internal/store"
	"github.com/MKhiriev/go-kb-sync/models"
)

type Services struct {
	SyncService     SyncService
	WorkflowService WorkflowService
	ContentService  ContentService
	AppInfoService  AppInfoService
}

// NewServices wires the services on top of storages. syncService is built
// separately because the scheduler executing its tasks must exist before the
// content service that feeds it.
func NewServices(
	storages *store.Storages,
	kb adapter.KnowledgeBaseAdapter,
	syncService SyncService,
	scheduler TaskScheduler,
	cfg config.StructuredConfig,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SyncService:     syncService,
		WorkflowService: NewWorkflowService(kb, cfg.Workers, logger),
		ContentService: NewContentValidationService().
			Wrap(NewContentService(storages.DB, storages.CategoryRepository, storages.PostRepository, scheduler, logger)),
		AppInfoService: appInfo,
	}, nil
}

// NewStorageSyncService builds the sync service on top of storages.
func NewStorageSyncService(storages *store.Storages, kb adapter.KnowledgeBaseAdapter, cfg config.KnowledgeBase, logger *logger.Logger) SyncService {
	return NewSyncService(storages.DB, storages.CategoryRepository, storages.PostRepository, kb, cfg, logger)
}
