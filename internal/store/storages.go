package store

import "github.com/MKhiriev/go-kb-sync/internal/logger"

// Storages bundles the repositories built on one connection.
type Storages struct {
	DB                 *DB
	CategoryRepository CategoryRepository
	PostRepository     PostRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:                 db,
		CategoryRepository: NewCategoryRepository(db, log),
		PostRepository:     NewPostRepository(db, log),
	}
}
