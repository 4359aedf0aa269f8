package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-kb-sync/internal/logger"
	"github.com/MKhiriev/go-kb-sync/models"
)

// categoryRepository is the database/sql implementation of
// [CategoryRepository]. Statements are built with squirrel so the same code
// serves PostgreSQL and SQLite.
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCategory inserts the category and returns it with the generated id
// and timestamps. A duplicate slug yields [ErrSlugAlreadyExists].
func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	ts := now()
	category.CreatedAt, category.UpdatedAt = ts, ts
	if category.SyncStatus == "" {
		category.SyncStatus = models.SyncStatusUnsynced
	}

	query, args, err := r.db.builder.
		Insert(categoriesTable).
		Columns("name", "slug", "description", "is_active", "remote_dataset_id", "sync_status", "sync_error", "created_at", "updated_at").
		Values(category.Name, category.Slug, category.Description, category.IsActive,
			nullString(category.RemoteDatasetID), string(category.SyncStatus), nullString(category.SyncError), ts, ts).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("error building query")
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&category.ID); err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").
			Str("slug", category.Slug).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error inserting category")

		if isUniqueViolation(err) {
			return models.Category{}, ErrSlugAlreadyExists
		}
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return category, nil
}

// UpdateCategory overwrites the editable columns and sync status. Remote id
// and sync error are owned by the sync outcome writers and left alone.
func (r *categoryRepository) UpdateCategory(ctx context.Context, category models.Category) error {
	query, args, err := r.db.builder.
		Update(categoriesTable).
		Set("name", category.Name).
		Set("slug", category.Slug).
		Set("description", category.Description).
		Set("is_active", category.IsActive).
		Set("sync_status", string(category.SyncStatus)).
		Set("updated_at", now()).
		Where(sq.Eq{"id": category.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "*categoryRepository.UpdateCategory", category.ID, query, args)
}

// FindCategoryByID returns [ErrCategoryNotFound] for unknown ids.
func (r *categoryRepository) FindCategoryByID(ctx context.Context, id int64) (models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(categoryColumns...).
		From(categoriesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	category, err := scanCategory(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}
		log.Err(err).Str("func", "*categoryRepository.FindCategoryByID").Int64("category_id", id).Msg("error reading category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return category, nil
}

// DeleteCategory physically removes the row. Posts of the category keep
// existing with a NULL category via the foreign key.
func (r *categoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	query, args, err := r.db.builder.
		Delete(categoriesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "*categoryRepository.DeleteCategory", id, query, args)
}

func (r *categoryRepository) SaveCategorySyncSuccess(ctx context.Context, id int64, datasetID string) error {
	query, args, err := r.db.builder.
		Update(categoriesTable).
		Set("remote_dataset_id", datasetID).
		Set("sync_status", string(models.SyncStatusSynced)).
		Set("sync_error", nil).
		Set("updated_at", now()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "*categoryRepository.SaveCategorySyncSuccess", id, query, args)
}

func (r *categoryRepository) SaveCategorySyncFailure(ctx context.Context, id int64, status models.SyncStatus, syncErr string) error {
	query, args, err := r.db.builder.
		Update(categoriesTable).
		Set("sync_status", string(status)).
		Set("sync_error", nullString(syncErr)).
		Set("updated_at", now()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "*categoryRepository.SaveCategorySyncFailure", id, query, args)
}

func (r *categoryRepository) ListCategoryIDs(ctx context.Context, statuses ...models.SyncStatus) ([]int64, error) {
	query, args, err := r.db.builder.
		Select("id").
		From(categoriesTable).
		Where(statusFilter("sync_status", statuses)).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryIDs(ctx, r.db, "*categoryRepository.ListCategoryIDs", query, args)
}

// execOne runs a single-row statement and maps zero affected rows to
// [ErrCategoryNotFound].
func (r *categoryRepository) execOne(ctx context.Context, fn string, id int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Int64("category_id", id).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error executing statement")

		if isUniqueViolation(err) {
			return ErrSlugAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// queryIDs collects a single int64 column.
func queryIDs(ctx context.Context, db *DB, fn string, query string, args []any) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error listing ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}
