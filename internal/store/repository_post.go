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

// postRepository is the database/sql implementation of [PostRepository].
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	ts := now()
	post.CreatedAt, post.UpdatedAt = ts, ts
	if post.SyncStatus == "" {
		post.SyncStatus = models.SyncStatusUnsynced
	}

	query, args, err := r.db.builder.
		Insert(postsTable).
		Columns("title", "slug", "content", "excerpt", "meta_keywords", "published_at",
			"status", "visibility", "password", "category_id",
			"remote_document_id", "sync_status", "sync_error", "created_at", "updated_at").
		Values(post.Title, post.Slug, post.Content, post.Excerpt, post.MetaKeywords, nullTime(post.PublishedAt),
			string(post.Status), string(post.Visibility), post.Password, nullInt64(post.CategoryID),
			nullString(post.RemoteDocumentID), string(post.SyncStatus), nullString(post.SyncError), ts, ts).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&post.ID); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").
			Str("slug", post.Slug).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error inserting post")

		return models.Post{}, r.mapWriteError(err)
	}

	return post, nil
}

// UpdatePost overwrites the editable columns and sync status.
func (r *postRepository) UpdatePost(ctx context.Context, post models.Post) error {
	query, args, err := r.db.builder.
		Update(postsTable).
		Set("title", post.Title).
		Set("slug", post.Slug).
		Set("content", post.Content).
		Set("excerpt", post.Excerpt).
		Set("meta_keywords", post.MetaKeywords).
		Set("published_at", nullTime(post.PublishedAt)).
		Set("status", string(post.Status)).
		Set("visibility", string(post.Visibility)).
		Set("password", post.Password).
		Set("category_id", nullInt64(post.CategoryID)).
		Set("sync_status", string(post.SyncStatus)).
		Set("updated_at", now()).
		Where(sq.Eq{"id": post.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "*postRepository.UpdatePost", post.ID, query, args)
}

func (r *postRepository) FindPostByID(ctx context.Context, id int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(postColumns...).
		From(postsTable + " p").
		LeftJoin(categoriesTable + " c ON c.id = p.category_id").
		Where(sq.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	post, err := scanPost(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.FindPostByID").Int64("post_id", id).Msg("error reading post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

func (r *postRepository) SavePostSyncSuccess(ctx context.Context, id int64, documentID string) error {
	query, args, err := r.db.builder.
		Update(postsTable).
		Set("remote_document_id", documentID).
		Set("sync_status", string(models.SyncStatusSynced)).
		Set("sync_error", nil).
		Set("updated_at", now()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "*postRepository.SavePostSyncSuccess", id, query, args)
}

func (r *postRepository) SavePostSyncFailure(ctx context.Context, id int64, status models.SyncStatus, syncErr string) error {
	query, args, err := r.db.builder.
		Update(postsTable).
		Set("sync_status", string(status)).
		Set("sync_error", nullString(syncErr)).
		Set("updated_at", now()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "*postRepository.SavePostSyncFailure", id, query, args)
}

func (r *postRepository) ClearPostRemoteDocument(ctx context.Context, id int64) error {
	query, args, err := r.db.builder.
		Update(postsTable).
		Set("remote_document_id", nil).
		Set("sync_status", string(models.SyncStatusUnsynced)).
		Set("sync_error", nil).
		Set("updated_at", now()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "*postRepository.ClearPostRemoteDocument", id, query, args)
}

func (r *postRepository) DetachCategoryDocuments(ctx context.Context, categoryID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(postsTable).
		Set("remote_document_id", nil).
		Set("sync_status", string(models.SyncStatusUnsynced)).
		Set("updated_at", now()).
		Where(sq.And{
			sq.Eq{"category_id": categoryID},
			sq.NotEq{"remote_document_id": nil},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DetachCategoryDocuments").Int64("category_id", categoryID).Msg("error detaching documents")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

func (r *postRepository) ListPostIDs(ctx context.Context, statuses ...models.SyncStatus) ([]int64, error) {
	query, args, err := r.db.builder.
		Select("id").
		From(postsTable).
		Where(statusFilter("sync_status", statuses)).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryIDs(ctx, r.db, "*postRepository.ListPostIDs", query, args)
}

func (r *postRepository) execOne(ctx context.Context, fn string, id int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Int64("post_id", id).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error executing statement")
		return r.mapWriteError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

func (r *postRepository) mapWriteError(err error) error {
	switch {
	case isUniqueViolation(err):
		return ErrSlugAlreadyExists
	case isForeignKeyViolation(err):
		return ErrUnknownCategory
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}
