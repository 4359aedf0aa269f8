package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-kb-sync/internal/adapter"
	"github.com/MKhiriev/go-kb-sync/internal/config"
	"github.com/MKhiriev/go-kb-sync/internal/logger"
	"github.com/MKhiriev/go-kb-sync/internal/store"
	"github.com/MKhiriev/go-kb-sync/models"
)

// syncService is the orchestrator between the local store and the remote
// knowledge base. Every operation re-reads the entity, decides what to do
// from its current state, performs at most one remote mutation and records
// the outcome on the entity. Nothing is cached between calls.
type syncService struct {
	tx         store.Transactor
	categories store.CategoryRepository
	posts      store.PostRepository
	kb         adapter.KnowledgeBaseAdapter

	documentMode string
	indexing     models.IndexingConfig

	logger *logger.Logger
}

func NewSyncService(
	tx store.Transactor,
	categories store.CategoryRepository,
	posts store.PostRepository,
	kb adapter.KnowledgeBaseAdapter,
	cfg config.KnowledgeBase,
	logger *logger.Logger,
) SyncService {
	mode := cfg.DocumentMode
	if mode == "" {
		mode = DocumentModeText
	}

	logger.Debug().Str("document_mode", mode).Msg("creating sync service")
	return &syncService{
		tx:           tx,
		categories:   categories,
		posts:        posts,
		kb:           kb,
		documentMode: mode,
		indexing:     models.DefaultIndexingConfig(),
		logger:       logger,
	}
}

func (s *syncService) HandleSyncTask(ctx context.Context, task models.SyncTask) {
	switch task.Kind {
	case models.TaskCategorySync:
		s.SyncCategory(ctx, task.EntityID)
	case models.TaskCategoryDelete:
		s.DeleteCategoryAsync(ctx, task.EntityID)
	case models.TaskPostSync:
		s.SyncPost(ctx, task.EntityID)
	case models.TaskPostRemoteDelete:
		s.DeletePostFromKnowledgeBase(ctx, task.EntityID)
	default:
		logger.FromContext(ctx).Warn().Str("func", "*syncService.HandleSyncTask").
			Stringer("task", task).
			Msg("unknown task kind")
	}
}

// ── categories ──

// SyncCategory brings the remote dataset in line with the category: create
// or update it for an active category, delete it (and then the local row)
// for an inactive one. A missing category is treated as already deleted.
func (s *syncService) SyncCategory(ctx context.Context, id int64) {
	log := logger.FromContext(ctx)

	category, ok := s.loadCategory(ctx, id)
	if !ok {
		return
	}

	action := decideCategoryAction(category)
	log.Info().Str("func", "*syncService.SyncCategory").
		Int64("category_id", id).
		Stringer("action", action).
		Msg("syncing category")

	switch action {
	case CategoryCreate:
		s.createDataset(ctx, category)
	case CategoryUpdate:
		s.updateDataset(ctx, category)
	case CategoryDeleteRemote, CategoryDropLocal:
		s.deleteCategory(ctx, category)
	}
}

// DeleteCategoryAsync removes the category remotely and locally regardless
// of its active flag.
func (s *syncService) DeleteCategoryAsync(ctx context.Context, id int64) {
	category, ok := s.loadCategory(ctx, id)
	if !ok {
		return
	}

	s.deleteCategory(ctx, category)
}

func (s *syncService) loadCategory(ctx context.Context, id int64) (models.Category, bool) {
	log := logger.FromContext(ctx)

	category, err := s.categories.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			log.Info().Str("func", "*syncService.loadCategory").Int64("category_id", id).Msg("category already deleted")
			return models.Category{}, false
		}
		log.Err(err).Str("func", "*syncService.loadCategory").Int64("category_id", id).Msg("error loading category")
		return models.Category{}, false
	}

	return category, true
}

func (s *syncService) createDataset(ctx context.Context, category models.Category) {
	log := logger.FromContext(ctx)

	datasetID, err := s.kb.CreateDataset(ctx, category.Name, category.Description)
	if err != nil {
		log.Err(err).Str("func", "*syncService.createDataset").Int64("category_id", category.ID).Msg("error creating dataset")
		s.saveCategoryFailure(ctx, category.ID, models.SyncStatusUnsynced, err)
		return
	}

	s.saveCategorySuccess(ctx, category.ID, datasetID)
}

func (s *syncService) updateDataset(ctx context.Context, category models.Category) {
	log := logger.FromContext(ctx)

	if _, err := s.kb.UpdateDataset(ctx, category.RemoteDatasetID, category.Name, category.Description); err != nil {
		log.Err(err).Str("func", "*syncService.updateDataset").
			Int64("category_id", category.ID).
			Str("dataset_id", category.RemoteDatasetID).
			Msg("error updating dataset")
		s.saveCategoryFailure(ctx, category.ID, models.SyncStatusUnsynced, err)
		return
	}

	s.saveCategorySuccess(ctx, category.ID, category.RemoteDatasetID)
}

// deleteCategory deletes the remote dataset, if any, then the local row.
// A failed remote delete keeps the row so the delete can be retried.
//
// The remote service drops documents together with their dataset, so posts
// of the category lose their remote document id in the same transaction
// that removes the category.
func (s *syncService) deleteCategory(ctx context.Context, category models.Category) {
	log := logger.FromContext(ctx)

	if category.HasRemoteDataset() {
		_, err := s.kb.DeleteDataset(ctx, category.RemoteDatasetID)
		switch {
		case err == nil:
		case adapter.IsNotFound(err):
			log.Warn().Str("func", "*syncService.deleteCategory").
				Int64("category_id", category.ID).
				Str("dataset_id", category.RemoteDatasetID).
				Msg("dataset already gone remotely")
		default:
			log.Err(err).Str("func", "*syncService.deleteCategory").
				Int64("category_id", category.ID).
				Str("dataset_id", category.RemoteDatasetID).
				Msg("error deleting dataset, local row kept")
			s.saveCategoryFailure(ctx, category.ID, category.SyncStatus, err)
			return
		}
	} else {
		log.Info().Str("func", "*syncService.deleteCategory").Int64("category_id", category.ID).Msg("no dataset, deleting local row only")
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		detached, err := s.posts.DetachCategoryDocuments(ctx, category.ID)
		if err != nil {
			return err
		}
		if detached > 0 {
			log.Info().Int64("category_id", category.ID).Int64("posts", detached).Msg("detached post documents")
		}

		return s.categories.DeleteCategory(ctx, category.ID)
	})
	if err != nil && !errors.Is(err, store.ErrCategoryNotFound) {
		log.Err(err).Str("func", "*syncService.deleteCategory").Int64("category_id", category.ID).Msg("error deleting category row")
		s.saveCategoryFailure(ctx, category.ID, category.SyncStatus, err)
	}
}

func (s *syncService) saveCategorySuccess(ctx context.Context, id int64, datasetID string) {
	if err := s.categories.SaveCategorySyncSuccess(ctx, id, datasetID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*syncService.saveCategorySuccess").
			Int64("category_id", id).
			Str("dataset_id", datasetID).
			Msg("error recording sync success")
	}
}

func (s *syncService) saveCategoryFailure(ctx context.Context, id int64, status models.SyncStatus, cause error) {
	if err := s.categories.SaveCategorySyncFailure(ctx, id, status, truncateSyncError(cause.Error())); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*syncService.saveCategoryFailure").
			Int64("category_id", id).
			Msg("error recording sync failure")
	}
}

// ── posts ──

// SyncPost creates or updates the post's document. Ineligible posts and
// posts whose category has no dataset yet are skipped without a state
// change.
func (s *syncService) SyncPost(ctx context.Context, id int64) {
	log := logger.FromContext(ctx)

	post, ok := s.loadPost(ctx, id)
	if !ok {
		return
	}

	action := decidePostAction(post)
	log.Info().Str("func", "*syncService.SyncPost").
		Int64("post_id", id).
		Stringer("action", action).
		Msg("syncing post")

	switch action {
	case PostSkipIneligible:
		return
	case PostUpdate:
		s.updateDocument(ctx, post)
	default:
		s.createDocument(ctx, post)
	}
}

// CreatePostDocument forces the create path for an eligible post.
func (s *syncService) CreatePostDocument(ctx context.Context, id int64) {
	post, ok := s.loadEligiblePost(ctx, id)
	if !ok {
		return
	}

	s.createDocument(ctx, post)
}

// UpdatePostDocument updates the post's document, or creates one when the
// post has none yet.
func (s *syncService) UpdatePostDocument(ctx context.Context, id int64) {
	post, ok := s.loadEligiblePost(ctx, id)
	if !ok {
		return
	}

	if !post.HasRemoteDocument() {
		s.createDocument(ctx, post)
		return
	}
	s.updateDocument(ctx, post)
}

// DeletePostFromKnowledgeBase removes the post's remote document and forgets
// its id. The post itself stays.
func (s *syncService) DeletePostFromKnowledgeBase(ctx context.Context, id int64) {
	log := logger.FromContext(ctx)

	post, ok := s.loadPost(ctx, id)
	if !ok || !post.HasRemoteDocument() {
		return
	}

	datasetID := postDatasetID(post)
	if datasetID == "" {
		log.Warn().Str("func", "*syncService.DeletePostFromKnowledgeBase").
			Int64("post_id", id).
			Str("document_id", post.RemoteDocumentID).
			Msg("category has no dataset, remote document left orphaned")
		return
	}

	_, err := s.kb.DeleteDocument(ctx, datasetID, post.RemoteDocumentID)
	if err != nil && !adapter.IsNotFound(err) {
		log.Err(err).Str("func", "*syncService.DeletePostFromKnowledgeBase").
			Int64("post_id", id).
			Str("document_id", post.RemoteDocumentID).
			Msg("error deleting document")
		s.savePostFailure(ctx, id, post.SyncStatus, err)
		return
	}

	if err = s.posts.ClearPostRemoteDocument(ctx, id); err != nil {
		log.Err(err).Str("func", "*syncService.DeletePostFromKnowledgeBase").Int64("post_id", id).Msg("error clearing document id")
	}
}

func (s *syncService) loadPost(ctx context.Context, id int64) (models.Post, bool) {
	log := logger.FromContext(ctx)

	post, err := s.posts.FindPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			log.Info().Str("func", "*syncService.loadPost").Int64("post_id", id).Msg("post not found")
			return models.Post{}, false
		}
		log.Err(err).Str("func", "*syncService.loadPost").Int64("post_id", id).Msg("error loading post")
		return models.Post{}, false
	}

	return post, true
}

func (s *syncService) loadEligiblePost(ctx context.Context, id int64) (models.Post, bool) {
	post, ok := s.loadPost(ctx, id)
	if !ok {
		return models.Post{}, false
	}
	if !post.IsEligibleForKnowledgeBase() {
		logger.FromContext(ctx).Info().Int64("post_id", id).Msg("post is not eligible for the knowledge base")
		return models.Post{}, false
	}

	return post, true
}

// createDocument pushes the post as a new document. A document id still
// recorded on the post is stale at this point; it is deleted once the new
// document has been stored so edits never leave duplicates behind.
func (s *syncService) createDocument(ctx context.Context, post models.Post) {
	log := logger.FromContext(ctx)

	datasetID := postDatasetID(post)
	if datasetID == "" {
		log.Warn().Str("func", "*syncService.createDocument").Int64("post_id", post.ID).Msg("category has no dataset yet, skipping")
		return
	}

	content := buildPostContent(post)

	var (
		documentID string
		err        error
	)
	if s.documentMode == DocumentModeFile {
		documentID, err = s.kb.CreateDocumentByFile(ctx, datasetID, strings.NewReader(content), documentFilename(post), s.indexing)
	} else {
		documentID, err = s.kb.CreateDocumentByText(ctx, datasetID, post.Title, content, s.indexing)
	}
	if err != nil {
		log.Err(err).Str("func", "*syncService.createDocument").Int64("post_id", post.ID).Msg("error creating document")
		s.savePostFailure(ctx, post.ID, models.SyncStatusUnsynced, err)
		return
	}

	if err = s.posts.SavePostSyncSuccess(ctx, post.ID, documentID); err != nil {
		log.Err(err).Str("func", "*syncService.createDocument").
			Int64("post_id", post.ID).
			Str("document_id", documentID).
			Msg("error recording sync success")
		return
	}

	if stale := post.RemoteDocumentID; stale != "" && stale != documentID {
		if _, err = s.kb.DeleteDocument(ctx, datasetID, stale); err != nil && !adapter.IsNotFound(err) {
			log.Warn().Err(err).Int64("post_id", post.ID).Str("document_id", stale).Msg("stale document was not deleted")
		}
	}
}

func (s *syncService) updateDocument(ctx context.Context, post models.Post) {
	log := logger.FromContext(ctx)

	datasetID := postDatasetID(post)
	if datasetID == "" {
		log.Warn().Str("func", "*syncService.updateDocument").Int64("post_id", post.ID).Msg("category has no dataset, skipping")
		return
	}

	content := buildPostContent(post)

	var err error
	if s.documentMode == DocumentModeFile {
		var accepted bool
		accepted, err = s.kb.UpdateDocumentByFile(ctx, datasetID, post.RemoteDocumentID, strings.NewReader(content), documentFilename(post))
		if err == nil && !accepted {
			err = ErrDocumentUpdateRejected
		}
	} else {
		_, err = s.kb.UpdateDocumentByText(ctx, datasetID, post.RemoteDocumentID, post.Title, content)
	}
	if err != nil {
		log.Err(err).Str("func", "*syncService.updateDocument").
			Int64("post_id", post.ID).
			Str("document_id", post.RemoteDocumentID).
			Msg("error updating document")
		s.savePostFailure(ctx, post.ID, models.SyncStatusUnsynced, err)
		return
	}

	if err = s.posts.SavePostSyncSuccess(ctx, post.ID, post.RemoteDocumentID); err != nil {
		log.Err(err).Str("func", "*syncService.updateDocument").Int64("post_id", post.ID).Msg("error recording sync success")
	}
}

func (s *syncService) savePostFailure(ctx context.Context, id int64, status models.SyncStatus, cause error) {
	if err := s.posts.SavePostSyncFailure(ctx, id, status, truncateSyncError(cause.Error())); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*syncService.savePostFailure").
			Int64("post_id", id).
			Msg("error recording sync failure")
	}
}

// postDatasetID resolves the dataset that holds (or will hold) the post's
// document.
func postDatasetID(p models.Post) string {
	if p.Category == nil {
		return ""
	}
	return p.Category.RemoteDatasetID
}
