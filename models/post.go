package models

import "time"

// PostStatus is the editorial state of a post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"
	PostStatusArchived  PostStatus = "ARCHIVED"
)

// Visibility controls who can read a published post.
type Visibility string

const (
	VisibilityPublic   Visibility = "PUBLIC"
	VisibilityPassword Visibility = "PASSWORD"
	VisibilityPrivate  Visibility = "PRIVATE"
)

// Post is a blog post. An eligible post is mirrored as one remote document
// inside its category's dataset.
type Post struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title" validate:"required,max=255"`
	Slug         string     `json:"slug" validate:"required,max=255"`
	Content      string     `json:"content"`
	Excerpt      string     `json:"excerpt,omitempty"`
	MetaKeywords string     `json:"meta_keywords,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	Status       PostStatus `json:"status" validate:"required,oneof=DRAFT PUBLISHED ARCHIVED"`
	Visibility   Visibility `json:"visibility" validate:"required,oneof=PUBLIC PASSWORD PRIVATE"`
	Password     string     `json:"password,omitempty"`
	CategoryID   *int64     `json:"category_id,omitempty"`

	// Category is populated by repository reads that join the categories
	// table. Nil when the post has no category.
	Category *Category `json:"category,omitempty"`

	RemoteDocumentID string     `json:"remote_document_id,omitempty"`
	SyncStatus       SyncStatus `json:"sync_status"`
	SyncError        string     `json:"sync_error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsEligibleForKnowledgeBase reports whether the post may exist remotely:
// published, public, not password protected and attached to a category.
func (p Post) IsEligibleForKnowledgeBase() bool {
	return p.Status == PostStatusPublished &&
		p.Visibility == VisibilityPublic &&
		p.Password == "" &&
		p.Category != nil
}

// HasRemoteDocument reports whether a remote document id is recorded.
func (p Post) HasRemoteDocument() bool {
	return p.RemoteDocumentID != ""
}

// SyncState returns the sync projection of the post.
func (p Post) SyncState() SyncState {
	return SyncState{
		EntityID:  p.ID,
		RemoteID:  p.RemoteDocumentID,
		Status:    p.SyncStatus,
		Error:     p.SyncError,
		UpdatedAt: p.UpdatedAt,
	}
}
