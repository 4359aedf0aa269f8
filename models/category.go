package models

import "time"

// Category is a blog category. An active category is mirrored as one
// remote dataset; an inactive one must not exist remotely.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"required,max=100"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`

	// RemoteDatasetID is empty until the remote create succeeds.
	RemoteDatasetID string     `json:"remote_dataset_id,omitempty"`
	SyncStatus      SyncStatus `json:"sync_status"`
	SyncError       string     `json:"sync_error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasRemoteDataset reports whether the category has been created remotely.
func (c Category) HasRemoteDataset() bool {
	return c.RemoteDatasetID != ""
}

// SyncState returns the sync projection of the category.
func (c Category) SyncState() SyncState {
	return SyncState{
		EntityID:  c.ID,
		RemoteID:  c.RemoteDatasetID,
		Status:    c.SyncStatus,
		Error:     c.SyncError,
		UpdatedAt: c.UpdatedAt,
	}
}
