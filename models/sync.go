// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// SyncStatus is the persisted synchronization state of a local entity
// relative to its remote knowledge-base counterpart.
type SyncStatus string

const (
	// SyncStatusUnsynced means the local entity changed (or was never pushed)
	// and the remote side may be stale or absent.
	SyncStatusUnsynced SyncStatus = "UNSYNCED"
	// SyncStatusSynced means the last remote call for the entity succeeded.
	// A synced entity always carries a remote identifier.
	SyncStatusSynced SyncStatus = "SYNCED"
	// SyncStatusFailed means the last remote call for the entity failed and
	// the error text was recorded.
	SyncStatusFailed SyncStatus = "FAILED"
)

// SyncState is the sync-related projection of a category or a post.
type SyncState struct {
	EntityID  int64      `json:"entity_id"`
	RemoteID  string     `json:"remote_id,omitempty"`
	Status    SyncStatus `json:"sync_status"`
	Error     string     `json:"sync_error,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SyncTaskKind names the unit of background work scheduled after a content
// change or a manual re-sync request.
type SyncTaskKind string

const (
	TaskCategorySync     SyncTaskKind = "category.sync"
	TaskCategoryDelete   SyncTaskKind = "category.delete"
	TaskPostSync         SyncTaskKind = "post.sync"
	TaskPostRemoteDelete SyncTaskKind = "post.remote_delete"
)

// SyncTask is a single background sync job for one entity.
type SyncTask struct {
	Kind     SyncTaskKind `json:"kind"`
	EntityID int64        `json:"entity_id"`
}

// Key groups tasks by the entity they touch. Tasks sharing a key must never
// run concurrently.
func (t SyncTask) Key() string {
	switch t.Kind {
	case TaskCategorySync, TaskCategoryDelete:
		return "category:" + strconv.FormatInt(t.EntityID, 10)
	default:
		return "post:" + strconv.FormatInt(t.EntityID, 10)
	}
}

func (t SyncTask) String() string {
	return string(t.Kind) + "#" + strconv.FormatInt(t.EntityID, 10)
}
