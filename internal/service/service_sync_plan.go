// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-kb-sync/models"

// CategoryAction is the remote operation a category sync resolves to.
type CategoryAction int

const (
	// CategoryCreate creates a dataset for an active category without one.
	CategoryCreate CategoryAction = iota
	// CategoryUpdate pushes name and description to the existing dataset.
	CategoryUpdate
	// CategoryDeleteRemote deletes the dataset of an inactive category and
	// then the local row.
	CategoryDeleteRemote
	// CategoryDropLocal deletes an inactive category that never reached the
	// remote side.
	CategoryDropLocal
)

func (a CategoryAction) String() string {
	switch a {
	case CategoryCreate:
		return "create"
	case CategoryUpdate:
		return "update"
	case CategoryDeleteRemote:
		return "delete-remote"
	case CategoryDropLocal:
		return "drop-local"
	default:
		return "unknown"
	}
}

// PostAction is the remote operation a post sync resolves to.
type PostAction int

const (
	// PostSkipIneligible leaves a post without remote presence untouched.
	PostSkipIneligible PostAction = iota
	PostCreate
	PostUpdate
)

func (a PostAction) String() string {
	switch a {
	case PostSkipIneligible:
		return "skip-ineligible"
	case PostCreate:
		return "create"
	case PostUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// decideCategoryAction maps {isActive, hasRemoteID} to an action:
//
//	isActive  hasRemoteID  action
//	true      false        CategoryCreate
//	true      true         CategoryUpdate
//	false     true         CategoryDeleteRemote
//	false     false        CategoryDropLocal
func decideCategoryAction(c models.Category) CategoryAction {
	switch {
	case c.IsActive && !c.HasRemoteDataset():
		return CategoryCreate
	case c.IsActive:
		return CategoryUpdate
	case c.HasRemoteDataset():
		return CategoryDeleteRemote
	default:
		return CategoryDropLocal
	}
}

// decidePostAction checks eligibility first. An eligible post is updated
// only when it has a remote document and its last sync succeeded; a missing
// document, a FAILED status and any other status all go through create.
//
// Whether the category owns a dataset is checked later, by the caller.
func decidePostAction(p models.Post) PostAction {
	if !p.IsEligibleForKnowledgeBase() {
		return PostSkipIneligible
	}

	switch {
	case !p.HasRemoteDocument(), p.SyncStatus == models.SyncStatusFailed:
		return PostCreate
	case p.SyncStatus == models.SyncStatusSynced:
		return PostUpdate
	default:
		return PostCreate
	}
}
