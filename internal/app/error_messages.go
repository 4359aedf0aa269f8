// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// HTTP handlers and the kbsync command line tool.
//
// All Msg* constants are human-readable message prefixes written into error
// response bodies and log entries. The wrapped error text follows the prefix.
package app

const (
	// MsgInvalidCategoryID is returned when the {id} path segment of a
	// category route is not a positive integer.
	MsgInvalidCategoryID = "invalid category id"

	// MsgInvalidPostID is returned when the {id} path segment of a post
	// route is not a positive integer.
	MsgInvalidPostID = "invalid post id"

	// MsgInvalidCategory is returned when a category body cannot be decoded
	// or fails validation.
	MsgInvalidCategory = "invalid category"

	// MsgInvalidPost is returned when a post body cannot be decoded or fails
	// validation.
	MsgInvalidPost = "invalid post"

	// MsgInvalidWorkflowRequest is returned when a workflow run body is
	// malformed or its timeout is out of range.
	MsgInvalidWorkflowRequest = "invalid workflow request"

	MsgCreateCategoryFailed     = "error creating category"
	MsgUpdateCategoryFailed     = "error updating category"
	MsgDeactivateCategoryFailed = "error deactivating category"
	MsgCategorySyncFailed       = "error requesting category sync"
	MsgCategoryStateFailed      = "error getting category sync state"

	MsgCreatePostFailed = "error creating post"
	MsgUpdatePostFailed = "error updating post"
	MsgPostSyncFailed   = "error requesting post sync"
	MsgPostStateFailed  = "error getting post sync state"

	// MsgWorkflowRunFailed is returned when the remote workflow failed,
	// timed out or could not be reached.
	MsgWorkflowRunFailed = "workflow run failed"
)
