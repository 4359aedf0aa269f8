// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request decoding errors. Both map to 400 Bad Request.
var (
	// ErrInvalidID is returned when the {id} path segment is not a positive
	// integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidRequestBody is returned when the body is not valid JSON or
	// fails struct validation.
	ErrInvalidRequestBody = errors.New("invalid request body")
)
