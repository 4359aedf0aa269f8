// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the content rules that struct tags cannot
// express: slug format, cross-field constraints between visibility and
// password, and blank-after-trim names.
//
// Validators are injected into services so the same rules apply to HTTP
// requests and any other caller of the content service.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
