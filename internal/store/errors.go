package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrCategoryNotFound is returned when no category row has the requested id.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrPostNotFound is returned when no post row has the requested id.
	ErrPostNotFound = errors.New("post not found")

	// ErrSlugAlreadyExists is returned on a unique violation of a slug column.
	ErrSlugAlreadyExists = errors.New("slug already exists")

	// ErrUnknownCategory is returned when a post references a missing category.
	ErrUnknownCategory = errors.New("referenced category does not exist")

	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
