package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name must not be blank")
	ErrEmptyTitle       = errors.New("title must not be blank")
	ErrInvalidSlug      = errors.New("slug must be lowercase letters and digits separated by single hyphens")
	ErrPasswordRequired = errors.New("password is required for PASSWORD visibility")
	ErrInvalidCategory  = errors.New("category id must be positive")
)
