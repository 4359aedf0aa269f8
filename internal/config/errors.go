package config

import "errors"

// ErrInvalidConfig is returned by the builder when the merged configuration
// does not satisfy the validation rules. The wrapped validator error lists
// every failing field.
var ErrInvalidConfig = errors.New("invalid configuration")
