package solrhash

import "errors"

// Public, stable errors for callers.
var (
	ErrSaltLength = errors.New("salt length must be positive")
)
