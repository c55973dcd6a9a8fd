package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound     = errors.New("model not found")
	ErrInvalidLimit = errors.New("invalid list limit")
)
