package domain

import "errors"

// Sentinel errors for routing outcomes.
// Their messages are returned verbatim in the JSON error body.
var (
	ErrNotFound         = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
