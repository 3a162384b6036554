package repositories

import "errors"

// ErrNotFound is returned when a requested record does not exist.
// Implementations wrap it so callers can branch with errors.Is.
var ErrNotFound = errors.New("record not found")
