package storage

import "errors"

// ErrAuthNotFound is returned when no credential pair is stored.
var ErrAuthNotFound = errors.New("auth data not found")
