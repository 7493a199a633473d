package domain

import "errors"

// ErrClipNotFound is an error thrown when an id does not resolve to a file
// currently on disk.
var ErrClipNotFound = errors.New("clip not found")

// ErrCatalogUnavailable is an error thrown when the clip directory cannot be
// read.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// ErrRangeNotSatisfiable is an error thrown when a requested byte range falls
// outside the clip's bounds or cannot be parsed.
var ErrRangeNotSatisfiable = errors.New("range not satisfiable")
