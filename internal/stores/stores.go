package stores

import "errors"

// ErrNotFound is returned by lookups for ids that have no row.
var ErrNotFound = errors.New("not found")
