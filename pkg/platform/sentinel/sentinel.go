package sentinel

import "errors"

// Sentinel errors for storage facts. Stores return these (optionally wrapped)
// and services translate them into coded domain errors:
//   - ErrNotFound: no row/entry for the key
//   - ErrAlreadyUsed: a create-only write hit an existing key
//   - ErrUnavailable: backing service temporarily unreachable
var (
	ErrNotFound    = errors.New("not found")
	ErrAlreadyUsed = errors.New("already used")
	ErrUnavailable = errors.New("unavailable")
)
