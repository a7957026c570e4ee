package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into coded domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: aggregate does not exist in the store
// - ErrConflict: a concurrent write collided with this one
// - ErrUnavailable: backing store temporarily unreachable
//
// For validation errors (bad input, broken invariants), use pkg/errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
