package fitness

import (
	"context"
	"errors"
)

// StateDocumentKey is the fixed key under which the single state document
// lives, regardless of the storage backing it
const StateDocumentKey = "fittracker_data"

// ErrStateNotFound is returned by Load when no state document exists, or when
// the existing one cannot be parsed (corruption degrades to not-found, the
// caller then falls back to the defaults).
var ErrStateNotFound = errors.New("fitness state not found")

// Storage persists the full fitness state as one JSON document. Save is a
// full-document replace, never a partial merge. Implementations must be safe
// for concurrent use - the store fires saves from goroutines.
type Storage interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, state *State) error
}
