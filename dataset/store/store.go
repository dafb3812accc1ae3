package store

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when an object does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for reading and writing named dataset objects.
type Store interface {
	// Open opens an object for sequential reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Create creates (or replaces) an object for streaming writes.
	// The write is finalized by Close.
	Create(ctx context.Context, name string) (io.WriteCloser, error)

	// Delete removes an object. Deleting a missing object is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the object names under the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}
