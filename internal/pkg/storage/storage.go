// Package storage stores uploaded files (student resumes, staff photos) in a
// single object-storage bucket chosen by configuration.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned when the key does not exist in the bucket.
var ErrObjectNotFound = errors.New("storage: object not found")

// Storage is bound to one bucket.
type Storage interface {
	io.Closer

	// Put uploads size bytes from r under key.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Get opens the object for reading. The caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, Object, error)
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Object describes a stored object.
type Object struct {
	Key         string
	Size        int64
	ContentType string
}
