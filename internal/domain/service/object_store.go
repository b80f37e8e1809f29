package service

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
)

// ErrObjectNotFound is returned when no object exists under a key.
var ErrObjectNotFound = errors.New("object not found")

// ObjectAttributes describes a stored object.
type ObjectAttributes struct {
	Key         string
	Size        int64
	ContentType string
	ModTime     time.Time
}

// ObjectStore defines the interface for the blob storage holding uploaded design files.
// Keys are namespaced by owner identity.
type ObjectStore interface {
	// Put writes the object under the key.
	Put(ctx context.Context, key string, r io.Reader, contentType string) error

	// Attributes returns the object metadata, or ErrObjectNotFound.
	Attributes(ctx context.Context, key string) (*ObjectAttributes, error)

	// SignedURL returns a time-limited download link.
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)

	// Delete removes the object. Deleting a missing object returns ErrObjectNotFound.
	Delete(ctx context.Context, key string) error

	// List returns the objects under a prefix.
	List(ctx context.Context, prefix string) ([]ObjectAttributes, error)
}
