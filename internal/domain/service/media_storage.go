package service

import (
	"context"
	"io"
)

// MediaStorage defines the interface for storing uploaded media files.
// Implementations return a public URL for the stored object.
type MediaStorage interface {
	// Upload stores the file contents under the given key prefix and
	// returns the public URL of the stored object.
	Upload(ctx context.Context, prefix, filename, contentType string, contents io.Reader) (string, error)

	// Delete removes a previously stored object by its public URL.
	// Deleting an unknown URL is a no-op.
	Delete(ctx context.Context, url string) error
}
