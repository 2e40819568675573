package backend

import (
	"context"

	"github.com/mwantia/walker/data"
)

// FileSystem is the listing collaborator consumed by the walker.
// Returned paths are full paths, built by joining the listed directory and the entry name.
type FileSystem interface {
	// ListFiles returns every non-directory entry directly under path, in listing order.
	ListFiles(ctx context.Context, path string) ([]string, error)

	// ListDirectories returns every directory entry directly under path, in listing order.
	ListDirectories(ctx context.Context, path string) ([]string, error)

	// Attributes returns the flag view of a single path.
	Attributes(ctx context.Context, path string) (data.Attributes, error)

	// FileInfo builds the rich description of a single path.
	FileInfo(ctx context.Context, path string) (*data.FileInfo, error)
}

// Backend is a FileSystem with a lifecycle.
type Backend interface {
	FileSystem

	// Returns the identifier name defined for this backend
	Name() string
	// Open is part of the lifecycle behaviour and gets called before the first listing.
	Open(ctx context.Context) error
	// Close is part of the lifecycle behaviour and releases held resources.
	Close(ctx context.Context) error
}
