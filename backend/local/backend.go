package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mwantia/walker/data"
)

// LocalBackend lists directories of the host file system.
// With an empty base, paths are used as given; otherwise they are resolved below base.
type LocalBackend struct {
	base string
}

func NewLocalBackend(base string) *LocalBackend {
	if base != "" {
		base = filepath.Clean(base)
	}

	return &LocalBackend{
		base: base,
	}
}

// Returns the identifier name defined for this backend
func (*LocalBackend) Name() string {
	return "local"
}

// Open verifies that the configured base exists and is a directory.
func (lb *LocalBackend) Open(ctx context.Context) error {
	if lb.base == "" {
		return nil
	}

	info, err := os.Stat(lb.base)
	if err != nil {
		return fmt.Errorf("%w: %w", data.ErrBackendOpenFailed, mapError(err))
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %w", data.ErrBackendOpenFailed, data.ErrNotDirectory)
	}

	return nil
}

// Close is part of the lifecycle behaviour; the host file system needs no cleanup.
func (lb *LocalBackend) Close(ctx context.Context) error {
	return nil
}

// resolvePath maps a walker path onto the host file system.
func (lb *LocalBackend) resolvePath(path string) string {
	if lb.base == "" {
		return path
	}

	return filepath.Join(lb.base, filepath.Clean("/"+path))
}

// mapError translates host errors into the data sentinels while keeping the original.
func mapError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", data.ErrNotExist, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", data.ErrPermission, err)
	default:
		return err
	}
}
