package local

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mwantia/walker/data"
)

func (lb *LocalBackend) ListFiles(ctx context.Context, path string) ([]string, error) {
	return lb.list(ctx, path, false)
}

func (lb *LocalBackend) ListDirectories(ctx context.Context, path string) ([]string, error) {
	return lb.list(ctx, path, true)
}

func (lb *LocalBackend) Attributes(ctx context.Context, path string) (data.Attributes, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	info, err := os.Lstat(lb.resolvePath(path))
	if err != nil {
		return 0, mapError(err)
	}

	return data.AttributesOf(info.Name(), data.FromFileMode(info.Mode())), nil
}

func (lb *LocalBackend) FileInfo(ctx context.Context, path string) (*data.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Lstat(lb.resolvePath(path))
	if err != nil {
		return nil, mapError(err)
	}

	size := info.Size()
	if info.IsDir() {
		size = 0
	}

	return data.NewFileInfo(path, data.FromFileMode(info.Mode()), size, info.ModTime()), nil
}

// list reads a directory once and keeps entries of the requested kind.
// Symbolic links are never followed and are reported as files.
func (lb *LocalBackend) list(ctx context.Context, path string, dirs bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fullPath := lb.resolvePath(path)

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, mapError(err)
	}

	if !info.IsDir() {
		return nil, data.ErrNotDirectory
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, mapError(err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() != dirs {
			continue
		}

		paths = append(paths, filepath.Join(path, entry.Name()))
	}

	return paths, nil
}
