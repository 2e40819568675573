package mount

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/mwantia/walker/data"
)

// route is the resolved view of a path, taken under the read lock.
type route struct {
	entry      *mountEntry
	mountPoint string
	relPath    string
	children   []string
}

func (t *Table) route(path string) (string, *route, error) {
	path, err := data.CleanPath(path)
	if err != nil {
		return "", nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	r := &route{
		children: t.childMounts(path),
	}

	if mountPoint, ok := t.longestMatch(path); ok {
		r.entry = t.mounts[mountPoint]
		r.mountPoint = mountPoint
		r.relPath = data.Join("/", data.ToRelativePath(path, mountPoint))
	}

	if r.entry == nil && len(r.children) == 0 {
		return "", nil, fmt.Errorf("%w: no mount for path %s", data.ErrNotMounted, path)
	}

	return path, r, nil
}

// toTablePath converts a path reported by a backend into a table path.
func (r *route) toTablePath(backendPath string) string {
	if backendPath == "/" || backendPath == "" {
		return r.mountPoint
	}

	return data.Join(r.mountPoint, backendPath)
}

// virtual reports whether a backend failure should be hidden because mounts exist below.
func (r *route) virtual(err error) bool {
	return len(r.children) > 0 && errors.Is(err, data.ErrNotExist)
}

func (t *Table) ListFiles(ctx context.Context, path string) ([]string, error) {
	_, r, err := t.route(path)
	if err != nil {
		return nil, err
	}

	if r.entry == nil {
		return []string{}, nil
	}

	files, err := r.entry.fs.ListFiles(ctx, r.relPath)
	if err != nil {
		if r.virtual(err) {
			return []string{}, nil
		}
		return nil, err
	}

	paths := make([]string, 0, len(files))
	for _, file := range files {
		p := r.toTablePath(file)
		// Mount points shadow backend entries of the same name
		if slices.Contains(r.children, p) {
			continue
		}
		paths = append(paths, p)
	}

	return paths, nil
}

func (t *Table) ListDirectories(ctx context.Context, path string) ([]string, error) {
	_, r, err := t.route(path)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(r.children))
	if r.entry != nil {
		dirs, err := r.entry.fs.ListDirectories(ctx, r.relPath)
		if err != nil && !r.virtual(err) {
			return nil, err
		}

		for _, dir := range dirs {
			paths = append(paths, r.toTablePath(dir))
		}
	}

	for _, child := range r.children {
		if !slices.Contains(paths, child) {
			paths = append(paths, child)
		}
	}

	return paths, nil
}

func (t *Table) Attributes(ctx context.Context, path string) (data.Attributes, error) {
	info, err := t.FileInfo(ctx, path)
	if err != nil {
		return 0, err
	}

	return info.Attributes(), nil
}

func (t *Table) FileInfo(ctx context.Context, path string) (*data.FileInfo, error) {
	path, r, err := t.route(path)
	if err != nil {
		return nil, err
	}

	if r.entry == nil {
		return data.NewFileInfo(path, data.ModeDir|0555, 0, time.Time{}), nil
	}

	info, err := r.entry.fs.FileInfo(ctx, r.relPath)
	if err != nil {
		if r.virtual(err) {
			return data.NewFileInfo(path, data.ModeDir|0555, 0, time.Time{}), nil
		}
		return nil, err
	}

	result := *info
	result.Path = path
	if path == r.mountPoint {
		result.Mode |= data.ModeDir | data.ModeMount
	}

	return &result, nil
}
