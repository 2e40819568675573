package memory

import (
	"context"
	"strings"

	"github.com/mwantia/walker/data"
)

func (mb *MemoryBackend) ListFiles(ctx context.Context, path string) ([]string, error) {
	return mb.children(ctx, path, false)
}

func (mb *MemoryBackend) ListDirectories(ctx context.Context, path string) ([]string, error) {
	return mb.children(ctx, path, true)
}

func (mb *MemoryBackend) Attributes(ctx context.Context, path string) (data.Attributes, error) {
	key, n, err := mb.lookup(ctx, path)
	if err != nil {
		return 0, err
	}

	return data.AttributesOf(data.Base(key), n.mode), nil
}

func (mb *MemoryBackend) FileInfo(ctx context.Context, path string) (*data.FileInfo, error) {
	key, n, err := mb.lookup(ctx, path)
	if err != nil {
		return nil, err
	}

	return data.NewFileInfo(key, n.mode, n.size, n.modifyTime), nil
}

func (mb *MemoryBackend) lookup(ctx context.Context, path string) (string, node, error) {
	if err := ctx.Err(); err != nil {
		return "", node{}, err
	}

	key, err := data.CleanPath(path)
	if err != nil {
		return "", node{}, err
	}

	mb.mu.RLock()
	defer mb.mu.RUnlock()

	n, ok := mb.nodes.Get(key)
	if !ok {
		return "", node{}, data.ErrNotExist
	}

	return key, *n, nil
}

// children performs a B-tree range scan starting at the directory prefix.
// Keys are ordered, so the scan stops at the first key outside the prefix.
func (mb *MemoryBackend) children(ctx context.Context, path string, dirs bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := data.CleanPath(path)
	if err != nil {
		return nil, err
	}

	mb.mu.RLock()
	defer mb.mu.RUnlock()

	dir, ok := mb.nodes.Get(key)
	if !ok {
		return nil, data.ErrNotExist
	}
	if !dir.mode.IsDir() {
		return nil, data.ErrNotDirectory
	}
	if !dir.mode.CanList() {
		return nil, data.ErrPermission
	}

	prefix := key
	if prefix != "/" {
		prefix += "/"
	}

	paths := make([]string, 0)
	mb.nodes.Ascend(prefix, func(child string, n *node) bool {
		if !strings.HasPrefix(child, prefix) {
			return false
		}

		rest := child[len(prefix):]
		if rest == "" || strings.Contains(rest, "/") {
			return true
		}

		if n.mode.IsDir() == dirs {
			paths = append(paths, child)
		}
		return true
	})

	return paths, nil
}
