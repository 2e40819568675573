package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mwantia/walker/data"
)

// CreateDirectory creates path and every missing parent with the given permissions.
func (mb *MemoryBackend) CreateDirectory(ctx context.Context, path string, perm data.FileMode) error {
	key, err := data.CleanPath(path)
	if err != nil {
		return err
	}

	mb.mu.Lock()
	defer mb.mu.Unlock()

	return mb.ensureDirectory(key, perm.Perm()|data.ModeDir)
}

// CreateFile creates a file with the given size, creating missing parents with 0755.
func (mb *MemoryBackend) CreateFile(ctx context.Context, path string, size int64, perm data.FileMode) error {
	key, err := data.CleanPath(path)
	if err != nil {
		return err
	}

	if key == "/" {
		return data.ErrInvalidPath
	}

	mb.mu.Lock()
	defer mb.mu.Unlock()

	if err := mb.ensureDirectory(data.Parent(key), data.ModeDir|0755); err != nil {
		return err
	}

	if existing, ok := mb.nodes.Get(key); ok && existing.mode.IsDir() {
		return fmt.Errorf("%w: '%s' is a directory", data.ErrInvalidPath, key)
	}

	mb.nodes.Set(key, &node{
		mode:       perm.Perm(),
		size:       size,
		modifyTime: time.Now(),
	})

	return nil
}

// Chmod replaces the permission bits of an existing entry.
func (mb *MemoryBackend) Chmod(ctx context.Context, path string, perm data.FileMode) error {
	key, err := data.CleanPath(path)
	if err != nil {
		return err
	}

	mb.mu.Lock()
	defer mb.mu.Unlock()

	n, ok := mb.nodes.Get(key)
	if !ok {
		return data.ErrNotExist
	}

	n.mode = (n.mode &^ data.ModePerm) | perm.Perm()
	n.modifyTime = time.Now()

	return nil
}

// Remove deletes path and everything below it.
func (mb *MemoryBackend) Remove(ctx context.Context, path string) error {
	key, err := data.CleanPath(path)
	if err != nil {
		return err
	}

	if key == "/" {
		return data.ErrInvalidPath
	}

	mb.mu.Lock()
	defer mb.mu.Unlock()

	if _, ok := mb.nodes.Get(key); !ok {
		return data.ErrNotExist
	}

	doomed := []string{key}
	mb.nodes.Ascend(key+"/", func(child string, _ *node) bool {
		if !strings.HasPrefix(child, key+"/") {
			return false
		}
		doomed = append(doomed, child)
		return true
	})

	for _, k := range doomed {
		mb.nodes.Delete(k)
	}

	return nil
}

// ensureDirectory must be called with the write lock held.
func (mb *MemoryBackend) ensureDirectory(key string, mode data.FileMode) error {
	if existing, ok := mb.nodes.Get(key); ok {
		if !existing.mode.IsDir() {
			return fmt.Errorf("%w: '%s'", data.ErrNotDirectory, key)
		}
		return nil
	}

	if err := mb.ensureDirectory(data.Parent(key), data.ModeDir|0755); err != nil {
		return err
	}

	mb.nodes.Set(key, &node{
		mode:       mode,
		modifyTime: time.Now(),
	})

	return nil
}
