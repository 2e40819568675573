package mount

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mwantia/walker/backend"
	"github.com/mwantia/walker/data"
)

// MountInfo describes one entry of a Table.
type MountInfo struct {
	Path      string
	Backend   string
	MountedAt time.Time
	Options   MountOptions
}

type mountEntry struct {
	fs   backend.FileSystem
	info MountInfo
}

// Table combines several file systems into one tree by mount point.
//
// Paths are routed to the longest matching mount point. Mount points and the
// directories leading to them are listed as directories, so a recursive walk
// over the table crosses from one backend into the next.
type Table struct {
	mu     sync.RWMutex
	mounts map[string]*mountEntry
}

func NewTable() *Table {
	return &Table{
		mounts: make(map[string]*mountEntry),
	}
}

// Mount attaches fs at path. A backend.Backend is opened unless WithoutAuto is given.
func (t *Table) Mount(ctx context.Context, path string, fs backend.FileSystem, opts ...MountOption) error {
	if fs == nil {
		return data.ErrNilFileSystem
	}

	path, err := data.CleanPath(path)
	if err != nil {
		return err
	}

	options := newDefaultMountOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return fmt.Errorf("failed to apply mount option: %w", err)
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.mounts[path]; exists {
		return fmt.Errorf("%w: %s", data.ErrAlreadyMounted, path)
	}

	if parent, ok := t.longestMatch(path); ok && !t.mounts[parent].info.Options.Nesting {
		return fmt.Errorf("%w: %s", data.ErrNestingDenied, parent)
	}

	name := "filesystem"
	if b, ok := fs.(backend.Backend); ok {
		name = b.Name()
		if options.Auto {
			if err := b.Open(ctx); err != nil {
				return fmt.Errorf("failed to open backend '%s' at %s: %w", name, path, err)
			}
		}
	}

	t.mounts[path] = &mountEntry{
		fs: fs,
		info: MountInfo{
			Path:      path,
			Backend:   name,
			MountedAt: time.Now(),
			Options:   *options,
		},
	}

	return nil
}

// Unmount detaches the file system at path.
// Returns ErrNotMounted if the path is not mounted and ErrMountBusy if child mounts exist.
func (t *Table) Unmount(ctx context.Context, path string) error {
	path, err := data.CleanPath(path)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	entry, exists := t.mounts[path]
	if !exists {
		return fmt.Errorf("%w: %s", data.ErrNotMounted, path)
	}

	for mountPoint := range t.mounts {
		if mountPoint != path && data.HasPrefix(mountPoint, path) {
			return fmt.Errorf("%w: %s has child mounts", data.ErrMountBusy, path)
		}
	}

	delete(t.mounts, path)

	if b, ok := entry.fs.(backend.Backend); ok && entry.info.Options.Auto {
		return b.Close(ctx)
	}

	return nil
}

// Mounts returns information about all mount points ordered by path.
func (t *Table) Mounts() []MountInfo {
	t.mu.RLock()
	defer t.mu.RUnlock()

	infos := make([]MountInfo, 0, len(t.mounts))
	for _, entry := range t.mounts {
		infos = append(infos, entry.info)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Path < infos[j].Path
	})

	return infos
}

// longestMatch must be called with the lock held.
func (t *Table) longestMatch(path string) (string, bool) {
	best, found := "", false
	for mountPoint := range t.mounts {
		if data.HasPrefix(path, mountPoint) && (!found || len(mountPoint) > len(best)) {
			best, found = mountPoint, true
		}
	}

	return best, found
}

// childMounts returns the directories directly below path that lead to a mount point.
// Must be called with the lock held.
func (t *Table) childMounts(path string) []string {
	seen := make(map[string]struct{})
	for mountPoint := range t.mounts {
		if mountPoint == path || !data.HasPrefix(mountPoint, path) {
			continue
		}

		rel := data.ToRelativePath(mountPoint, path)
		next := rel
		for i := 0; i < len(rel); i++ {
			if rel[i] == '/' {
				next = rel[:i]
				break
			}
		}

		seen[data.Join(path, next)] = struct{}{}
	}

	children := make([]string, 0, len(seen))
	for child := range seen {
		children = append(children, child)
	}
	sort.Strings(children)

	return children
}
