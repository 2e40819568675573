package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mwantia/walker/data"
	"github.com/tidwall/btree"
)

type node struct {
	mode       data.FileMode
	size       int64
	modifyTime time.Time
}

// MemoryBackend keeps a directory tree in an ordered B-tree keyed by absolute path.
// Entries are listed in lexical order.
type MemoryBackend struct {
	mu    sync.RWMutex
	nodes *btree.Map[string, *node]
}

func NewMemoryBackend() *MemoryBackend {
	mb := &MemoryBackend{
		nodes: btree.NewMap[string, *node](0),
	}
	mb.reset()

	return mb
}

// Returns the identifier name defined for this backend
func (*MemoryBackend) Name() string {
	return "memory"
}

// Open is part of the lifecycle behaviour; the tree is usable right after creation.
func (mb *MemoryBackend) Open(ctx context.Context) error {
	return nil
}

// Close drops every entry except the root directory.
func (mb *MemoryBackend) Close(ctx context.Context) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	mb.reset()
	return nil
}

// Len returns the number of entries including the root directory.
func (mb *MemoryBackend) Len() int {
	mb.mu.RLock()
	defer mb.mu.RUnlock()

	return mb.nodes.Len()
}

func (mb *MemoryBackend) reset() {
	mb.nodes.Clear()
	mb.nodes.Set("/", &node{
		mode:       data.ModeDir | 0755,
		modifyTime: time.Now(),
	})
}
