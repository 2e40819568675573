package walker

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/mwantia/walker/backend"
	"github.com/mwantia/walker/data"
	"github.com/mwantia/walker/log"
)

// FileWalker is an immutable traversal configuration.
//
// Walk, WalkRecursive and Catch return a modified copy, so a walker can be shared
// between goroutines and a running traversal never observes later configuration.
// Every call to All or Iterator starts a new traversal from the configured root.
type FileWalker struct {
	fs      backend.FileSystem
	root    string
	mode    Mode
	handler ExceptionHandler
	logger  *log.Logger
	err     error
}

// New creates a walker listing through fs.
// The root is set with WithRoot or later with Walk and WalkRecursive.
func New(fs backend.FileSystem, opts ...Option) (*FileWalker, error) {
	if fs == nil {
		return nil, data.ErrNilFileSystem
	}

	options := newDefaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	w := &FileWalker{
		fs:      fs,
		mode:    options.Mode,
		handler: options.Handler,
		logger:  options.logger(),
		err:     fmt.Errorf("%w: no root configured", data.ErrInvalidPath),
	}

	if options.Root != "" {
		return w.withRoot(options.Root, options.Mode), nil
	}

	return w, nil
}

// FileSystem returns the listing collaborator of this walker.
func (w *FileWalker) FileSystem() backend.FileSystem {
	return w.fs
}

func (w *FileWalker) Root() string {
	return w.root
}

func (w *FileWalker) Mode() Mode {
	return w.mode
}

// Err reports a configuration error. A walker with an error yields nothing.
func (w *FileWalker) Err() error {
	return w.err
}

// Walk returns a copy that lists path without descending into subdirectories.
func (w *FileWalker) Walk(path string) *FileWalker {
	return w.withRoot(path, ModeSingle)
}

// WalkRecursive returns a copy that lists path and every reachable subdirectory.
func (w *FileWalker) WalkRecursive(path string) *FileWalker {
	return w.withRoot(path, ModeRecursive)
}

// Catch returns a copy using handler for listing failures, replacing the previous one.
// A nil handler restores DefaultExceptionHandler.
func (w *FileWalker) Catch(handler ExceptionHandler) *FileWalker {
	c := *w
	c.handler = handler
	if c.handler == nil {
		c.handler = DefaultExceptionHandler
	}

	return &c
}

func (w *FileWalker) withRoot(path string, mode Mode) *FileWalker {
	c := *w
	c.root = path
	c.mode = mode
	c.err = nil

	if strings.TrimSpace(path) == "" {
		c.err = fmt.Errorf("%w: empty root", data.ErrInvalidPath)
	}

	return &c
}

// IsDir reports whether path is a directory according to the file system attributes.
func (w *FileWalker) IsDir(ctx context.Context, path string) (bool, error) {
	attrs, err := w.fs.Attributes(ctx, path)
	if err != nil {
		return false, err
	}

	return attrs.IsDir(), nil
}

// Iterator starts a new traversal. No listing happens before the first call to Next.
func (w *FileWalker) Iterator(ctx context.Context) *Iterator {
	return newIterator(ctx, w)
}

// All returns the traversal as a sequence.
// Each range over the sequence performs a fresh traversal.
func (w *FileWalker) All(ctx context.Context) iter.Seq[string] {
	return func(yield func(string) bool) {
		it := w.Iterator(ctx)
		for it.Next() {
			if !yield(it.Path()) {
				it.Stop()
				return
			}
		}
	}
}
