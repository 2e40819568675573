package walker

import (
	"context"

	"github.com/google/uuid"
	"github.com/mwantia/walker/backend"
	"github.com/mwantia/walker/log"
)

// Iterator is a single depth-first traversal driven by Next.
//
// A directory is produced once its files could be listed, followed by its files and
// then its subdirectories. In recursive mode subdirectories are pushed onto a stack,
// so the last discovered subdirectory is entered first.
type Iterator struct {
	ctx       context.Context
	fs        backend.FileSystem
	handler   ExceptionHandler
	recursive bool
	logger    *log.Logger
	id        string

	pending []string
	queue   []string
	current string

	// entered is the directory produced last whose contents are still to be queued
	entered  string
	files    []string
	expanded bool

	started  bool
	done     bool
	produced int
	err      error
}

func newIterator(ctx context.Context, w *FileWalker) *Iterator {
	it := &Iterator{
		ctx:       ctx,
		fs:        w.fs,
		handler:   w.handler,
		recursive: w.mode == ModeRecursive,
		logger:    w.logger,
		id:        uuid.Must(uuid.NewV7()).String(),
		expanded:  true,
	}

	if w.err != nil {
		it.done = true
		return it
	}

	it.pending = []string{w.root}
	return it
}

// ID returns the unique identifier of this traversal used in log messages.
func (it *Iterator) ID() string {
	return it.id
}

// Path returns the element produced by the last successful call to Next.
func (it *Iterator) Path() string {
	return it.current
}

// Produced returns the number of elements produced so far.
func (it *Iterator) Produced() int {
	return it.produced
}

// Err returns the failure that ended the traversal, if any.
// Only directory listing failures end a traversal this way;
// file listing failures are decided by the exception handler.
func (it *Iterator) Err() error {
	return it.err
}

// Stop ends the traversal; subsequent calls to Next return false.
func (it *Iterator) Stop() {
	if !it.done {
		it.finish("stopped")
	}
}

// Next advances to the next element and reports whether one is available.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}

	if !it.started {
		it.started = true
		if len(it.pending) > 0 {
			it.logger.Debug("walk %s: started at '%s' (recursive=%t)", it.id, it.pending[0], it.recursive)
		}
	}

	if !it.expanded {
		if !it.expand() {
			return false
		}
	}

	if len(it.queue) > 0 {
		it.current = it.queue[0]
		it.queue = it.queue[1:]
		it.produced++
		return true
	}

	for len(it.pending) > 0 {
		last := len(it.pending) - 1
		path := it.pending[last]
		it.pending = it.pending[:last]

		files, err := it.fs.ListFiles(it.ctx, path)
		if err != nil {
			listingErr := &ListingError{Op: "list files", Path: path, Err: err}

			behaviour := it.handler(path, listingErr)
			it.logger.Debug("walk %s: %s after failure: %v", it.id, behaviour, listingErr)

			if behaviour == Break {
				it.finish("break")
				return false
			}
			continue
		}

		it.logger.Debug("walk %s: entered '%s'", it.id, path)

		it.entered = path
		it.files = files
		it.expanded = false

		it.current = path
		it.produced++
		return true
	}

	it.finish("completed")
	return false
}

// expand lists the subdirectories of the entered directory and queues its contents.
// A failing directory listing is not passed to the exception handler;
// it ends the traversal before any file of the directory is produced and is kept in Err.
func (it *Iterator) expand() bool {
	it.expanded = true

	dirs, err := it.fs.ListDirectories(it.ctx, it.entered)
	if err != nil {
		it.err = &ListingError{Op: "list directories", Path: it.entered, Err: err}
		it.logger.Warn("walk %s: %v", it.id, it.err)
		it.finish("failed")
		return false
	}

	if it.recursive {
		it.pending = append(it.pending, dirs...)
	}

	queue := make([]string, 0, len(it.files)+len(dirs))
	queue = append(queue, it.files...)
	it.queue = append(queue, dirs...)

	it.files = nil
	return true
}

func (it *Iterator) finish(reason string) {
	it.done = true
	it.pending = nil
	it.queue = nil
	it.files = nil
	it.expanded = true

	if it.started {
		it.logger.Debug("walk %s: %s after %d paths", it.id, reason, it.produced)
	}
}
