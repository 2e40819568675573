package walker

import (
	"context"
	"fmt"
	"iter"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mwantia/walker/backend"
	"github.com/mwantia/walker/data"
)

// SelectWithFileSystem maps every path of the traversal through fn.
// Elements are transformed one at a time, in traversal order, as they are consumed.
func SelectWithFileSystem[T any](ctx context.Context, w *FileWalker, fn func(path string, fs backend.FileSystem) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for path := range w.All(ctx) {
			if !yield(fn(path, w.fs)) {
				return
			}
		}
	}
}

// SelectFileInfo maps every path of the traversal to its FileInfo.
// A path that vanished between listing and inspection is reported with its error.
func (w *FileWalker) SelectFileInfo(ctx context.Context) iter.Seq2[*data.FileInfo, error] {
	type result struct {
		info *data.FileInfo
		err  error
	}

	results := SelectWithFileSystem(ctx, w, func(path string, fs backend.FileSystem) result {
		info, err := fs.FileInfo(ctx, path)
		return result{info: info, err: err}
	})

	return func(yield func(*data.FileInfo, error) bool) {
		for r := range results {
			if !yield(r.info, r.err) {
				return
			}
		}
	}
}

// Match returns the traversal filtered by a doublestar glob such as "/music/**/*.mp3".
// Paths are compared in slash form. An invalid pattern is rejected before any listing.
func (w *FileWalker) Match(ctx context.Context, pattern string) (iter.Seq[string], error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: '%s'", data.ErrInvalidPattern, pattern)
	}

	return func(yield func(string) bool) {
		for path := range w.All(ctx) {
			if ok, _ := doublestar.Match(pattern, filepath.ToSlash(path)); !ok {
				continue
			}
			if !yield(path) {
				return
			}
		}
	}, nil
}
