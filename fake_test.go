package walker

import (
	"context"
	"time"

	"github.com/mwantia/walker/data"
)

// recordingFS is an in-memory collaborator that records every listing call.
type recordingFS struct {
	files   map[string][]string
	dirs    map[string][]string
	fileErr map[string]error
	dirErr  map[string]error
	calls   []string
}

func newRecordingFS() *recordingFS {
	return &recordingFS{
		files:   make(map[string][]string),
		dirs:    make(map[string][]string),
		fileErr: make(map[string]error),
		dirErr:  make(map[string]error),
	}
}

// addDir registers a directory with its file and subdirectory names in listing order.
func (f *recordingFS) addDir(path string, files []string, dirs []string) *recordingFS {
	f.files[path] = make([]string, 0, len(files))
	for _, name := range files {
		f.files[path] = append(f.files[path], data.Join(path, name))
	}

	f.dirs[path] = make([]string, 0, len(dirs))
	for _, name := range dirs {
		child := data.Join(path, name)
		f.dirs[path] = append(f.dirs[path], child)
		if _, ok := f.files[child]; !ok {
			f.files[child] = []string{}
			f.dirs[child] = []string{}
		}
	}

	return f
}

func (f *recordingFS) ListFiles(ctx context.Context, path string) ([]string, error) {
	f.calls = append(f.calls, "files:"+path)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := f.fileErr[path]; err != nil {
		return nil, err
	}

	files, ok := f.files[path]
	if !ok {
		return nil, data.ErrNotExist
	}
	return files, nil
}

func (f *recordingFS) ListDirectories(ctx context.Context, path string) ([]string, error) {
	f.calls = append(f.calls, "dirs:"+path)
	if err := f.dirErr[path]; err != nil {
		return nil, err
	}

	dirs, ok := f.dirs[path]
	if !ok {
		return nil, data.ErrNotExist
	}
	return dirs, nil
}

func (f *recordingFS) Attributes(ctx context.Context, path string) (data.Attributes, error) {
	info, err := f.FileInfo(ctx, path)
	if err != nil {
		return 0, err
	}
	return info.Attributes(), nil
}

func (f *recordingFS) FileInfo(ctx context.Context, path string) (*data.FileInfo, error) {
	if _, ok := f.dirs[path]; ok {
		return data.NewFileInfo(path, data.ModeDir|0755, 0, time.Time{}), nil
	}

	for _, files := range f.files {
		for _, file := range files {
			if file == path {
				return data.NewFileInfo(path, 0644, int64(len(path)), time.Time{}), nil
			}
		}
	}

	return nil, data.ErrNotExist
}
