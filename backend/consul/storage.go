package consul

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/consul/api"
	"github.com/mwantia/walker/data"
)

func (cb *ConsulBackend) ListFiles(ctx context.Context, path string) ([]string, error) {
	return cb.children(ctx, path, false)
}

func (cb *ConsulBackend) ListDirectories(ctx context.Context, path string) ([]string, error) {
	return cb.children(ctx, path, true)
}

func (cb *ConsulBackend) Attributes(ctx context.Context, path string) (data.Attributes, error) {
	info, err := cb.FileInfo(ctx, path)
	if err != nil {
		return 0, err
	}

	return info.Attributes(), nil
}

func (cb *ConsulBackend) FileInfo(ctx context.Context, path string) (*data.FileInfo, error) {
	key, err := cb.buildKey(path)
	if err != nil {
		return nil, err
	}

	opts := (&api.QueryOptions{}).WithContext(ctx)
	if key != cb.basePrefix() {
		pair, _, err := cb.kv.Get(key, opts)
		if err != nil {
			return nil, mapError(err)
		}
		if pair != nil {
			return data.NewFileInfo(cb.toPath(key), 0644, int64(len(pair.Value)), time.Time{}), nil
		}
	}

	keys, err := cb.folder(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 && key != cb.basePrefix() {
		return nil, data.ErrNotExist
	}

	return data.NewFileInfo(cb.toPath(key), data.ModeDir|0755, 0, time.Time{}), nil
}

// folder returns the direct children of key using the "/" separator.
func (cb *ConsulBackend) folder(ctx context.Context, key string) ([]string, error) {
	prefix := key
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	keys, _, err := cb.kv.Keys(prefix, "/", (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, mapError(err)
	}

	children := make([]string, 0, len(keys))
	for _, k := range keys {
		// Folder markers created by the UI list themselves
		if k == prefix {
			continue
		}
		children = append(children, k)
	}

	return children, nil
}

func (cb *ConsulBackend) children(ctx context.Context, path string, dirs bool) ([]string, error) {
	key, err := cb.buildKey(path)
	if err != nil {
		return nil, err
	}

	keys, err := cb.folder(ctx, key)
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 && key != cb.basePrefix() {
		pair, _, err := cb.kv.Get(key, (&api.QueryOptions{}).WithContext(ctx))
		if err != nil {
			return nil, mapError(err)
		}
		if pair != nil {
			return nil, data.ErrNotDirectory
		}

		marker, _, err := cb.kv.Get(key+"/", (&api.QueryOptions{}).WithContext(ctx))
		if err != nil {
			return nil, mapError(err)
		}
		if marker == nil {
			return nil, data.ErrNotExist
		}
	}

	paths := make([]string, 0, len(keys))
	for _, k := range keys {
		if strings.HasSuffix(k, "/") == dirs {
			paths = append(paths, cb.toPath(k))
		}
	}

	return paths, nil
}
