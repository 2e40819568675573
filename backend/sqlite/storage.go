package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mwantia/walker/data"
)

func (sb *SQLiteBackend) ListFiles(ctx context.Context, path string) ([]string, error) {
	return sb.children(ctx, path, false)
}

func (sb *SQLiteBackend) ListDirectories(ctx context.Context, path string) ([]string, error) {
	return sb.children(ctx, path, true)
}

func (sb *SQLiteBackend) Attributes(ctx context.Context, path string) (data.Attributes, error) {
	info, err := sb.FileInfo(ctx, path)
	if err != nil {
		return 0, err
	}

	return info.Attributes(), nil
}

func (sb *SQLiteBackend) FileInfo(ctx context.Context, path string) (*data.FileInfo, error) {
	key, err := data.CleanPath(path)
	if err != nil {
		return nil, err
	}

	sb.mu.RLock()
	defer sb.mu.RUnlock()

	var mode, size, modifyTime int64
	err = sb.db.QueryRowContext(ctx, `SELECT mode, size, modify_time FROM walk_entries WHERE path = ?`, key).
		Scan(&mode, &size, &modifyTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, data.ErrNotExist
		}
		return nil, err
	}

	return data.NewFileInfo(key, data.FileMode(mode), size, time.Unix(0, modifyTime)), nil
}

func (sb *SQLiteBackend) children(ctx context.Context, path string, dirs bool) ([]string, error) {
	info, err := sb.FileInfo(ctx, path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, data.ErrNotDirectory
	}
	if !info.Mode.CanList() {
		return nil, data.ErrPermission
	}

	sb.mu.RLock()
	defer sb.mu.RUnlock()

	rows, err := sb.db.QueryContext(ctx, `SELECT path, mode FROM walk_entries WHERE parent = ? ORDER BY path`, info.Path)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paths := make([]string, 0)
	for rows.Next() {
		var child string
		var mode int64
		if err := rows.Scan(&child, &mode); err != nil {
			return nil, err
		}

		if data.FileMode(mode).IsDir() == dirs {
			paths = append(paths, child)
		}
	}

	return paths, rows.Err()
}
