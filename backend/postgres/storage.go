package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mwantia/walker/data"
)

// CreateDirectory creates path and every missing parent with the given permissions.
func (pb *PostgresBackend) CreateDirectory(ctx context.Context, path string, perm data.FileMode) error {
	key, err := data.CleanPath(path)
	if err != nil {
		return err
	}

	return pb.insert(ctx, key, perm.Perm()|data.ModeDir, 0)
}

// CreateFile creates a file row, creating missing parents with 0755.
func (pb *PostgresBackend) CreateFile(ctx context.Context, path string, size int64, perm data.FileMode) error {
	key, err := data.CleanPath(path)
	if err != nil {
		return err
	}

	if key == "/" {
		return data.ErrInvalidPath
	}

	return pb.insert(ctx, key, perm.Perm(), size)
}

func (pb *PostgresBackend) insert(ctx context.Context, key string, mode data.FileMode, size int64) error {
	tx, err := pb.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	for parent := data.Parent(key); parent != "/"; parent = data.Parent(parent) {
		if _, err := tx.Exec(ctx, `INSERT INTO walk_entries (path, parent, mode, size, modify_time) VALUES ($1, $2, $3, 0, $4) ON CONFLICT (path) DO NOTHING`,
			parent, data.Parent(parent), int64(data.ModeDir|0755), now); err != nil {
			return err
		}
	}

	if key != "/" {
		query := `
		INSERT INTO walk_entries (path, parent, mode, size, modify_time) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (path) DO UPDATE SET mode = EXCLUDED.mode, size = EXCLUDED.size, modify_time = EXCLUDED.modify_time
		`
		if _, err := tx.Exec(ctx, query, key, data.Parent(key), int64(mode), size, now); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (pb *PostgresBackend) ListFiles(ctx context.Context, path string) ([]string, error) {
	return pb.children(ctx, path, false)
}

func (pb *PostgresBackend) ListDirectories(ctx context.Context, path string) ([]string, error) {
	return pb.children(ctx, path, true)
}

func (pb *PostgresBackend) Attributes(ctx context.Context, path string) (data.Attributes, error) {
	info, err := pb.FileInfo(ctx, path)
	if err != nil {
		return 0, err
	}

	return info.Attributes(), nil
}

func (pb *PostgresBackend) FileInfo(ctx context.Context, path string) (*data.FileInfo, error) {
	key, err := data.CleanPath(path)
	if err != nil {
		return nil, err
	}

	var mode, size int64
	var modifyTime time.Time
	err = pb.pool.QueryRow(ctx, `SELECT mode, size, modify_time FROM walk_entries WHERE path = $1`, key).
		Scan(&mode, &size, &modifyTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, data.ErrNotExist
		}
		return nil, err
	}

	return data.NewFileInfo(key, data.FileMode(mode), size, modifyTime), nil
}

func (pb *PostgresBackend) children(ctx context.Context, path string, dirs bool) ([]string, error) {
	info, err := pb.FileInfo(ctx, path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, data.ErrNotDirectory
	}
	if !info.Mode.CanList() {
		return nil, data.ErrPermission
	}

	rows, err := pb.pool.Query(ctx, `SELECT path, mode FROM walk_entries WHERE parent = $1 ORDER BY path`, info.Path)
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

// Truncate removes every entry except the root directory.
func (pb *PostgresBackend) Truncate(ctx context.Context) error {
	_, err := pb.pool.Exec(ctx, `DELETE FROM walk_entries WHERE path <> '/'`)
	return err
}
