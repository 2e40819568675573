package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/mwantia/walker/data"
)

// CreateDirectory creates path and every missing parent with the given permissions.
func (sb *SQLiteBackend) CreateDirectory(ctx context.Context, path string, perm data.FileMode) error {
	key, err := data.CleanPath(path)
	if err != nil {
		return err
	}

	return sb.insert(ctx, key, perm.Perm()|data.ModeDir, 0, time.Now())
}

// CreateFile creates a file row, creating missing parents with 0755.
func (sb *SQLiteBackend) CreateFile(ctx context.Context, path string, size int64, perm data.FileMode) error {
	key, err := data.CleanPath(path)
	if err != nil {
		return err
	}

	if key == "/" {
		return data.ErrInvalidPath
	}

	return sb.insert(ctx, key, perm.Perm(), size, time.Now())
}

// Import stores every entry produced by infos and returns the number of stored rows.
// It stops at the first error reported by the sequence.
func (sb *SQLiteBackend) Import(ctx context.Context, infos iter.Seq2[*data.FileInfo, error]) (int, error) {
	count := 0
	for info, err := range infos {
		if err != nil {
			return count, err
		}

		key, err := data.CleanPath(info.Path)
		if err != nil {
			return count, err
		}

		if err := sb.insert(ctx, key, info.Mode, info.Size, info.ModifyTime); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

func (sb *SQLiteBackend) insert(ctx context.Context, key string, mode data.FileMode, size int64, modifyTime time.Time) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	tx, err := sb.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Create missing parents from the top down
	missing := []string{}
	for parent := data.Parent(key); parent != "/"; parent = data.Parent(parent) {
		missing = append([]string{parent}, missing...)
	}

	now := time.Now().UnixNano()
	for _, parent := range missing {
		var existing int64
		err := tx.QueryRowContext(ctx, `SELECT mode FROM walk_entries WHERE path = ?`, parent).Scan(&existing)
		if err == nil {
			if !data.FileMode(existing).IsDir() {
				return data.ErrNotDirectory
			}
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		if _, err := tx.ExecContext(ctx, `INSERT INTO walk_entries (path, parent, mode, size, modify_time) VALUES (?, ?, ?, 0, ?)`,
			parent, data.Parent(parent), int64(data.ModeDir|0755), now); err != nil {
			return err
		}
	}

	if key != "/" && !mode.IsDir() {
		var existing int64
		err := tx.QueryRowContext(ctx, `SELECT mode FROM walk_entries WHERE path = ?`, key).Scan(&existing)
		if err == nil && data.FileMode(existing).IsDir() {
			return fmt.Errorf("%w: '%s' is a directory", data.ErrInvalidPath, key)
		}
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}
	}

	if key != "/" {
		query := `
		INSERT INTO walk_entries (path, parent, mode, size, modify_time) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET mode = excluded.mode, size = excluded.size, modify_time = excluded.modify_time
		`
		if _, err := tx.ExecContext(ctx, query, key, data.Parent(key), int64(mode), size, modifyTime.UnixNano()); err != nil {
			return err
		}
	}

	return tx.Commit()
}
