package sqlite

import (
	"errors"
	"slices"
	"testing"

	"github.com/mwantia/walker/data"
)

func TestSQLiteBackend_CreateFileOverDirectory(t *testing.T) {
	ctx := t.Context()

	sb, err := NewSQLiteBackend(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteBackend failed: %v", err)
	}
	defer sb.Close(ctx)

	if err := sb.CreateFile(ctx, "/d/child", 1, 0644); err != nil {
		t.Fatalf("CreateFile failed: %v", err)
	}
	if err := sb.CreateFile(ctx, "/d", 1, 0644); !errors.Is(err, data.ErrInvalidPath) {
		t.Errorf("Expected ErrInvalidPath, got %v", err)
	}

	files, err := sb.ListFiles(ctx, "/d")
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if !slices.Equal(files, []string{"/d/child"}) {
		t.Errorf("Expected directory to keep its children, got %v", files)
	}

	// Files may still be replaced
	if err := sb.CreateFile(ctx, "/d/child", 5, 0600); err != nil {
		t.Errorf("Expected file update to succeed, got %v", err)
	}
}
