package memory

import (
	"errors"
	"slices"
	"testing"

	"github.com/mwantia/walker/data"
)

func TestMemoryBackend_RemoveSubtree(t *testing.T) {
	ctx := t.Context()
	mb := NewMemoryBackend()

	for _, path := range []string{"/a/x", "/a/b/y", "/a-b/z"} {
		if err := mb.CreateFile(ctx, path, 1, 0644); err != nil {
			t.Fatalf("CreateFile failed: %v", err)
		}
	}

	if err := mb.Remove(ctx, "/a"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	dirs, err := mb.ListDirectories(ctx, "/")
	if err != nil {
		t.Fatalf("ListDirectories failed: %v", err)
	}
	if !slices.Equal(dirs, []string{"/a-b"}) {
		t.Errorf("Expected only '/a-b' to remain, got %v", dirs)
	}

	// root, /a-b and /a-b/z
	if mb.Len() != 3 {
		t.Errorf("Expected 3 entries, got %d", mb.Len())
	}

	if err := mb.Remove(ctx, "/a"); !errors.Is(err, data.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
	if err := mb.Remove(ctx, "/"); !errors.Is(err, data.ErrInvalidPath) {
		t.Errorf("Expected ErrInvalidPath for root, got %v", err)
	}
}

func TestMemoryBackend_CreateErrors(t *testing.T) {
	ctx := t.Context()
	mb := NewMemoryBackend()

	if err := mb.CreateDirectory(ctx, "/d", 0755); err != nil {
		t.Fatalf("CreateDirectory failed: %v", err)
	}
	if err := mb.CreateFile(ctx, "/d", 1, 0644); !errors.Is(err, data.ErrInvalidPath) {
		t.Errorf("Expected ErrInvalidPath when replacing a directory, got %v", err)
	}

	if err := mb.CreateFile(ctx, "/f", 1, 0644); err != nil {
		t.Fatalf("CreateFile failed: %v", err)
	}
	if err := mb.CreateFile(ctx, "/f/child", 1, 0644); !errors.Is(err, data.ErrNotDirectory) {
		t.Errorf("Expected ErrNotDirectory below a file, got %v", err)
	}
	if err := mb.CreateFile(ctx, "", 1, 0644); !errors.Is(err, data.ErrInvalidPath) {
		t.Errorf("Expected ErrInvalidPath for empty path, got %v", err)
	}
}

func TestMemoryBackend_ChmodAndClose(t *testing.T) {
	ctx := t.Context()
	mb := NewMemoryBackend()

	if err := mb.CreateFile(ctx, "/locked/secret", 1, 0644); err != nil {
		t.Fatalf("CreateFile failed: %v", err)
	}
	if err := mb.Chmod(ctx, "/locked", 0300); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	if _, err := mb.ListFiles(ctx, "/locked"); !errors.Is(err, data.ErrPermission) {
		t.Errorf("Expected ErrPermission, got %v", err)
	}

	attrs, err := mb.Attributes(ctx, "/locked")
	if err != nil {
		t.Fatalf("Attributes failed: %v", err)
	}
	if !attrs.IsDir() {
		t.Errorf("Expected directory attributes, got %s", attrs)
	}

	if err := mb.Chmod(ctx, "/missing", 0755); !errors.Is(err, data.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}

	if err := mb.Close(ctx); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if mb.Len() != 1 {
		t.Errorf("Expected only the root after Close, got %d entries", mb.Len())
	}
}
