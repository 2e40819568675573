package local

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/mwantia/walker/data"
)

func TestLocalBackend_AbsolutePaths(t *testing.T) {
	ctx := t.Context()
	base := t.TempDir()

	if err := os.MkdirAll(filepath.Join(base, "sub"), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, "a.txt"), []byte("a"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	lb := NewLocalBackend("")
	if err := lb.Open(ctx); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	files, err := lb.ListFiles(ctx, base)
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if want := []string{filepath.Join(base, "a.txt")}; !slices.Equal(files, want) {
		t.Errorf("Expected %v, got %v", want, files)
	}

	dirs, err := lb.ListDirectories(ctx, base)
	if err != nil {
		t.Fatalf("ListDirectories failed: %v", err)
	}
	if want := []string{filepath.Join(base, "sub")}; !slices.Equal(dirs, want) {
		t.Errorf("Expected %v, got %v", want, dirs)
	}
}

func TestLocalBackend_SymlinksAreFiles(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}

	ctx := t.Context()
	base := t.TempDir()

	if err := os.Mkdir(filepath.Join(base, "target"), 0755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	if err := os.Symlink(filepath.Join(base, "target"), filepath.Join(base, "link")); err != nil {
		t.Fatalf("Symlink failed: %v", err)
	}

	lb := NewLocalBackend(base)

	files, err := lb.ListFiles(ctx, "/")
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if !slices.Equal(files, []string{"/link"}) {
		t.Errorf("Expected symlink to be listed as file, got %v", files)
	}

	attrs, err := lb.Attributes(ctx, "/link")
	if err != nil {
		t.Fatalf("Attributes failed: %v", err)
	}
	if !attrs.Has(data.AttributeSymlink) || attrs.IsDir() {
		t.Errorf("Expected symlink attributes, got %s", attrs)
	}
}

func TestLocalBackend_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}

	ctx := t.Context()
	base := t.TempDir()
	locked := filepath.Join(base, "locked")

	if err := os.Mkdir(locked, 0000); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	t.Cleanup(func() {
		os.Chmod(locked, 0755)
	})

	lb := NewLocalBackend(base)
	if _, err := lb.ListFiles(ctx, "/locked"); !errors.Is(err, data.ErrPermission) {
		t.Errorf("Expected ErrPermission, got %v", err)
	}
}

func TestLocalBackend_OpenErrors(t *testing.T) {
	ctx := t.Context()
	base := t.TempDir()

	if err := NewLocalBackend(filepath.Join(base, "missing")).Open(ctx); !errors.Is(err, data.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}

	file := filepath.Join(base, "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := NewLocalBackend(file).Open(ctx); !errors.Is(err, data.ErrNotDirectory) {
		t.Errorf("Expected ErrNotDirectory, got %v", err)
	}
}
