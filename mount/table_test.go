package mount

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/mwantia/walker"
	"github.com/mwantia/walker/backend/memory"
	"github.com/mwantia/walker/data"
)

// lifecycleBackend counts Open and Close calls of a memory backend.
type lifecycleBackend struct {
	*memory.MemoryBackend
	opened, closed int
}

func (lb *lifecycleBackend) Open(ctx context.Context) error {
	lb.opened++
	return nil
}

func (lb *lifecycleBackend) Close(ctx context.Context) error {
	lb.closed++
	return nil
}

func newTree(t *testing.T, files ...string) *memory.MemoryBackend {
	t.Helper()

	mb := memory.NewMemoryBackend()
	for _, file := range files {
		if err := mb.CreateFile(t.Context(), file, 1, 0644); err != nil {
			t.Fatalf("CreateFile failed: %v", err)
		}
	}
	return mb
}

func TestTable_MountLifecycle(t *testing.T) {
	ctx := t.Context()
	table := NewTable()

	lb := &lifecycleBackend{MemoryBackend: memory.NewMemoryBackend()}
	if err := table.Mount(ctx, "/data", lb); err != nil {
		t.Fatalf("Mount failed: %v", err)
	}
	if err := table.Mount(ctx, "/data", lb); !errors.Is(err, data.ErrAlreadyMounted) {
		t.Errorf("Expected ErrAlreadyMounted, got %v", err)
	}
	if err := table.Mount(ctx, "/data/sub", newTree(t), WithoutAuto()); err != nil {
		t.Fatalf("Nested mount failed: %v", err)
	}

	if err := table.Unmount(ctx, "/data"); !errors.Is(err, data.ErrMountBusy) {
		t.Errorf("Expected ErrMountBusy, got %v", err)
	}
	if err := table.Unmount(ctx, "/data/sub"); err != nil {
		t.Fatalf("Unmount failed: %v", err)
	}
	if err := table.Unmount(ctx, "/data"); err != nil {
		t.Fatalf("Unmount failed: %v", err)
	}
	if err := table.Unmount(ctx, "/data"); !errors.Is(err, data.ErrNotMounted) {
		t.Errorf("Expected ErrNotMounted, got %v", err)
	}

	if lb.opened != 1 || lb.closed != 1 {
		t.Errorf("Expected one open and one close, got %d/%d", lb.opened, lb.closed)
	}
	if err := table.Mount(ctx, "/x", nil); !errors.Is(err, data.ErrNilFileSystem) {
		t.Errorf("Expected ErrNilFileSystem, got %v", err)
	}
}

func TestTable_NestingDenied(t *testing.T) {
	ctx := t.Context()
	table := NewTable()

	if err := table.Mount(ctx, "/", newTree(t), WithoutNesting()); err != nil {
		t.Fatalf("Mount failed: %v", err)
	}
	if err := table.Mount(ctx, "/inner", newTree(t)); !errors.Is(err, data.ErrNestingDenied) {
		t.Errorf("Expected ErrNestingDenied, got %v", err)
	}
}

func TestTable_Mounts(t *testing.T) {
	ctx := t.Context()
	table := NewTable()

	for _, path := range []string{"/b", "/a", "/a/c"} {
		if err := table.Mount(ctx, path, newTree(t)); err != nil {
			t.Fatalf("Mount failed: %v", err)
		}
	}

	var paths []string
	for _, info := range table.Mounts() {
		paths = append(paths, info.Path)
		if info.Backend != "memory" {
			t.Errorf("Expected memory backend, got %s", info.Backend)
		}
	}
	if !slices.Equal(paths, []string{"/a", "/a/c", "/b"}) {
		t.Errorf("Unexpected mounts: %v", paths)
	}
}

func TestTable_ListingAcrossMounts(t *testing.T) {
	ctx := t.Context()
	table := NewTable()

	if err := table.Mount(ctx, "/", newTree(t, "/etc/hosts")); err != nil {
		t.Fatalf("Mount failed: %v", err)
	}
	if err := table.Mount(ctx, "/srv/media", newTree(t, "/a.mp3", "/live/b.mp3")); err != nil {
		t.Fatalf("Mount failed: %v", err)
	}

	dirs, err := table.ListDirectories(ctx, "/")
	if err != nil {
		t.Fatalf("ListDirectories failed: %v", err)
	}
	if !slices.Equal(dirs, []string{"/etc", "/srv"}) {
		t.Errorf("Expected backend directory and mount path, got %v", dirs)
	}

	files, err := table.ListFiles(ctx, "/srv")
	if err != nil || len(files) != 0 {
		t.Errorf("Expected virtual directory without files, got %v (%v)", files, err)
	}

	files, err = table.ListFiles(ctx, "/srv/media/live")
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if !slices.Equal(files, []string{"/srv/media/live/b.mp3"}) {
		t.Errorf("Unexpected files: %v", files)
	}

	info, err := table.FileInfo(ctx, "/srv/media")
	if err != nil {
		t.Fatalf("FileInfo failed: %v", err)
	}
	if !info.Mode.IsMount() || !info.IsDir() || info.Path != "/srv/media" {
		t.Errorf("Expected mount point info, got %+v", info)
	}

	attrs, err := table.Attributes(ctx, "/srv")
	if err != nil {
		t.Fatalf("Attributes failed: %v", err)
	}
	if !attrs.IsDir() {
		t.Errorf("Expected virtual directory attributes, got %s", attrs)
	}
}

func TestTable_RecursiveWalk(t *testing.T) {
	ctx := t.Context()
	table := NewTable()

	if err := table.Mount(ctx, "/srv/media", newTree(t, "/a.mp3", "/live/b.mp3")); err != nil {
		t.Fatalf("Mount failed: %v", err)
	}
	if err := table.Mount(ctx, "/srv/docs", newTree(t, "/notes.md")); err != nil {
		t.Fatalf("Mount failed: %v", err)
	}

	w, err := walker.New(table)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var got []string
	for path := range w.WalkRecursive("/").All(ctx) {
		got = append(got, path)
	}

	want := []string{
		"/", "/srv",
		"/srv", "/srv/docs", "/srv/media",
		"/srv/media", "/srv/media/a.mp3", "/srv/media/live",
		"/srv/media/live", "/srv/media/live/b.mp3",
		"/srv/docs", "/srv/docs/notes.md",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Unexpected traversal\n got: %v\nwant: %v", got, want)
	}

	// Unmounted paths fail like any other listing
	errs := &data.Errors{}
	for range w.Walk("/nowhere").Catch(walker.CollectErrors(errs, walker.Continue)).All(ctx) {
	}
	if !errors.Is(errs.Errors(), data.ErrNotMounted) {
		t.Errorf("Expected ErrNotMounted, got %v", errs.Errors())
	}
}
