package sqlite

import (
	"slices"
	"testing"

	"github.com/mwantia/walker"
	"github.com/mwantia/walker/backend/memory"
)

func TestSQLiteBackend_ImportFromWalk(t *testing.T) {
	ctx := t.Context()

	source := memory.NewMemoryBackend()
	for path, size := range map[string]int64{
		"/books/a.m4b":     100,
		"/books/series/b1": 200,
		"/books/series/b2": 300,
	} {
		if err := source.CreateFile(ctx, path, size, 0644); err != nil {
			t.Fatalf("CreateFile failed: %v", err)
		}
	}

	sb, err := NewSQLiteBackend(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteBackend failed: %v", err)
	}
	defer sb.Close(ctx)

	sourceWalker, err := walker.New(source)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	count, err := sb.Import(ctx, sourceWalker.WalkRecursive("/books").SelectFileInfo(ctx))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	// "/books/series" is produced twice, once listed and once entered
	if count != 6 {
		t.Errorf("Expected 6 imported entries, got %d", count)
	}

	indexWalker, err := walker.New(sb)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var want, got []string
	for path := range sourceWalker.WalkRecursive("/books").All(ctx) {
		want = append(want, path)
	}
	for path := range indexWalker.WalkRecursive("/books").All(ctx) {
		got = append(got, path)
	}

	if !slices.Equal(got, want) {
		t.Errorf("Unexpected traversal of the imported index\n got: %v\nwant: %v", got, want)
	}

	info, err := sb.FileInfo(ctx, "/books/series/b2")
	if err != nil {
		t.Fatalf("FileInfo failed: %v", err)
	}
	if info.Size != 300 {
		t.Errorf("Expected size 300, got %d", info.Size)
	}
}
