package walker

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mwantia/walker/data"
	"github.com/mwantia/walker/log"
)

func TestBreakOn(t *testing.T) {
	handler := BreakOn(data.ErrPermission)

	if got := handler("/r", &ListingError{Op: "list files", Path: "/r", Err: data.ErrPermission}); got != Break {
		t.Errorf("Expected Break for permission error, got %s", got)
	}
	if got := handler("/r", data.ErrNotExist); got != Continue {
		t.Errorf("Expected Continue for other errors, got %s", got)
	}
}

func TestCollectErrors(t *testing.T) {
	fs := newRecordingFS().addDir("/r", nil, []string{"a", "b"})
	fs.fileErr["/r/a"] = data.ErrPermission
	fs.fileErr["/r/b"] = data.ErrNotExist

	errs := &data.Errors{}
	w := newTestWalker(t, fs).WalkRecursive("/r").Catch(CollectErrors(errs, Continue))
	collect(w.All(t.Context()))

	if errs.Len() != 2 {
		t.Fatalf("Expected 2 collected errors, got %d", errs.Len())
	}

	joined := errs.Errors()
	if !errors.Is(joined, data.ErrPermission) || !errors.Is(joined, data.ErrNotExist) {
		t.Errorf("Expected both sentinels in %v", joined)
	}

	errs.Clear()
	if errs.Errors() != nil {
		t.Error("Expected no errors after Clear")
	}
}

func TestLogErrors(t *testing.T) {
	fs := newRecordingFS()

	var buf bytes.Buffer
	logger := log.NewWriterLogger("walker", log.Info, &buf)

	w := newTestWalker(t, fs).Walk("/missing").Catch(LogErrors(logger, Break))
	collect(w.All(t.Context()))

	if !strings.Contains(buf.String(), "unable to list '/missing' (break)") {
		t.Errorf("Expected handler log line, got %q", buf.String())
	}
}

func TestMemoryBackend_PermissionDeniedIsSkipped(t *testing.T) {
	mb := newMemoryTree(t)
	if err := mb.Chmod(t.Context(), "/music/live", 0000); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	errs := &data.Errors{}
	w := newTestWalker(t, mb).WalkRecursive("/music").Catch(CollectErrors(errs, Continue))

	expectPaths(t, collect(w.All(t.Context())), []string{
		"/music", "/music/a.mp3", "/music/notes.txt", "/music/live",
	})
	if !errors.Is(errs.Errors(), data.ErrPermission) {
		t.Errorf("Expected ErrPermission, got %v", errs.Errors())
	}
}
