package acl

import (
	"errors"
	"slices"
	"testing"

	"github.com/mwantia/walker"
	"github.com/mwantia/walker/backend/memory"
	"github.com/mwantia/walker/data"
)

func TestAclBackend_Walk(t *testing.T) {
	ctx := t.Context()

	mb := memory.NewMemoryBackend()
	for _, path := range []string{"/public/a.txt", "/public/b.tmp", "/secret/key.pem"} {
		if err := mb.CreateFile(ctx, path, 1, 0644); err != nil {
			t.Fatalf("CreateFile failed: %v", err)
		}
	}

	deny, err := NewAclRule("/secret", AclDeny)
	if err != nil {
		t.Fatalf("NewAclRule failed: %v", err)
	}
	hide, err := NewAclRule("/**/*.tmp", AclHide)
	if err != nil {
		t.Fatalf("NewAclRule failed: %v", err)
	}

	ab := NewAclBackend(mb, deny, hide)
	w, err := walker.New(ab)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	errs := &data.Errors{}
	var got []string
	for path := range w.WalkRecursive("/").Catch(walker.CollectErrors(errs, walker.Continue)).All(ctx) {
		got = append(got, path)
	}

	want := []string{"/", "/public", "/secret", "/public", "/public/a.txt"}
	if !slices.Equal(got, want) {
		t.Errorf("Unexpected traversal\n got: %v\nwant: %v", got, want)
	}

	// The denied directory is listed by its parent but cannot be entered
	if errs.Len() != 1 || !errors.Is(errs.Errors(), data.ErrPermission) {
		t.Errorf("Expected one permission error, got %v", errs.Errors())
	}

	attrs, err := ab.Attributes(ctx, "/public/b.tmp")
	if err != nil {
		t.Fatalf("Attributes failed: %v", err)
	}
	if !attrs.Has(data.AttributeHidden) {
		t.Errorf("Expected hidden attribute, got %s", attrs)
	}
}

func TestNewAclRule_InvalidPattern(t *testing.T) {
	if _, err := NewAclRule("/[a-", AclDeny); !errors.Is(err, data.ErrInvalidPattern) {
		t.Errorf("Expected ErrInvalidPattern, got %v", err)
	}
}
