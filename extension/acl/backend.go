package acl

import (
	"context"
	"fmt"

	"github.com/mwantia/walker/backend"
	"github.com/mwantia/walker/data"
)

// AclBackend restricts a file system with a list of rules.
// Rules are checked in order and the first match wins.
type AclBackend struct {
	fs    backend.FileSystem
	rules []AclRule
}

func NewAclBackend(fs backend.FileSystem, rules ...AclRule) *AclBackend {
	return &AclBackend{
		fs:    fs,
		rules: rules,
	}
}

func (ab *AclBackend) permission(path string) (AclPermission, bool) {
	for _, rule := range ab.rules {
		if rule.matches(path) {
			return rule.Permission, true
		}
	}
	return 0, false
}

func (ab *AclBackend) check(path string) error {
	if p, ok := ab.permission(path); ok && p == AclDeny {
		return fmt.Errorf("%w: '%s' denied by acl", data.ErrPermission, path)
	}
	return nil
}

func (ab *AclBackend) filter(paths []string) []string {
	result := make([]string, 0, len(paths))
	for _, path := range paths {
		if p, ok := ab.permission(path); ok && p == AclHide {
			continue
		}
		result = append(result, path)
	}
	return result
}

func (ab *AclBackend) ListFiles(ctx context.Context, path string) ([]string, error) {
	if err := ab.check(path); err != nil {
		return nil, err
	}

	files, err := ab.fs.ListFiles(ctx, path)
	if err != nil {
		return nil, err
	}
	return ab.filter(files), nil
}

func (ab *AclBackend) ListDirectories(ctx context.Context, path string) ([]string, error) {
	if err := ab.check(path); err != nil {
		return nil, err
	}

	dirs, err := ab.fs.ListDirectories(ctx, path)
	if err != nil {
		return nil, err
	}
	return ab.filter(dirs), nil
}

func (ab *AclBackend) Attributes(ctx context.Context, path string) (data.Attributes, error) {
	attrs, err := ab.fs.Attributes(ctx, path)
	if err != nil {
		return 0, err
	}

	if p, ok := ab.permission(path); ok && p == AclHide {
		attrs |= data.AttributeHidden
	}
	return attrs, nil
}

func (ab *AclBackend) FileInfo(ctx context.Context, path string) (*data.FileInfo, error) {
	return ab.fs.FileInfo(ctx, path)
}
