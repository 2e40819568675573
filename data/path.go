package data

import (
	"path"
	"strings"
)

// CleanPath normalizes a slash separated path to an absolute form without trailing slash.
// The empty string is rejected with ErrInvalidPath.
func CleanPath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", ErrInvalidPath
	}

	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	return path.Clean(p), nil
}

// Join concatenates a directory and a child name with a single slash.
func Join(dir, name string) string {
	if dir == "/" || dir == "" {
		return "/" + strings.TrimPrefix(name, "/")
	}

	return strings.TrimSuffix(dir, "/") + "/" + strings.TrimPrefix(name, "/")
}

// Parent returns the parent directory of p. The parent of "/" is "/".
func Parent(p string) string {
	return path.Dir(p)
}

// Base returns the last element of p.
func Base(p string) string {
	return path.Base(p)
}

// HasPrefix reports whether p equals prefix or lies below it.
// Both paths should be cleaned before calling.
func HasPrefix(p, prefix string) bool {
	if prefix == "/" || prefix == "" {
		return true
	}

	if p == prefix {
		return true
	}

	return strings.HasPrefix(p, prefix+"/")
}

// ToRelativePath removes prefix from p and any leading slash.
func ToRelativePath(p, prefix string) string {
	if prefix == "" || prefix == "/" {
		return strings.TrimPrefix(p, "/")
	}

	if p == prefix {
		return ""
	}

	return strings.TrimPrefix(strings.TrimPrefix(p, prefix), "/")
}
