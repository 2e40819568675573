package acl

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mwantia/walker/data"
)

// AclPermission decides what a rule does to the paths it matches.
type AclPermission int

const (
	// AclDeny makes listing a matching directory fail with data.ErrPermission.
	AclDeny AclPermission = iota
	// AclHide removes matching entries from every listing.
	AclHide
)

func (p AclPermission) String() string {
	switch p {
	case AclDeny:
		return "deny"
	case AclHide:
		return "hide"
	default:
		return "unknown"
	}
}

// AclRule applies a permission to all paths matching a doublestar pattern.
type AclRule struct {
	Pattern    string        `json:"pattern"`
	Permission AclPermission `json:"permission"`
}

func NewAclRule(pattern string, permission AclPermission) (AclRule, error) {
	if !doublestar.ValidatePattern(pattern) {
		return AclRule{}, fmt.Errorf("%w: '%s'", data.ErrInvalidPattern, pattern)
	}

	return AclRule{
		Pattern:    pattern,
		Permission: permission,
	}, nil
}

func (r AclRule) matches(path string) bool {
	ok, _ := doublestar.Match(r.Pattern, path)
	return ok
}
