package data

import "strings"

// Attributes is a compact flag set answering "what kind of entry is this" questions.
type Attributes uint32

const (
	AttributeReadOnly Attributes = 1 << iota
	AttributeHidden
	AttributeDirectory
	AttributeSymlink
	AttributeMount
	AttributeDevice
)

// AttributesOf derives the attribute flags for an entry with the given name and mode.
// Names starting with a dot are hidden.
func AttributesOf(name string, mode FileMode) Attributes {
	var attrs Attributes
	if mode.IsDir() {
		attrs |= AttributeDirectory
	}
	if mode.IsSymlink() {
		attrs |= AttributeSymlink
	}
	if mode.IsMount() {
		attrs |= AttributeMount | AttributeDirectory
	}
	if mode&ModeDevice != 0 {
		attrs |= AttributeDevice
	}
	if mode&0200 == 0 {
		attrs |= AttributeReadOnly
	}
	if strings.HasPrefix(name, ".") && name != "." && name != ".." {
		attrs |= AttributeHidden
	}

	return attrs
}

// Has reports whether every bit of flag is set.
func (a Attributes) Has(flag Attributes) bool {
	return a&flag == flag
}

// IsDir reports whether the directory flag is set.
func (a Attributes) IsDir() bool {
	return a.Has(AttributeDirectory)
}

func (a Attributes) String() string {
	names := []struct {
		flag Attributes
		name string
	}{
		{AttributeReadOnly, "readonly"},
		{AttributeHidden, "hidden"},
		{AttributeDirectory, "directory"},
		{AttributeSymlink, "symlink"},
		{AttributeMount, "mount"},
		{AttributeDevice, "device"},
	}

	parts := make([]string, 0, len(names))
	for _, n := range names {
		if a.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}

	if len(parts) == 0 {
		return "normal"
	}
	return strings.Join(parts, "|")
}
