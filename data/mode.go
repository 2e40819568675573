package data

import "io/fs"

// FileMode represents file mode and permission bits.
// It follows Unix file mode conventions with type and permission bits.
type FileMode uint32

const (
	// Type bits
	ModeDir     FileMode = 1 << 31 // d: directory
	ModeSymlink FileMode = 1 << 30 // L: symbolic link
	ModeDevice  FileMode = 1 << 27 // D: device file
	ModeMount   FileMode = 1 << 24 // M: mount point

	// Permission bits
	ModePerm FileMode = 0777
)

// FromFileMode converts a standard library mode into a FileMode.
func FromFileMode(m fs.FileMode) FileMode {
	mode := FileMode(m.Perm())
	if m.IsDir() {
		mode |= ModeDir
	}
	if m&fs.ModeSymlink != 0 {
		mode |= ModeSymlink
	}
	if m&fs.ModeDevice != 0 {
		mode |= ModeDevice
	}

	return mode
}

// IsDir reports whether m describes a directory.
func (m FileMode) IsDir() bool {
	return m&ModeDir != 0
}

// IsSymlink reports whether m describes a symbolic link.
func (m FileMode) IsSymlink() bool {
	return m&ModeSymlink != 0
}

// IsMount reports whether m describes a mount point.
func (m FileMode) IsMount() bool {
	return m&ModeMount != 0
}

// IsRegular reports whether m describes a regular file.
func (m FileMode) IsRegular() bool {
	return m&(ModeDir|ModeSymlink|ModeDevice|ModeMount) == 0
}

// Perm returns the Unix permission bits in m.
func (m FileMode) Perm() FileMode {
	return m & ModePerm
}

// CanList reports whether the owner may list a directory with this mode.
// Listing requires both the read and the execute bit.
func (m FileMode) CanList() bool {
	return m&0500 == 0500
}

// String returns a textual representation of the mode in Unix ls -l format.
// Example: "drwxr-xr-x" for a directory with 755 permissions.
func (m FileMode) String() string {
	var buf [16]byte
	w := 0

	switch {
	case m.IsDir():
		buf[w] = 'd'
	case m.IsSymlink():
		buf[w] = 'L'
	case m&ModeDevice != 0:
		buf[w] = 'D'
	default:
		buf[w] = '-'
	}
	w++

	if m.IsMount() {
		buf[w] = 'M'
		w++
	}

	const rwx = "rwxrwxrwx"
	for i, c := range rwx {
		if m&(1<<uint(9-1-i)) != 0 {
			buf[w] = byte(c)
		} else {
			buf[w] = '-'
		}
		w++
	}

	return string(buf[:w])
}
