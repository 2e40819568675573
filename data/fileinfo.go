package data

import (
	"encoding/json"
	"time"
)

// FileInfo is the rich description of a walked path, built on demand by a FileSystem.
type FileInfo struct {
	// Full path as produced by the walker
	Path string `json:"path"`

	// Unix-style mode and permissions
	Mode FileMode `json:"mode"`

	// Size in bytes (0 for directories)
	Size int64 `json:"size"`

	// Last modification time
	ModifyTime time.Time `json:"modify_time"`

	// Content MIME type derived from the extension
	ContentType ContentType `json:"content_type"`
}

// NewFileInfo creates a FileInfo and derives its content type from path.
// Directories never carry a content type.
func NewFileInfo(path string, mode FileMode, size int64, modifyTime time.Time) *FileInfo {
	info := &FileInfo{
		Path:       path,
		Mode:       mode,
		Size:       size,
		ModifyTime: modifyTime,
	}
	if !mode.IsDir() {
		info.ContentType = GetMIMEType(path)
	}

	return info
}

// Marshal provides JSON serialization for FileInfo.
func (fi *FileInfo) Marshal() ([]byte, error) {
	return json.Marshal(fi)
}

// Unmarshal provides JSON deserialization for FileInfo.
func (fi *FileInfo) Unmarshal(data []byte) error {
	return json.Unmarshal(data, fi)
}

// Name returns the base name of the file or directory.
func (fi *FileInfo) Name() string {
	return Base(fi.Path)
}

// Dir returns the parent directory of the path.
func (fi *FileInfo) Dir() string {
	return Parent(fi.Path)
}

// IsDir returns true if this entry is a directory.
func (fi *FileInfo) IsDir() bool {
	return fi.Mode.IsDir()
}

// Attributes returns the flag view of this entry.
func (fi *FileInfo) Attributes() Attributes {
	return AttributesOf(fi.Name(), fi.Mode)
}
