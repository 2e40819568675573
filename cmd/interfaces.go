package cmd

import (
	"context"
	"io"

	"github.com/mwantia/walker/backend"
	"github.com/mwantia/walker/mount"
)

// API is the file system view commands operate on.
// It is satisfied by *mount.Table.
type API interface {
	backend.FileSystem

	// Mount attaches a file system at the specified path.
	Mount(ctx context.Context, path string, fs backend.FileSystem, opts ...mount.MountOption) error

	// Unmount removes the file system at the specified path.
	// Returns an error if the path is not mounted or has child mounts.
	Unmount(ctx context.Context, path string) error

	// Mounts returns all mount points ordered by path.
	Mounts() []mount.MountInfo
}

// Command represents an executable command operating on an API.
type Command interface {
	// Name returns the command identifier
	Name() string

	// Description returns human-readable help text
	Description() string

	// Usage returns a usage string for help (e.g. "ls -l [path]")
	Usage() string

	// Execute runs the command with parsed arguments
	// The writer parameter is where command output should be written
	// Returns exit code (0 = success) and error message
	Execute(ctx context.Context, api API, args *CommandArgs, writer io.Writer) (int, error)

	// GetFlags returns the flag set for this command (this is optional)
	GetFlags() *CommandFlagSet
}
