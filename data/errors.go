package data

import (
	"errors"
	"sync"
)

// Standard errors that FileSystem implementations should use.
var (
	// Configuration errors
	ErrInvalidPath       = errors.New("walker: invalid path detected")
	ErrNilFileSystem     = errors.New("walker: file system is nil")
	ErrInvalidPattern    = errors.New("walker: invalid match pattern")
	ErrMalformedAddress  = errors.New("walker: malformed backend address")
	ErrUnknownProtocol   = errors.New("walker: unknown backend protocol")
	ErrInvalidLogLevel   = errors.New("walker: invalid log level")
	ErrBackendOpenFailed = errors.New("walker: backend open failed")

	// Mount table errors
	ErrNotMounted     = errors.New("walker: path not mounted")
	ErrAlreadyMounted = errors.New("walker: path already mounted")
	ErrMountBusy      = errors.New("walker: mount point busy")
	ErrNestingDenied  = errors.New("walker: nesting denied by parent mount")

	// Listing errors
	ErrNotExist     = errors.New("walker: file does not exist")
	ErrNotDirectory = errors.New("walker: not a directory")
	ErrPermission   = errors.New("walker: permission denied")
)

// Errors collects errors from multiple goroutines or handler invocations.
type Errors struct {
	mu     sync.RWMutex
	errors []error
}

func (e *Errors) Add(err error) {
	if err == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.errors = append(e.errors, err)
}

func (e *Errors) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.errors)
}

func (e *Errors) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.errors = nil
}

// Errors returns all collected errors joined, or nil if none were added.
func (e *Errors) Errors() error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(e.errors) == 0 {
		return nil
	}

	return errors.Join(e.errors...)
}
