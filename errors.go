package walker

import "fmt"

// ListingError is the single failure category handed to an ExceptionHandler.
// It wraps the collaborator error, so errors.Is reaches the data sentinels.
type ListingError struct {
	Op   string
	Path string
	Err  error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("walker: %s '%s': %v", e.Op, e.Path, e.Err)
}

func (e *ListingError) Unwrap() error {
	return e.Err
}
