package walker

// Behaviour is the decision an ExceptionHandler returns for a failed listing.
type Behaviour int

const (
	// Continue skips the failing directory and resumes with the remaining pending work.
	Continue Behaviour = iota
	// Break ends the whole traversal.
	Break
)

func (b Behaviour) String() string {
	switch b {
	case Continue:
		return "continue"
	case Break:
		return "break"
	default:
		return "unknown"
	}
}

// ExceptionHandler decides how a traversal proceeds after listing path failed with err.
// It is invoked synchronously from the goroutine consuming the traversal.
type ExceptionHandler func(path string, err error) Behaviour

// DefaultExceptionHandler skips every directory that cannot be listed.
func DefaultExceptionHandler(string, error) Behaviour {
	return Continue
}
