package walker

import (
	"errors"

	"github.com/mwantia/walker/data"
	"github.com/mwantia/walker/log"
)

// ContinueOnError skips every failing directory. It behaves like DefaultExceptionHandler.
func ContinueOnError(string, error) Behaviour {
	return Continue
}

// BreakOnError ends the traversal at the first failing directory.
func BreakOnError(string, error) Behaviour {
	return Break
}

// BreakOn ends the traversal when the failure matches one of targets and skips otherwise.
func BreakOn(targets ...error) ExceptionHandler {
	return func(_ string, err error) Behaviour {
		for _, target := range targets {
			if errors.Is(err, target) {
				return Break
			}
		}

		return Continue
	}
}

// CollectErrors records every failure in errs and returns behaviour.
func CollectErrors(errs *data.Errors, behaviour Behaviour) ExceptionHandler {
	return func(_ string, err error) Behaviour {
		errs.Add(err)
		return behaviour
	}
}

// LogErrors writes every failure to logger at warn level and returns behaviour.
func LogErrors(logger *log.Logger, behaviour Behaviour) ExceptionHandler {
	return func(path string, err error) Behaviour {
		logger.Warn("unable to list '%s' (%s): %v", path, behaviour, err)
		return behaviour
	}
}
