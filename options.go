package walker

import (
	"github.com/mwantia/walker/log"
)

type Options struct {
	Logger        *log.Logger
	LogLevel      log.LogLevel
	LogFile       string
	NoTerminalLog bool
	Root          string
	Mode          Mode
	Handler       ExceptionHandler

	levelSet bool
}

type Option func(*Options) error

func newDefaultOptions() *Options {
	return &Options{
		LogLevel: log.Off,
		Mode:     ModeSingle,
		Handler:  DefaultExceptionHandler,
	}
}

// logger returns the configured logger, building one from the level and file options.
func (o *Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	level := o.LogLevel
	// A log file without an explicit level records info and above
	if o.LogFile != "" && !o.levelSet {
		level = log.Info
	}

	if level == log.Off {
		return log.Discard()
	}

	return log.NewLogger("walker", level, o.LogFile, o.NoTerminalLog)
}

// WithLogger uses an existing logger; it takes precedence over the other log options.
func WithLogger(logger *log.Logger) Option {
	return func(opts *Options) error {
		opts.Logger = logger
		return nil
	}
}

func WithLogLevel(logLevel log.LogLevel) Option {
	return func(opts *Options) error {
		opts.LogLevel = logLevel
		opts.levelSet = true
		return nil
	}
}

func WithoutTerminalLog() Option {
	return func(opts *Options) error {
		opts.NoTerminalLog = true
		return nil
	}
}

// WithLogFile writes logs to a rotated file, at info level unless WithLogLevel is given.
func WithLogFile(logFile string) Option {
	return func(opts *Options) error {
		opts.LogFile = logFile
		return nil
	}
}

// WithRoot configures the initial root, traversed in the mode given by WithMode.
func WithRoot(root string) Option {
	return func(opts *Options) error {
		opts.Root = root
		return nil
	}
}

func WithMode(mode Mode) Option {
	return func(opts *Options) error {
		opts.Mode = mode
		return nil
	}
}

// WithExceptionHandler sets the initial handler; nil keeps the default.
func WithExceptionHandler(handler ExceptionHandler) Option {
	return func(opts *Options) error {
		if handler != nil {
			opts.Handler = handler
		}
		return nil
	}
}
