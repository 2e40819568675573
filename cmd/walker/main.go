package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/mwantia/walker"
	"github.com/mwantia/walker/backend/address"
	"github.com/mwantia/walker/cmd"
	"github.com/mwantia/walker/cmd/builtin"
	"github.com/mwantia/walker/data"
	"github.com/mwantia/walker/extension/acl"
	"github.com/mwantia/walker/log"
	"github.com/mwantia/walker/mount"
	"github.com/spf13/cobra"
)

var version = "dev"

// exitError carries the exit code of a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCommand(stdout, stderr)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		var exit *exitError
		if errors.As(err, &exit) {
			return exit.code
		}
		return 1
	}
	return 0
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var mounts []string
	var deny, hide []string
	var logLevel string
	var logFile string

	usage := &bytes.Buffer{}
	cmd.NewRegistry(builtin.Commands()...).Usage(usage)

	root := &cobra.Command{
		Use:     "walker [flags] <command> [args]",
		Short:   "Walk directory trees of local and remote backends",
		Long:    "Walk directory trees of local and remote backends\n\nCommands:\n" + usage.String(),
		Version: version,
		Args:    cobra.MinimumNArgs(1),

		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return &exitError{code: 2, err: err}
			}

			logger := log.NewWriterLogger("walker", level, stderr)
			if logFile != "" {
				logger = log.NewLogger("walker", level, logFile, true)
			}

			table := mount.NewTable()
			defer unmountAll(ctx, table, logger)

			for _, m := range mounts {
				if err := mountAddress(ctx, table, m); err != nil {
					return &exitError{code: 2, err: err}
				}
			}

			api, err := restrict(table, deny, hide)
			if err != nil {
				return &exitError{code: 2, err: err}
			}

			registry := cmd.NewRegistry(builtin.Commands(walker.WithLogger(logger))...)
			code, err := registry.Execute(ctx, api, args[0], args[1:], stdout)
			if err != nil {
				return &exitError{code: code, err: err}
			}
			if code != 0 {
				return &exitError{code: code, err: fmt.Errorf("%s exited with code %d", args[0], code)}
			}
			return nil
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	// Flags after the command name belong to the command
	root.Flags().SetInterspersed(false)

	root.Flags().StringArrayVarP(&mounts, "mount", "m", []string{"/=local:///"}, "Mount a backend as path=address, e.g. /data=sqlite:///tmp/walk.db")
	root.Flags().StringArrayVar(&deny, "deny", nil, "Fail listing of directories matching a glob, e.g. /proc/**")
	root.Flags().StringArrayVar(&hide, "hide", nil, "Omit entries matching a glob from every listing, e.g. /**/.git")
	root.Flags().StringVar(&logLevel, "log-level", envOr("WALKER_LOG_LEVEL", "warn"), "Log level (debug, info, warn, error, off)")
	root.Flags().StringVar(&logFile, "log-file", "", "Write logs to a rotated file instead of stderr")

	return root
}

// mountAddress mounts "path=address". An address without path is mounted at "/".
func mountAddress(ctx context.Context, table *mount.Table, value string) error {
	path, addr := "/", value
	if before, after, ok := strings.Cut(value, "="); ok && strings.HasPrefix(before, "/") {
		path, addr = before, after
	}

	b, err := address.Parse(ctx, addr)
	if err != nil {
		return err
	}

	return table.Mount(ctx, path, b)
}

// aclTable lists through an acl backend while mounts go to the table.
type aclTable struct {
	*mount.Table
	fs *acl.AclBackend
}

func (at *aclTable) ListFiles(ctx context.Context, path string) ([]string, error) {
	return at.fs.ListFiles(ctx, path)
}

func (at *aclTable) ListDirectories(ctx context.Context, path string) ([]string, error) {
	return at.fs.ListDirectories(ctx, path)
}

func (at *aclTable) Attributes(ctx context.Context, path string) (data.Attributes, error) {
	return at.fs.Attributes(ctx, path)
}

func (at *aclTable) FileInfo(ctx context.Context, path string) (*data.FileInfo, error) {
	return at.fs.FileInfo(ctx, path)
}

// restrict wraps table with the deny and hide rules, or returns it unchanged without rules.
func restrict(table *mount.Table, deny, hide []string) (cmd.API, error) {
	if len(deny) == 0 && len(hide) == 0 {
		return table, nil
	}

	rules := make([]acl.AclRule, 0, len(deny)+len(hide))
	for _, pattern := range deny {
		rule, err := acl.NewAclRule(pattern, acl.AclDeny)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	for _, pattern := range hide {
		rule, err := acl.NewAclRule(pattern, acl.AclHide)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return &aclTable{
		Table: table,
		fs:    acl.NewAclBackend(table, rules...),
	}, nil
}

// unmountAll detaches the deepest mount points first.
func unmountAll(ctx context.Context, table *mount.Table, logger *log.Logger) {
	infos := table.Mounts()
	for i := len(infos) - 1; i >= 0; i-- {
		if err := table.Unmount(ctx, infos[i].Path); err != nil {
			logger.Warn("failed to unmount '%s': %v", infos[i].Path, err)
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
