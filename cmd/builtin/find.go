package builtin

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mwantia/walker"
	"github.com/mwantia/walker/cmd"
	"github.com/mwantia/walker/data"
)

type FindCommand struct {
	options []walker.Option
}

func (fc *FindCommand) Name() string {
	return "find"
}

func (fc *FindCommand) Description() string {
	return "print paths below a directory matching a glob"
}

func (fc *FindCommand) Usage() string {
	return "find [-p pattern] [path]"
}

func (fc *FindCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	w, err := newWalker(api, fc.options)
	if err != nil {
		return 1, err
	}

	root, err := data.CleanPath(args.Arg(0, "/"))
	if err != nil {
		return 2, err
	}

	// Relative patterns are anchored at the search root
	pattern := args.String("pattern")
	if !strings.HasPrefix(pattern, "/") {
		pattern = data.Join(root, pattern)
	}

	errs := &data.Errors{}
	matches, err := w.WalkRecursive(root).Catch(walker.CollectErrors(errs, walker.Continue)).Match(ctx, pattern)
	if err != nil {
		return 2, err
	}

	seen := make(map[string]struct{})
	for path := range matches {
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		fmt.Fprintln(writer, path)
	}

	return exitCode(errs.Errors())
}

func (fc *FindCommand) GetFlags() *cmd.CommandFlagSet {
	return &cmd.CommandFlagSet{
		Flags: map[string]*cmd.CommandFlag{
			"pattern": {
				Name:        "pattern",
				Short:       "p",
				Type:        "string",
				Default:     "**",
				Description: "doublestar glob, relative patterns start at path",
			},
		},
	}
}
