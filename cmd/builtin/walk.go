package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/walker"
	"github.com/mwantia/walker/cmd"
	"github.com/mwantia/walker/data"
)

// WalkCommand prints the raw traversal sequence.
// Each directory appears as a listing entry of its parent and again when it is entered.
type WalkCommand struct {
	options []walker.Option
}

func (wc *WalkCommand) Name() string {
	return "walk"
}

func (wc *WalkCommand) Description() string {
	return "print the traversal sequence below a directory"
}

func (wc *WalkCommand) Usage() string {
	return "walk [-s] [-b] [-n max] [path]"
}

func (wc *WalkCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	w, err := newWalker(api, wc.options)
	if err != nil {
		return 1, err
	}

	root := args.Arg(0, "/")
	if args.Bool("single") {
		w = w.Walk(root)
	} else {
		w = w.WalkRecursive(root)
	}

	behaviour := walker.Continue
	if args.Bool("break") {
		behaviour = walker.Break
	}

	errs := &data.Errors{}
	w = w.Catch(walker.CollectErrors(errs, behaviour))
	if err := w.Err(); err != nil {
		return 2, err
	}

	limit := args.Int("max")
	it := w.Iterator(ctx)
	for it.Next() {
		fmt.Fprintln(writer, it.Path())
		if limit > 0 && int64(it.Produced()) >= limit {
			it.Stop()
		}
	}

	if err := it.Err(); err != nil {
		errs.Add(err)
	}

	return exitCode(errs.Errors())
}

func (wc *WalkCommand) GetFlags() *cmd.CommandFlagSet {
	return &cmd.CommandFlagSet{
		Flags: map[string]*cmd.CommandFlag{
			"single": {
				Name:        "single",
				Short:       "s",
				Type:        "bool",
				Description: "do not descend into subdirectories",
			},
			"break": {
				Name:        "break",
				Short:       "b",
				Type:        "bool",
				Description: "stop at the first directory that cannot be listed",
			},
			"max": {
				Name:        "max",
				Short:       "n",
				Type:        "int",
				Default:     int64(0),
				Description: "stop after this many paths",
			},
		},
	}
}
