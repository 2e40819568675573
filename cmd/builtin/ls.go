package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/walker"
	"github.com/mwantia/walker/backend"
	"github.com/mwantia/walker/cmd"
	"github.com/mwantia/walker/data"
)

type LsCommand struct {
	options []walker.Option
}

func (ls *LsCommand) Name() string {
	return "ls"
}

func (ls *LsCommand) Description() string {
	return "list the files and directories of a directory"
}

func (ls *LsCommand) Usage() string {
	return "ls [-l] [path]"
}

type lsEntry struct {
	path string
	dir  bool
}

func (ls *LsCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	w, err := newWalker(api, ls.options)
	if err != nil {
		return 1, err
	}

	errs := &data.Errors{}
	w = w.Walk(args.Arg(0, "/")).Catch(walker.CollectErrors(errs, walker.Break))
	if err := w.Err(); err != nil {
		return 2, err
	}

	if args.Bool("long") {
		return ls.long(ctx, w, errs, writer)
	}

	entries := walker.SelectWithFileSystem(ctx, w, func(path string, fs backend.FileSystem) lsEntry {
		attrs, err := fs.Attributes(ctx, path)
		return lsEntry{path: path, dir: err == nil && attrs.IsDir()}
	})

	first := true
	for entry := range entries {
		// The listed directory itself comes first
		if first {
			first = false
			continue
		}

		name := data.Base(entry.path)
		if entry.dir {
			name += "/"
		}
		fmt.Fprintln(writer, name)
	}

	return exitCode(errs.Errors())
}

func (ls *LsCommand) long(ctx context.Context, w *walker.FileWalker, errs *data.Errors, writer io.Writer) (int, error) {
	first := true
	for info, err := range w.SelectFileInfo(ctx) {
		if first {
			first = false
			continue
		}

		if err != nil {
			errs.Add(err)
			continue
		}

		fmt.Fprintf(writer, "%-11s %10d %s %s\n", info.Mode, info.Size,
			info.ModifyTime.Format("2006-01-02 15:04"), info.Name())
	}

	return exitCode(errs.Errors())
}

func (ls *LsCommand) GetFlags() *cmd.CommandFlagSet {
	return &cmd.CommandFlagSet{
		Flags: map[string]*cmd.CommandFlag{
			"long": {
				Name:        "long",
				Short:       "l",
				Type:        "bool",
				Description: "show mode, size and modification time",
			},
		},
	}
}
