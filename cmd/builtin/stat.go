package builtin

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mwantia/walker/cmd"
)

type StatCommand struct{}

func (sc *StatCommand) Name() string {
	return "stat"
}

func (sc *StatCommand) Description() string {
	return "show information about a path"
}

func (sc *StatCommand) Usage() string {
	return "stat <path>"
}

func (sc *StatCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return 2, fmt.Errorf("%w: stat expects exactly one path", cmd.ErrInvalidArguments)
	}

	info, err := api.FileInfo(ctx, args.Args[0])
	if err != nil {
		return 1, err
	}

	fmt.Fprintf(writer, "Path:       %s\n", info.Path)
	fmt.Fprintf(writer, "Mode:       %s\n", info.Mode)
	fmt.Fprintf(writer, "Attributes: %s\n", info.Attributes())
	fmt.Fprintf(writer, "Size:       %d\n", info.Size)
	if !info.IsDir() {
		fmt.Fprintf(writer, "Type:       %s\n", info.ContentType)
	}
	if !info.ModifyTime.IsZero() {
		fmt.Fprintf(writer, "Modified:   %s\n", info.ModifyTime.Format(time.RFC3339))
	}

	return 0, nil
}

func (sc *StatCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
