package builtin

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mwantia/walker/cmd"
)

type MountsCommand struct{}

func (mc *MountsCommand) Name() string {
	return "mounts"
}

func (mc *MountsCommand) Description() string {
	return "list mount points"
}

func (mc *MountsCommand) Usage() string {
	return "mounts"
}

func (mc *MountsCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	for _, info := range api.Mounts() {
		fmt.Fprintf(writer, "%-24s %-10s %s\n", info.Path, info.Backend, info.MountedAt.Format(time.RFC3339))
	}
	return 0, nil
}

func (mc *MountsCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
