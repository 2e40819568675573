package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/walker/backend/address"
	"github.com/mwantia/walker/cmd"
	"github.com/mwantia/walker/mount"
)

type MountCommand struct{}

func (mc *MountCommand) Name() string {
	return "mount"
}

func (mc *MountCommand) Description() string {
	return "attach a backend address at a path"
}

func (mc *MountCommand) Usage() string {
	return "mount [-N] <path> <address>"
}

func (mc *MountCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 2 {
		return 2, fmt.Errorf("%w: mount expects a path and an address", cmd.ErrInvalidArguments)
	}

	b, err := address.Parse(ctx, args.Args[1])
	if err != nil {
		return 2, err
	}

	var opts []mount.MountOption
	if args.Bool("no-nesting") {
		opts = append(opts, mount.WithoutNesting())
	}

	if err := api.Mount(ctx, args.Args[0], b, opts...); err != nil {
		return 1, err
	}

	fmt.Fprintf(writer, "mounted %s at %s\n", b.Name(), args.Args[0])
	return 0, nil
}

func (mc *MountCommand) GetFlags() *cmd.CommandFlagSet {
	return &cmd.CommandFlagSet{
		Flags: map[string]*cmd.CommandFlag{
			"no-nesting": {
				Name:        "no-nesting",
				Short:       "N",
				Type:        "bool",
				Description: "reject mounts below this mount point",
			},
		},
	}
}

type UmountCommand struct{}

func (uc *UmountCommand) Name() string {
	return "umount"
}

func (uc *UmountCommand) Description() string {
	return "detach the backend mounted at a path"
}

func (uc *UmountCommand) Usage() string {
	return "umount <path>"
}

func (uc *UmountCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return 2, fmt.Errorf("%w: umount expects exactly one path", cmd.ErrInvalidArguments)
	}

	if err := api.Unmount(ctx, args.Args[0]); err != nil {
		return 1, err
	}

	fmt.Fprintf(writer, "unmounted %s\n", args.Args[0])
	return 0, nil
}

func (uc *UmountCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
