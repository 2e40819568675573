package builtin

import (
	"github.com/mwantia/walker"
	"github.com/mwantia/walker/cmd"
)

// Commands returns every builtin command. The options are applied to each walker a command creates.
func Commands(opts ...walker.Option) []cmd.Command {
	return []cmd.Command{
		&LsCommand{options: opts},
		&WalkCommand{options: opts},
		&FindCommand{options: opts},
		&StatCommand{},
		&MountsCommand{},
		&MountCommand{},
		&UmountCommand{},
	}
}

func newWalker(api cmd.API, opts []walker.Option) (*walker.FileWalker, error) {
	return walker.New(api, opts...)
}

// exitCode maps collected listing failures to an exit code.
func exitCode(err error) (int, error) {
	if err != nil {
		return 1, err
	}
	return 0, nil
}
