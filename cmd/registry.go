package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
)

var (
	ErrInvalidArguments = errors.New("walker: invalid arguments")
	ErrUnknownCommand   = errors.New("walker: unknown command")
)

// Registry maps command names to commands.
type Registry struct {
	commands map[string]Command
}

func NewRegistry(commands ...Command) *Registry {
	r := &Registry{
		commands: make(map[string]Command),
	}
	for _, c := range commands {
		r.Register(c)
	}
	return r
}

// Register adds c, replacing any command with the same name.
func (r *Registry) Register(c Command) {
	r.commands[c.Name()] = c
}

func (r *Registry) Lookup(name string) (Command, bool) {
	c, ok := r.commands[name]
	return c, ok
}

// Commands returns all registered commands ordered by name.
func (r *Registry) Commands() []Command {
	commands := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		commands = append(commands, c)
	}

	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})
	return commands
}

// Execute parses raw for the named command and runs it.
func (r *Registry) Execute(ctx context.Context, api API, name string, raw []string, writer io.Writer) (int, error) {
	c, ok := r.Lookup(name)
	if !ok {
		return 127, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	args, err := NewParser(c.GetFlags()).Parse(raw)
	if err != nil {
		return 2, fmt.Errorf("%s: %w", c.Name(), err)
	}

	return c.Execute(ctx, api, args, writer)
}

// Usage writes a summary of all registered commands.
func (r *Registry) Usage(writer io.Writer) {
	for _, c := range r.Commands() {
		fmt.Fprintf(writer, "  %-24s %s\n", c.Usage(), c.Description())
	}
}
