package engine

import (
	"context"
	"fmt"
)

// Command is one verb the player can type.
type Command interface {
	Name() string
	Execute(ctx context.Context, s *Session, args []string) error
}

// Registry maps command names to commands and remembers registration order.
// It is filled once by New and only read afterwards.
type Registry struct {
	commands map[string]Command
	order    []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds cmd. Registering the same name twice is a programming error.
func (r *Registry) Register(cmd Command) {
	name := cmd.Name()
	if _, exists := r.commands[name]; exists {
		panic(fmt.Sprintf("engine: command %q registered twice", name))
	}
	r.commands[name] = cmd
	r.order = append(r.order, name)
}

// Lookup finds a command by its lower-case name.
func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names lists command names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
