package domain

import "context"

// Command is the capability implemented by every registered command.
// args holds the whole tokenized line; args[0] is the command name.
// Returning an error marks the invocation as malformed; the dispatcher
// reports it to the user and carries on.
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandFunc adapts a plain function to the Command interface.
type CommandFunc func(ctx context.Context, args []string) error

// Execute calls f(ctx, args).
func (f CommandFunc) Execute(ctx context.Context, args []string) error {
	return f(ctx, args)
}

// Descriptor is the registration record of a command.
type Descriptor struct {
	// Name is the invocation name, matched exactly against the first token.
	Name string
	// Command runs the command.
	Command Command
	// Options is an optional usage hint shown after the name while typing (e.g. "on/off").
	Options string
	// Help is the text printed by the help command and in usage warnings.
	Help string
}
