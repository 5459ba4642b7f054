package cmdline

import (
	"context"
	"fmt"

	"github.com/aretw0/cmdline/pkg/domain"
)

// Names of the commands registered by Init.
const (
	CommandHelp       = "help"
	CommandHistoryLen = "historylen"
	CommandMask       = "mask"
)

func (s *Shell) defaultCommands() []domain.Descriptor {
	return []domain.Descriptor{
		{
			Name:    CommandHelp,
			Help:    "Show the list of commands",
			Command: domain.CommandFunc(s.help),
		},
		{
			Name:    CommandHistoryLen,
			Options: "<len>",
			Help:    "Set the number of history entries kept",
			Command: domain.CommandFunc(s.historyLen),
		},
		{
			Name:    CommandMask,
			Options: "on/off",
			Help:    "Hide typed characters",
			Command: domain.CommandFunc(s.mask),
		},
	}
}

// help prints one "name | help" line per command, in registration order.
func (s *Shell) help(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: help takes no arguments", domain.ErrInvalidArgs)
	}
	for _, d := range s.registry.List() {
		fmt.Fprintf(s.out, "%s | %s\n", d.Name, d.Help)
	}
	return nil
}

func (s *Shell) historyLen(_ context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: historylen takes one argument", domain.ErrInvalidArgs)
	}
	n := atoi(args[1])
	s.logger.Info("Setting history length", "len", n)
	s.editor.HistorySetMaxLen(n)
	return nil
}

func (s *Shell) mask(_ context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: mask takes one argument", domain.ErrInvalidArgs)
	}
	switch args[1] {
	case "on":
		s.editor.SetMaskMode(true)
	case "off":
		s.editor.SetMaskMode(false)
	default:
		return fmt.Errorf("%w: mask expects on or off, got %q", domain.ErrInvalidArgs, args[1])
	}
	s.logger.Info("Mask mode changed", "mode", args[1])
	return nil
}

// atoi parses an optional sign and the leading digits of s. Anything that is
// not a number yields 0.
func atoi(s string) int {
	i, neg := 0, false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n > 1<<31-1 {
			n = 1<<31 - 1
		}
	}
	if neg {
		return -n
	}
	return n
}
