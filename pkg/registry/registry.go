package registry

import (
	"fmt"
	"strings"

	"github.com/aretw0/cmdline/pkg/domain"
)

// Registry is a bounded, ordered collection of command descriptors.
// Insertion order is registration order and is preserved by List.
// It is not safe for concurrent use.
type Registry struct {
	commands []domain.Descriptor
	capacity int
}

// New creates an empty registry holding up to domain.MaxCommands descriptors.
func New() *Registry {
	return NewWithCapacity(domain.MaxCommands)
}

// NewWithCapacity creates an empty registry holding up to capacity descriptors.
func NewWithCapacity(capacity int) *Registry {
	if capacity < 0 {
		capacity = 0
	}
	return &Registry{
		commands: make([]domain.Descriptor, 0, capacity),
		capacity: capacity,
	}
}

// Register appends d to the registry.
// Options may be empty; Name, Help and Command may not.
// On failure the registry is left unchanged.
func (r *Registry) Register(d domain.Descriptor) error {
	if d.Command == nil || d.Name == "" || d.Help == "" {
		return fmt.Errorf("%w: command, name and help are required (name=%q)", domain.ErrInvalidArgs, d.Name)
	}
	if len(r.commands) >= r.capacity {
		return fmt.Errorf("%w: registry holds at most %d commands", domain.ErrExceedCapacity, r.capacity)
	}
	if _, ok := r.Lookup(d.Name); ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, d.Name)
	}

	r.commands = append(r.commands, d)
	return nil
}

// Lookup returns the descriptor registered under exactly name.
func (r *Registry) Lookup(name string) (domain.Descriptor, bool) {
	for _, d := range r.commands {
		if d.Name == name {
			return d, true
		}
	}
	return domain.Descriptor{}, false
}

// List returns the registered descriptors in registration order.
func (r *Registry) List() []domain.Descriptor {
	result := make([]domain.Descriptor, len(r.commands))
	copy(result, r.commands)
	return result
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	return len(r.commands)
}

// Cap returns the maximum number of descriptors.
func (r *Registry) Cap() int {
	return r.capacity
}

// Complete returns the names starting with prefix, in registration order.
// If nothing matches, prefix itself is the only candidate so that a
// completion request leaves the input as typed.
func (r *Registry) Complete(prefix string) []string {
	var out []string
	for _, d := range r.commands {
		if strings.HasPrefix(d.Name, prefix) {
			out = append(out, d.Name)
		}
	}
	if len(out) == 0 {
		return []string{prefix}
	}
	return out
}

// Hint returns the options hint for a line that names a command exactly.
// The hint is prefixed with a space so it can be drawn right after the input.
func (r *Registry) Hint(line string) (string, bool) {
	d, ok := r.Lookup(line)
	if !ok || d.Options == "" {
		return "", false
	}
	return " " + d.Options, true
}
