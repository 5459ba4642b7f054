package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/cmdline/pkg/domain"
)

// SampleStatus is the state toggled by the sample commands.
type SampleStatus int

const (
	SampleInvalid SampleStatus = iota
	SampleOn
	SampleOff
)

func (s SampleStatus) String() string {
	switch s {
	case SampleInvalid:
		return "Invalid"
	case SampleOn:
		return "on"
	case SampleOff:
		return "off"
	default:
		return "Error"
	}
}

// Sample holds the state behind the sample-status and sample-ctrl commands.
type Sample struct {
	Status SampleStatus
	out    io.Writer
}

// NewSample creates the sample state, printing to out.
func NewSample(out io.Writer) *Sample {
	return &Sample{out: out}
}

// Commands returns the descriptors of the sample commands.
func (s *Sample) Commands() []domain.Descriptor {
	return []domain.Descriptor{
		{
			Name:    "sample-status",
			Help:    "Show current sample status: <on/off>",
			Command: domain.CommandFunc(s.showStatus),
		},
		{
			Name:    "sample-ctrl",
			Options: "on/off",
			Help:    "Change sample status: <on/off>",
			Command: domain.CommandFunc(s.ctrl),
		},
	}
}

func (s *Sample) showStatus(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: sample-status takes no arguments", domain.ErrInvalidArgs)
	}
	fmt.Fprintf(s.out, "Sample status: '%s'\n", s.Status)
	return nil
}

func (s *Sample) ctrl(_ context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: sample-ctrl takes one argument", domain.ErrInvalidArgs)
	}

	prev := s.Status
	switch args[1] {
	case "on":
		s.Status = SampleOn
	case "off":
		s.Status = SampleOff
	default:
		return fmt.Errorf("%w: sample-ctrl expects on or off, got %q", domain.ErrInvalidArgs, args[1])
	}

	if s.Status == prev {
		fmt.Fprintf(s.out, "Sample status does not change: '%s'\n", s.Status)
	} else {
		fmt.Fprintf(s.out, "Sample status changed to '%s'\n", s.Status)
	}
	return nil
}
