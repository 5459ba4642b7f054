package input

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/cmdline/pkg/domain"
	"github.com/aretw0/cmdline/pkg/ports"
)

// Sync reads each line with a single blocking call.
type Sync struct {
	editor ports.LineEditor
	cfg    config
}

// NewSync creates the blocking strategy.
func NewSync(editor ports.LineEditor, opts ...Option) *Sync {
	return &Sync{
		editor: editor,
		cfg:    newConfig(opts),
	}
}

// Next blocks until the editor returns a line. The context is checked
// before reading only; the editor call itself is not interruptible.
func (s *Sync) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := s.editor.ReadLine(s.cfg.prompt)
	if err != nil {
		if errors.Is(err, io.EOF) {
			s.cfg.logger.Debug("End of input")
			return "", domain.ErrProcessCompleted
		}
		return "", fmt.Errorf("%w: read line: %v", domain.ErrExternalLib, err)
	}

	s.cfg.metrics.ObserveLine()
	return line, nil
}
