package terminal

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/term"
)

const keyCodesQuit = "quit"

// PrintKeyCodes puts the terminal in raw mode and prints the code of every
// key pressed until "quit" is typed or ctx is done.
func (e *Editor) PrintKeyCodes(ctx context.Context) error {
	if !e.interactive {
		return ErrNotTerminal
	}

	oldState, err := term.MakeRaw(e.fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(e.fd, oldState)

	fmt.Fprint(e.out, "Key codes debugging mode.\r\nPress keys to see scan codes. Type 'quit' at any time to exit.\r\n")

	keys := make(chan byte)
	errc := make(chan error, 1)
	go func() {
		buf := make([]byte, 1)
		for {
			if _, err := e.in.Read(buf); err != nil {
				errc <- err
				return
			}
			select {
			case keys <- buf[0]:
			case <-ctx.Done():
				return
			}
		}
	}()

	var last strings.Builder
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errc:
			return fmt.Errorf("failed to read key: %w", err)
		case c := <-keys:
			fmt.Fprintf(e.out, "'%s' %02x (%d) (type quit to exit)\r\n", printable(c), c, c)
			if !trackQuit(&last, c) {
				continue
			}
			return nil
		}
	}
}

// trackQuit keeps the last typed characters and reports whether they spell quit.
func trackQuit(last *strings.Builder, c byte) bool {
	s := last.String() + string(c)
	if len(s) > len(keyCodesQuit) {
		s = s[len(s)-len(keyCodesQuit):]
	}
	last.Reset()
	last.WriteString(s)
	return s == keyCodesQuit
}

func printable(c byte) string {
	if c < 0x20 || c == 0x7f {
		return "?"
	}
	return string(c)
}
