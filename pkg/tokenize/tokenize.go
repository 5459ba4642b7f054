// Package tokenize splits an input line into the words handed to a command.
package tokenize

import (
	"fmt"
	"strings"

	"github.com/aretw0/cmdline/pkg/domain"
)

// Separator is the only byte that splits words. Runs of separators never
// produce empty tokens.
const Separator = ' '

// Tokenize splits line into at most maxTokens words.
// Lines of domain.MaxCommandLen bytes or more are rejected rather than
// truncated, and so are lines with more than maxTokens words.
func Tokenize(line string, maxTokens int) ([]string, error) {
	if len(line) > domain.MaxCommandLen-1 {
		return nil, fmt.Errorf("%w: line size=%d limit=%d", domain.ErrExceedCapacity, len(line), domain.MaxCommandLen-1)
	}

	tokens := make([]string, 0, maxTokens)
	rest := line
	for {
		rest = strings.TrimLeft(rest, string(Separator))
		if rest == "" {
			return tokens, nil
		}
		if len(tokens) == maxTokens {
			return nil, fmt.Errorf("%w: more than %d words", domain.ErrExceedCapacity, maxTokens)
		}

		end := strings.IndexByte(rest, Separator)
		if end < 0 {
			end = len(rest)
		}
		tokens = append(tokens, rest[:end])
		rest = rest[end:]
	}
}
