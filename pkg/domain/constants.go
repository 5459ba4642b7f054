package domain

// Capacity limits shared by the registry, tokenizer and input strategies.
const (
	// MaxCommands is the number of descriptors a registry accepts.
	MaxCommands = 200

	// MaxCommandLen is the size of the tokenizer working buffer, terminator included.
	// A line is accepted only if it is at most MaxCommandLen-1 bytes long.
	MaxCommandLen = 1024

	// MaxTokens is the number of whitespace-delimited words accepted per line.
	MaxTokens = 20

	// EditBufferSize is the capacity requested for an asynchronous edit session.
	EditBufferSize = 1024

	// DefaultPrompt is printed before every line read.
	DefaultPrompt = "> "
)
