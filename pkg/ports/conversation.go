package ports

import "context"

// Conversation is the prompt/answer boundary of an interview.
type Conversation interface {
	// Ask displays prompt and returns one line of raw input.
	// io.EOF means the input source is exhausted.
	Ask(ctx context.Context, prompt string) (string, error)

	// Tell displays one message.
	Tell(ctx context.Context, msg string) error
}

// Transcript records every line exchanged during one interview.
type Transcript interface {
	Append(line string) error
	Close() error
}
