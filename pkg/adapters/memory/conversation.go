package memory

import (
	"context"
	"io"
	"sync"
)

// Conversation implements ports.Conversation from a fixed list of answers.
// It records every prompt and message for inspection. When the answers run
// out, Ask returns io.EOF.
type Conversation struct {
	mu       sync.Mutex
	answers  []string
	Prompts  []string
	Messages []string
}

// NewConversation creates a Conversation that replies with answers in order.
func NewConversation(answers ...string) *Conversation {
	return &Conversation{answers: answers}
}

// Ask records the prompt and pops the next answer.
func (c *Conversation) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Prompts = append(c.Prompts, prompt)
	if len(c.answers) == 0 {
		return "", io.EOF
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}

// Tell records the message.
func (c *Conversation) Tell(ctx context.Context, msg string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Messages = append(c.Messages, msg)
	return nil
}

// Remaining returns how many answers have not been consumed.
func (c *Conversation) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.answers)
}

// Transcript implements ports.Transcript in memory.
type Transcript struct {
	mu     sync.Mutex
	Lines  []string
	Closed bool
}

// Append records the line, or fails once closed.
func (t *Transcript) Append(line string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Closed {
		return io.ErrClosedPipe
	}
	t.Lines = append(t.Lines, line)
	return nil
}

// Close marks the transcript closed.
func (t *Transcript) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Closed = true
	return nil
}
