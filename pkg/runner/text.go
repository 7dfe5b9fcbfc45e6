package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// ContentRenderer turns a message into its display form (e.g. styled Markdown).
type ContentRenderer func(string) (string, error)

// TextConversation implements ports.Conversation over a line-oriented
// terminal or pipe.
type TextConversation struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer

	lines     chan inputResult
	done      chan struct{}
	startOnce sync.Once
	closeOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextOption configures a TextConversation.
type TextOption func(*TextConversation)

// WithRenderer renders every message before it is printed.
func WithRenderer(renderer ContentRenderer) TextOption {
	return func(c *TextConversation) {
		c.Renderer = renderer
	}
}

// NewTextConversation reads answers from r and writes prompts to w.
// Nil arguments default to the process stdin and stdout.
func NewTextConversation(r io.Reader, w io.Writer, opts ...TextOption) *TextConversation {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	c := &TextConversation{
		Reader: bufio.NewReader(r),
		Writer: w,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *TextConversation) initPump() {
	c.startOnce.Do(func() {
		c.lines = make(chan inputResult)
		go c.pump()
	})
}

// pump reads lines in the background so Ask can give up on cancellation
// while a read is pending. It stops once Close is called.
func (c *TextConversation) pump() {
	defer close(c.lines)
	for {
		text, err := c.Reader.ReadString('\n')
		if text != "" && !c.send(inputResult{text: text}) {
			return
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				c.send(inputResult{err: err})
			}
			return
		}
	}
}

func (c *TextConversation) send(res inputResult) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.lines <- res:
		return true
	case <-c.done:
		return false
	}
}

// Close stops the background reader. A read already blocked on the
// underlying reader returns when that reader does.
func (c *TextConversation) Close() error {
	c.closeOnce.Do(func() {
		if c.done != nil {
			close(c.done)
		}
	})
	return nil
}

// Ask prints the prompt and returns the next sanitized answer. Answers that
// fail sanitization are reported and asked again.
func (c *TextConversation) Ask(ctx context.Context, prompt string) (string, error) {
	c.initPump()

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprint(c.Writer, prompt)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-c.lines:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			clean, err := SanitizeInput(strings.TrimSpace(res.text))
			if err != nil {
				fmt.Fprintf(c.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

// Tell prints msg on its own line.
func (c *TextConversation) Tell(ctx context.Context, msg string) error {
	output := msg
	if c.Renderer != nil {
		if rendered, err := c.Renderer(msg); err == nil {
			output = rendered
		}
	}
	_, err := fmt.Fprintln(c.Writer, strings.TrimSpace(output))
	return err
}
