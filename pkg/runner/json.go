package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
)

// Event types written by JSONConversation.
const (
	EventAsk   = "ask"
	EventTell  = "tell"
	EventError = "error"
)

// Event is one line of headless output.
type Event struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// JSONConversation implements ports.Conversation for headless use. Prompts
// and messages are written as JSON lines; answers are read one per line,
// either as JSON strings or as raw text.
type JSONConversation struct {
	Reader  *bufio.Reader
	Encoder *json.Encoder
}

// NewJSONConversation creates a headless conversation. Nil arguments default
// to the process stdin and stdout.
func NewJSONConversation(r io.Reader, w io.Writer) *JSONConversation {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONConversation{
		Reader:  bufio.NewReader(r),
		Encoder: json.NewEncoder(w),
	}
}

func (c *JSONConversation) Ask(ctx context.Context, prompt string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := c.Encoder.Encode(Event{Type: EventAsk, Text: strings.TrimSpace(prompt)}); err != nil {
			return "", err
		}

		text, err := c.Reader.ReadString('\n')
		if err != nil && (text == "" || err != io.EOF) {
			return "", err
		}
		text = strings.TrimSpace(text)

		var val string
		if err := json.Unmarshal([]byte(text), &val); err == nil {
			text = val
		}

		clean, err := SanitizeInput(text)
		if err != nil {
			if encErr := c.Encoder.Encode(Event{Type: EventError, Text: err.Error()}); encErr != nil {
				return "", encErr
			}
			continue
		}
		return clean, nil
	}
}

func (c *JSONConversation) Tell(ctx context.Context, msg string) error {
	return c.Encoder.Encode(Event{Type: EventTell, Text: msg})
}
