package runner

import (
	"context"
	"strings"

	"github.com/aretw0/fleetintake/pkg/ports"
)

// Transcript line prefixes.
const (
	BotPrefix  = "BOT: "
	UserPrefix = "USER: "
)

// Recorder mirrors every prompt, answer and message of a Conversation into
// a Transcript. The transcript is not closed by the Recorder.
type Recorder struct {
	conv ports.Conversation
	log  ports.Transcript
}

// Record wraps conv so that the dialogue is also appended to log.
func Record(conv ports.Conversation, log ports.Transcript) *Recorder {
	return &Recorder{conv: conv, log: log}
}

func (r *Recorder) Ask(ctx context.Context, prompt string) (string, error) {
	if err := r.log.Append(BotPrefix + strings.TrimSpace(prompt)); err != nil {
		return "", err
	}
	answer, err := r.conv.Ask(ctx, prompt)
	if err != nil {
		return "", err
	}
	if err := r.log.Append(UserPrefix + answer); err != nil {
		return "", err
	}
	return answer, nil
}

func (r *Recorder) Tell(ctx context.Context, msg string) error {
	if err := r.conv.Tell(ctx, msg); err != nil {
		return err
	}
	return r.log.Append(BotPrefix + msg)
}
