package runner

import (
	"context"
	"io"
	"testing"

	"github.com/aretw0/fleetintake/pkg/adapters/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	inner := memory.NewConversation("Ann")
	log := &memory.Transcript{}
	conv := Record(inner, log)
	ctx := context.Background()

	got, err := conv.Ask(ctx, "Hello, what's your name? ")
	require.NoError(t, err)
	assert.Equal(t, "Ann", got)
	require.NoError(t, conv.Tell(ctx, "Nice to meet you."))

	_, err = conv.Ask(ctx, "Anything else? ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, []string{
		"BOT: Hello, what's your name?",
		"USER: Ann",
		"BOT: Nice to meet you.",
		"BOT: Anything else?",
	}, log.Lines)
	assert.Equal(t, []string{"Nice to meet you."}, inner.Messages)
	assert.False(t, log.Closed)
}

func TestRecorder_ClosedTranscript(t *testing.T) {
	log := &memory.Transcript{}
	require.NoError(t, log.Close())

	_, err := Record(memory.NewConversation("Ann"), log).Ask(context.Background(), "Name? ")
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}
