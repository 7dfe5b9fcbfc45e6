package runner

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextConversation_Ask(t *testing.T) {
	out := &bytes.Buffer{}
	conv := NewTextConversation(strings.NewReader("  Ann  \nAcme"), out)

	name, err := conv.Ask(context.Background(), "Hello, what's your name? ")
	require.NoError(t, err)
	assert.Equal(t, "Ann", name)

	company, err := conv.Ask(context.Background(), "Company? ")
	require.NoError(t, err)
	assert.Equal(t, "Acme", company)

	_, err = conv.Ask(context.Background(), "More? ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "Hello, what's your name? Company? More? ", out.String())
}

func TestTextConversation_AskRetriesOversizedAnswer(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "8")
	out := &bytes.Buffer{}
	conv := NewTextConversation(strings.NewReader("far too long answer\nvolvo\n"), out)

	got, err := conv.Ask(context.Background(), "Brand? ")
	require.NoError(t, err)
	assert.Equal(t, "volvo", got)
	assert.Contains(t, out.String(), "Please try again.")
	assert.Equal(t, 2, strings.Count(out.String(), "Brand? "))
}

func TestTextConversation_AskCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	conv := NewTextConversation(r, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := conv.Ask(ctx, "Waiting? ")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTextConversation_CloseStopsReader(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	conv := NewTextConversation(r, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := conv.Ask(ctx, "Waiting? ")
	require.ErrorIs(t, err, context.Canceled)

	// An answer arriving after the interview gave up has no reader.
	_, err = w.Write([]byte("late answer\n"))
	require.NoError(t, err)
	require.NoError(t, conv.Close())
	require.NoError(t, conv.Close())

	select {
	case _, ok := <-conv.lines:
		assert.False(t, ok, "reader should stop instead of delivering the late answer")
	case <-time.After(time.Second):
		t.Fatal("background reader still blocked after Close")
	}
}

func TestTextConversation_Tell(t *testing.T) {
	out := &bytes.Buffer{}
	conv := NewTextConversation(strings.NewReader(""), out, WithRenderer(func(s string) (string, error) {
		return "Rendered: " + s + "\n\n", nil
	}))

	require.NoError(t, conv.Tell(context.Background(), "Bye!"))
	assert.Equal(t, "Rendered: Bye!\n", out.String())
}
