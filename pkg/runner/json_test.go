package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEvents(t *testing.T, out *bytes.Buffer) []Event {
	t.Helper()
	var events []Event
	dec := json.NewDecoder(out)
	for {
		var e Event
		err := dec.Decode(&e)
		if err == io.EOF {
			return events
		}
		require.NoError(t, err)
		events = append(events, e)
	}
}

func TestJSONConversation(t *testing.T) {
	out := &bytes.Buffer{}
	conv := NewJSONConversation(strings.NewReader("\"Mercedes Benz\"\nplain text"), out)
	ctx := context.Background()

	got, err := conv.Ask(ctx, "What brands are they? ")
	require.NoError(t, err)
	assert.Equal(t, "Mercedes Benz", got)

	require.NoError(t, conv.Tell(ctx, "Noted."))

	got, err = conv.Ask(ctx, "Anything else? ")
	require.NoError(t, err)
	assert.Equal(t, "plain text", got)

	_, err = conv.Ask(ctx, "Done? ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, []Event{
		{Type: EventAsk, Text: "What brands are they?"},
		{Type: EventTell, Text: "Noted."},
		{Type: EventAsk, Text: "Anything else?"},
		{Type: EventAsk, Text: "Done?"},
	}, decodeEvents(t, out))
}

func TestJSONConversation_InvalidAnswerIsReported(t *testing.T) {
	out := &bytes.Buffer{}
	conv := NewJSONConversation(strings.NewReader("\xff\xfe\n\"ok\"\n"), out)

	got, err := conv.Ask(context.Background(), "Name? ")
	require.NoError(t, err)
	assert.Equal(t, "ok", got)

	events := decodeEvents(t, out)
	require.Len(t, events, 3)
	assert.Equal(t, EventError, events[1].Type)
}
