package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdges_ReachEveryKind(t *testing.T) {
	reached := map[Kind]bool{AskName: true}
	for _, e := range Edges() {
		assert.NotEqual(t, Done, e.From, "done has no outgoing edges")
		reached[e.To] = true
		if e.Correction {
			assert.True(t, e.From.BrandScoped(), "correction from %s", e.From)
		}
	}
	for _, k := range Kinds() {
		assert.True(t, reached[k], "%s is unreachable", k)
	}
}
