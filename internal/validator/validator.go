package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/fleetintake/pkg/interview"
)

// ValidateGraph checks that every state kind is reachable from start, that
// Done can be reached from every kind, and that Done has no way out.
func ValidateGraph(edges []interview.Edge, start interview.Kind) error {
	forward := make(map[interview.Kind][]interview.Kind)
	backward := make(map[interview.Kind][]interview.Kind)
	var errors []string

	for _, e := range edges {
		if e.From == interview.Done {
			errors = append(errors, fmt.Sprintf("Transition out of the final state: '%s' -> '%s'", e.From, e.To))
		}
		forward[e.From] = append(forward[e.From], e.To)
		backward[e.To] = append(backward[e.To], e.From)
	}

	reached := crawl(start, forward)
	finishing := crawl(interview.Done, backward)

	for _, k := range interview.Kinds() {
		if !reached[k] {
			errors = append(errors, fmt.Sprintf("Unreachable state: '%s'", k))
		}
		if !finishing[k] {
			errors = append(errors, fmt.Sprintf("State cannot finish the interview: '%s'", k))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}

	return nil
}

func crawl(from interview.Kind, links map[interview.Kind][]interview.Kind) map[interview.Kind]bool {
	visited := make(map[interview.Kind]bool)
	queue := []interview.Kind{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, next := range links[current] {
			if !visited[next] {
				queue = append(queue, next)
			}
		}
	}
	return visited
}
