package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/fleetintake/pkg/interview"
)

// Overlay marks the states an interview went through.
type Overlay struct {
	Visited []interview.Kind
	Current interview.Kind
}

// GenerateMermaid produces a Mermaid flowchart of the interview.
// Shapes:
// - First question and Done: ((Circle))
// - Automatic step: [[Subroutine]]
// - Question: [/Parallelogram/]
// Correction commands are drawn as dotted edges. Overlay styles are applied
// when overlay is not nil.
func GenerateMermaid(edges []interview.Edge, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, k := range interview.Kinds() {
		opener, closer := "[/", "/]"
		switch {
		case k == interview.AskName || k == interview.Done:
			opener, closer = "((", "))"
		case k.Automatic():
			opener, closer = "[[", "]]"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", k, opener, label(k), closer)
	}

	for _, e := range edges {
		arrow := "-->"
		switch {
		case e.Correction:
			arrow = fmt.Sprintf("-. \"%s\" .->", escape(e.Label))
		case e.Label != "":
			arrow = fmt.Sprintf("-- \"%s\" -->", escape(e.Label))
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", e.From, arrow, e.To)
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[interview.Kind]bool)
		for _, k := range overlay.Visited {
			if !seen[k] {
				seen[k] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", k)
			}
		}
		fmt.Fprintf(&sb, "    class %s current;\n", overlay.Current)
	}

	return sb.String()
}

// label turns "ask_brand_count" into "brand count".
func label(k interview.Kind) string {
	return strings.ReplaceAll(strings.TrimPrefix(k.String(), "ask_"), "_", " ")
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, ">", "&gt;")
}
