package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/fleetintake/pkg/matcher"
)

// PrintBrands lists the vocabulary in tie-break order.
func PrintBrands(w io.Writer, brands []string) {
	for i, b := range brands {
		fmt.Fprintf(w, "%3d  %s\n", i+1, b)
	}
}

// PrintMatch shows which brands the matcher finds in text, as the interview
// would when asking for the brands a company owns.
func PrintMatch(w io.Writer, brands []string, threshold int, text string) int {
	found := matcher.New(brands, matcher.WithThreshold(threshold)).Find(text)
	if len(found) == 0 {
		fmt.Fprintf(w, "No brand recognized in %q\n", text)
		return 0
	}
	for _, b := range found {
		fmt.Fprintln(w, b)
	}
	return len(found)
}
