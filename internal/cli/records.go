package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/fleetintake/internal/presentation/tui"
)

// PrintRecords writes every stored record, as JSON lines or as markdown
// summaries.
func PrintRecords(ctx context.Context, w io.Writer, store *Store, asJSON bool) error {
	records, err := store.Records(ctx)
	if err != nil {
		return fmt.Errorf("failed to list records from %s: %w", store.Location, err)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		for _, r := range records {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	}

	for i, r := range records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprint(w, tui.Summary(r))
	}
	return nil
}
