package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/fleetintake/pkg/domain"
)

// Summary formats a finished record as Markdown.
func Summary(r domain.RecordDTO) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Fleet of %s\n\n", r.Company)
	fmt.Fprintf(&sb, "Interviewed **%s**, %d truck(s) in total.\n", r.Name, r.TotalTrucks)
	if len(r.Trucks) == 0 {
		return sb.String()
	}

	sb.WriteString("\n| Brand | Model | Engine (l) | Axles | Weight (t) | Max load (t) | Trucks |\n")
	sb.WriteString("|---|---|---:|---:|---:|---:|---:|\n")
	for _, t := range r.Trucks {
		fmt.Fprintf(&sb, "| %s | %s | %s | %d | %s | %s | %d |\n",
			cell(t.Brand), cell(t.Model), number(t.EngineSize), t.AxleNumber, number(t.Weight), number(t.MaxLoad), t.NTrucks)
	}
	return sb.String()
}

func number(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
