package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	`  ___ _           _     ___     _        _       `,
	` | __| |___ ___ _| |_  |_ _|_ _| |_ __ _| |_____ `,
	` | _|| / -_) -_)_   _|  | || ' \  _/ _' | / / -_)`,
	` |_| |_\___\___| |_|   |___|_||_\__\__,_|_\_\___|`,
}

var bannerColors = []string{"#34d399", "#2dd4bf", "#22d3ee", "#38bdf8"}

// PrintBanner writes the program banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line).Foreground(p.Color(bannerColors[i%len(bannerColors)])))
	}
	fmt.Fprintln(w, termenv.String("  fleet intake interview "+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}
