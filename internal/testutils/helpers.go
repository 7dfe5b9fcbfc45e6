package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/fleetintake/internal/config"
	"github.com/stretchr/testify/require"
)

// DefaultBrands is a small vocabulary covering single and multi-word names.
var DefaultBrands = []string{"Volvo", "Scania", "Mercedes Benz", "MAN", "DAF"}

// WriteBrands writes a brands file into dir and returns its path.
func WriteBrands(t *testing.T, dir string, brands ...string) string {
	t.Helper()
	if len(brands) == 0 {
		brands = DefaultBrands
	}
	path := filepath.Join(dir, "brands.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(brands, "\n")+"\n"), 0644))
	return path
}

// SetupWorkspace creates a temporary directory with a brands file and
// returns a file-store config rooted there.
func SetupWorkspace(t *testing.T) config.Config {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.BrandsFile = WriteBrands(t, dir)
	cfg.DataFile = filepath.Join(dir, "data.jsonl")
	cfg.LogDir = filepath.Join(dir, "logs")
	require.NoError(t, cfg.Validate())
	return cfg
}

// Lines joins answers into newline-terminated input.
func Lines(answers ...string) string {
	return strings.Join(answers, "\n") + "\n"
}
