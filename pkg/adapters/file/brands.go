package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// DefaultBrandsFile is the vocabulary used when no path is configured.
const DefaultBrandsFile = "brands.txt"

// BrandList implements ports.BrandSource from a text file with one brand per line.
type BrandList struct {
	Path string
}

// NewBrandList creates a BrandList reading path, or "brands.txt" if empty.
func NewBrandList(path string) *BrandList {
	if path == "" {
		path = DefaultBrandsFile
	}
	return &BrandList{Path: path}
}

// LoadBrands returns the brands in file order. Blank lines are skipped.
func (b *BrandList) LoadBrands(ctx context.Context) ([]string, error) {
	f, err := os.Open(b.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open brands file: %w", err)
	}
	defer f.Close()

	var brands []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			brands = append(brands, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read brands file: %w", err)
	}
	if len(brands) == 0 {
		return nil, fmt.Errorf("brands file %s is empty", b.Path)
	}
	return brands, nil
}
