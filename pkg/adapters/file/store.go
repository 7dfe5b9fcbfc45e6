package file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/fleetintake/pkg/domain"
)

// DefaultDataFile is where records go when no path is configured.
const DefaultDataFile = "data.jsonl"

// Store implements ports.RecordStore as a JSON Lines file.
// Each record is appended as one line and synced before Append returns.
type Store struct {
	Path string
}

// New creates a new Store writing to path.
// If path is empty, it defaults to "data.jsonl".
func New(path string) *Store {
	if path == "" {
		path = DefaultDataFile
	}
	return &Store{Path: path}
}

// Append writes the record as a single JSON line.
func (s *Store) Append(ctx context.Context, record *domain.FleetRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to ensure data directory: %w", err)
		}
	}

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}

	// Fsync to ensure durability
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to fsync data file: %w", err)
	}
	return f.Close()
}

// Records reads every record back in file order. A missing file holds no records.
func (s *Store) Records(ctx context.Context) ([]domain.RecordDTO, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.RecordDTO{}, nil
		}
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	records := []domain.RecordDTO{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var rec domain.RecordDTO
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("failed to parse record on line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	return records, nil
}
