package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// transcriptLayout names transcripts after the interview start time.
const transcriptLayout = "2006-01-02_15-04-05"

// Transcript implements ports.Transcript as a log file that is opened for the
// whole interview. Lines are written through immediately.
type Transcript struct {
	f    *os.File
	path string
}

// OpenTranscript creates a new transcript in dir named after start. If the
// name is taken, a numeric suffix is added instead of overwriting.
func OpenTranscript(dir string, start time.Time) (*Transcript, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to ensure transcript directory: %w", err)
	}

	base := start.Format(transcriptLayout)
	for suffix := 0; ; suffix++ {
		name := base + ".log"
		if suffix > 0 {
			name = base + "_" + strconv.Itoa(suffix) + ".log"
		}
		f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create transcript: %w", err)
		}
		return &Transcript{f: f, path: f.Name()}, nil
	}
}

// Path returns the transcript file name.
func (t *Transcript) Path() string {
	return t.path
}

// Append writes one line.
func (t *Transcript) Append(line string) error {
	if t.f == nil {
		return os.ErrClosed
	}
	if _, err := t.f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}

// Close flushes and closes the file. It is safe to call more than once.
func (t *Transcript) Close() error {
	if t.f == nil {
		return nil
	}
	err := t.f.Sync()
	if cerr := t.f.Close(); err == nil {
		err = cerr
	}
	t.f = nil
	return err
}
