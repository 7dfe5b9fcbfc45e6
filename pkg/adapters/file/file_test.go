package file_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/fleetintake/pkg/adapters/file"
	"github.com/aretw0/fleetintake/pkg/domain"
	"github.com/aretw0/fleetintake/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Contract(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "nested", "data.jsonl"))
	ports.RunRecordStoreContract(t, store)
}

func TestStore_OneLinePerRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.jsonl")
	store := file.New(path)

	r := domain.NewFleetRecord()
	require.NoError(t, r.SetName("Ada"))
	require.NoError(t, r.SetCompany("Haulage Ltd"))
	require.NoError(t, store.Append(context.Background(), r))
	require.NoError(t, store.Append(context.Background(), r))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"name":"Ada","company":"Haulage Ltd","total_trucks":0,"trucks":[]}`, lines[0])
}

func TestStore_CorruptLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{not json}\n"), 0644))

	_, err := file.New(path).Records(context.Background())
	assert.ErrorContains(t, err, "line 1")
}

func TestBrandList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brands.txt")
	require.NoError(t, os.WriteFile(path, []byte("Volvo\r\nScania\n\n  MAN  \nMercedes Benz"), 0644))

	brands, err := file.NewBrandList(path).LoadBrands(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Volvo", "Scania", "MAN", "Mercedes Benz"}, brands)
}

func TestBrandList_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := file.NewBrandList(filepath.Join(dir, "missing.txt")).LoadBrands(context.Background())
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("\n\n"), 0644))
	_, err = file.NewBrandList(empty).LoadBrands(context.Background())
	assert.ErrorContains(t, err, "empty")
}

func TestTranscript_NamingAndSuffix(t *testing.T) {
	dir := t.TempDir()
	start := time.Date(2026, 10, 19, 9, 30, 5, 0, time.UTC)

	first, err := file.OpenTranscript(dir, start)
	require.NoError(t, err)
	second, err := file.OpenTranscript(dir, start)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "2026-10-19_09-30-05.log"), first.Path())
	assert.Equal(t, filepath.Join(dir, "2026-10-19_09-30-05_1.log"), second.Path())

	require.NoError(t, first.Append("BOT: Hello, what's your name? "))
	require.NoError(t, first.Append("USER: Ada"))
	require.NoError(t, first.Close())
	require.NoError(t, first.Close(), "second close is a no-op")
	require.NoError(t, second.Close())

	assert.ErrorIs(t, first.Append("late"), os.ErrClosed)

	data, err := os.ReadFile(first.Path())
	require.NoError(t, err)
	assert.Equal(t, "BOT: Hello, what's your name? \nUSER: Ada\n", string(data))
}
