package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/fleetintake/internal/config"
	"github.com/aretw0/fleetintake/internal/testutils"
	"github.com/aretw0/fleetintake/pkg/domain"
	"github.com/aretw0/fleetintake/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

// volvoFleet describes two identical Volvo FH16 trucks.
var volvoFleet = []string{"Ann", "Acme", "yes", "2", "volvo", "yes", "FH16", "13", "3", "20", "25"}

func run(t *testing.T, cfg config.Config, input string, opts SessionOptions) (string, error) {
	t.Helper()
	var out bytes.Buffer
	opts.In = strings.NewReader(input)
	opts.Out = &out
	opts.Now = func() time.Time { return start }
	err := RunSession(context.Background(), cfg, opts)
	return out.String(), err
}

func readRecords(t *testing.T, path string) []domain.RecordDTO {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out []domain.RecordDTO
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var r domain.RecordDTO
		require.NoError(t, json.Unmarshal([]byte(line), &r))
		out = append(out, r)
	}
	return out
}

func TestRunSession_FileStore(t *testing.T) {
	cfg := testutils.SetupWorkspace(t)

	out, err := run(t, cfg, testutils.Lines(volvoFleet...), SessionOptions{})
	require.NoError(t, err)

	records := readRecords(t, cfg.DataFile)
	require.Len(t, records, 1)
	assert.Equal(t, "Acme", records[0].Company)
	require.Len(t, records[0].Trucks, 1)
	assert.Equal(t, domain.TruckDTO{
		Brand: "Volvo", Model: "FH16", EngineSize: 13, AxleNumber: 3, Weight: 20, MaxLoad: 25, NTrucks: 2,
	}, records[0].Trucks[0])

	logPath := filepath.Join(cfg.LogDir, "2024-03-01_09-30-00.log")
	assert.Contains(t, out, ">>> Saving data to "+cfg.DataFile)
	assert.Contains(t, out, ">>> Saved chat log to "+logPath)

	log, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(log), runner.UserPrefix+"Ann\n")
	assert.Contains(t, string(log), runner.BotPrefix+"Saving data to "+cfg.DataFile+"\n")
	assert.True(t, strings.HasSuffix(string(log), runner.BotPrefix+"Saved chat log to "+logPath+"\n"))
}

func TestRunSession_HeadlessTranscriptKeepsSystemMessages(t *testing.T) {
	cfg := testutils.SetupWorkspace(t)

	var quoted []string
	for _, a := range volvoFleet {
		b, err := json.Marshal(a)
		require.NoError(t, err)
		quoted = append(quoted, string(b))
	}
	_, err := run(t, cfg, testutils.Lines(quoted...), SessionOptions{Headless: true})
	require.NoError(t, err)

	log, err := os.ReadFile(filepath.Join(cfg.LogDir, "2024-03-01_09-30-00.log"))
	require.NoError(t, err)
	assert.Contains(t, string(log), runner.BotPrefix+"Saving data to "+cfg.DataFile+"\n")
	assert.Contains(t, string(log), runner.BotPrefix+"Saved chat log to ")
}

func TestRunSession_MetricsServerReleasesPort(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	cfg := testutils.SetupWorkspace(t)
	cfg.MetricsAddr = addr

	_, err = run(t, cfg, testutils.Lines(volvoFleet...), SessionOptions{})
	require.NoError(t, err)

	// The server has shut down by the time the session returns.
	l, err = net.Listen("tcp", addr)
	require.NoError(t, err)
	assert.NoError(t, l.Close())
}

func TestRunSession_SecondRunGetsSuffixedTranscript(t *testing.T) {
	cfg := testutils.SetupWorkspace(t)

	for range 2 {
		_, err := run(t, cfg, testutils.Lines(volvoFleet...), SessionOptions{})
		require.NoError(t, err)
	}

	assert.FileExists(t, filepath.Join(cfg.LogDir, "2024-03-01_09-30-00.log"))
	assert.FileExists(t, filepath.Join(cfg.LogDir, "2024-03-01_09-30-00_1.log"))
	assert.Len(t, readRecords(t, cfg.DataFile), 2)
}

func TestRunSession_NoTrucks(t *testing.T) {
	cfg := testutils.SetupWorkspace(t)

	_, err := run(t, cfg, testutils.Lines("Ann", "Acme", "no"), SessionOptions{})
	require.NoError(t, err)

	records := readRecords(t, cfg.DataFile)
	require.Len(t, records, 1)
	assert.Equal(t, 0, records[0].TotalTrucks)
	assert.Empty(t, records[0].Trucks)
}

func TestRunSession_InputEndsEarly(t *testing.T) {
	cfg := testutils.SetupWorkspace(t)

	_, err := run(t, cfg, testutils.Lines("Ann", "Acme", "yes"), SessionOptions{})
	require.ErrorIs(t, err, ErrInterrupted)
	assert.NoFileExists(t, cfg.DataFile)

	// The transcript is still written and closed.
	log, err := os.ReadFile(filepath.Join(cfg.LogDir, "2024-03-01_09-30-00.log"))
	require.NoError(t, err)
	assert.Contains(t, string(log), runner.UserPrefix+"yes\n")
}

func TestRunSession_Headless(t *testing.T) {
	cfg := testutils.SetupWorkspace(t)

	var quoted []string
	for _, a := range volvoFleet {
		b, err := json.Marshal(a)
		require.NoError(t, err)
		quoted = append(quoted, string(b))
	}

	out, err := run(t, cfg, testutils.Lines(quoted...), SessionOptions{Headless: true})
	require.NoError(t, err)
	assert.NotContains(t, out, ">>>")

	dec := json.NewDecoder(strings.NewReader(out))
	var events []runner.Event
	for dec.More() {
		var e runner.Event
		require.NoError(t, dec.Decode(&e))
		events = append(events, e)
	}
	require.NotEmpty(t, events)
	assert.Equal(t, runner.EventAsk, events[0].Type)
	assert.Len(t, readRecords(t, cfg.DataFile), 1)
}

func TestRunSession_RedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testutils.SetupWorkspace(t)
	cfg.Store = config.StoreRedis
	cfg.Redis.Addr = mr.Addr()

	out, err := run(t, cfg, testutils.Lines(volvoFleet...), SessionOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, "redis://"+mr.Addr())

	items, err := mr.List(cfg.Redis.Key)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0], `"company":"Acme"`)
}

func TestRunSession_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := testutils.SetupWorkspace(t)
	cfg.Store = config.StoreRedis
	cfg.Redis.Addr = addr

	_, err := run(t, cfg, testutils.Lines(volvoFleet...), SessionOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis store")
	assert.NoDirExists(t, cfg.LogDir)
}

func TestRunSession_MissingBrands(t *testing.T) {
	cfg := testutils.SetupWorkspace(t)
	cfg.BrandsFile = filepath.Join(t.TempDir(), "missing.txt")

	_, err := run(t, cfg, "", SessionOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "brands file")
}
