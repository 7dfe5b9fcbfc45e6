package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/fleetintake"
	"github.com/aretw0/fleetintake/internal/config"
	"github.com/aretw0/fleetintake/internal/logging"
	"github.com/aretw0/fleetintake/internal/metrics"
	"github.com/aretw0/fleetintake/internal/presentation/tui"
	"github.com/aretw0/fleetintake/pkg/adapters/file"
	"github.com/aretw0/fleetintake/pkg/domain"
	"github.com/aretw0/fleetintake/pkg/observability"
	"github.com/aretw0/fleetintake/pkg/ports"
	"github.com/aretw0/fleetintake/pkg/runner"
)

// SessionOptions holds the per-invocation settings that do not come from
// the config file.
type SessionOptions struct {
	Debug       bool
	Headless    bool
	Interactive bool
	Version     string
	In          io.Reader
	Out         io.Writer

	// Logger overrides the logger derived from Debug.
	Logger *slog.Logger
	// Now defaults to time.Now and names the transcript.
	Now func() time.Time
}

// RunSession runs one interview end to end and persists the finished
// record to the configured store.
func RunSession(ctx context.Context, cfg config.Config, opts SessionOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.ForDebug(opts.Debug)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	hooks := observability.LogHooks(logger)
	var m *metrics.Metrics
	if cfg.MetricsAddr != "" {
		m = metrics.New()
		hooks = observability.Combine(hooks, m.Hooks())
		defer serveMetrics(ctx, m, cfg.MetricsAddr, logger)()
	}

	engine, err := fleetintake.New(ctx, file.NewBrandList(cfg.BrandsFile),
		fleetintake.WithMatchThreshold(cfg.MatchThreshold),
		fleetintake.WithLogger(logger),
		fleetintake.WithHooks(hooks),
	)
	if err != nil {
		return err
	}
	logger.Debug("vocabulary loaded", "brands", len(engine.Brands()), "file", cfg.BrandsFile)

	transcript, err := file.OpenTranscript(cfg.LogDir, now())
	if err != nil {
		return err
	}
	defer transcript.Close()

	conv, err := newConversation(opts)
	if err != nil {
		return err
	}
	if closer, ok := conv.(io.Closer); ok {
		defer closer.Close()
	}

	record, err := engine.Interview(ctx, conv, transcript)
	if err != nil {
		if m != nil {
			m.Aborted()
		}
		return handleInterviewError(ctx, err, logger)
	}

	return save(ctx, record, store, transcript, conv, opts)
}

// serveMetrics starts the metrics endpoint and returns a function that stops
// it and waits for the server to shut down.
func serveMetrics(ctx context.Context, m *metrics.Metrics, addr string, logger *slog.Logger) func() {
	serveCtx, stop := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := m.Serve(serveCtx, addr, logger); err != nil {
			logger.Error("metrics server stopped", "err", err)
		}
	}()
	return func() {
		stop()
		<-done
	}
}

func newConversation(opts SessionOptions) (ports.Conversation, error) {
	if opts.Headless {
		return runner.NewJSONConversation(opts.In, opts.Out), nil
	}

	var textOpts []runner.TextOption
	if opts.Interactive {
		tui.PrintBanner(opts.Out, opts.Version)
		render, err := tui.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to create renderer: %w", err)
		}
		textOpts = append(textOpts, runner.WithRenderer(render))
	}
	return runner.NewTextConversation(opts.In, opts.Out, textOpts...), nil
}

func save(ctx context.Context, record *domain.FleetRecord, store *Store, transcript *file.Transcript, conv ports.Conversation, opts SessionOptions) error {
	if err := announce(opts, transcript, "Saving data to %s", store.Location); err != nil {
		return err
	}
	if err := store.Append(ctx, record); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	if opts.Interactive && !opts.Headless {
		if err := conv.Tell(ctx, tui.Summary(record.DTO())); err != nil {
			return err
		}
	}

	if err := announce(opts, transcript, "Saved chat log to %s", transcript.Path()); err != nil {
		return err
	}
	if err := transcript.Close(); err != nil {
		return fmt.Errorf("failed to close transcript: %w", err)
	}
	return nil
}

// announce shows a system message outside headless mode and logs it to the
// transcript as bot output.
func announce(opts SessionOptions, transcript ports.Transcript, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if !opts.Headless {
		printSystemMessage(opts.Out, "%s", msg)
	}
	return transcript.Append(runner.BotPrefix + msg)
}
