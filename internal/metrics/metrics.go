// Package metrics exposes interview counters to Prometheus.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/fleetintake/pkg/domain"
	"github.com/aretw0/fleetintake/pkg/interview"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Interview outcomes.
const (
	OutcomeCompleted = "completed"
	OutcomeNoTrucks  = "no_trucks"
	OutcomeAborted   = "aborted"
)

// Metrics holds the counters of one process on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	stateVisits *prometheus.CounterVec
	reprompts   *prometheus.CounterVec
	corrections *prometheus.CounterVec
	interviews  *prometheus.CounterVec
	trucks      prometheus.Counter
}

// New creates and registers the counters.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		stateVisits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fleetintake_state_visits_total",
			Help: "Total number of interview states entered",
		}, []string{"state"}),
		reprompts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fleetintake_reprompts_total",
			Help: "Total number of rejected answers",
		}, []string{"state", "reason"}),
		corrections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fleetintake_corrections_total",
			Help: "Total number of start over and correct commands",
		}, []string{"command"}),
		interviews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fleetintake_interviews_total",
			Help: "Total number of finished interviews by outcome",
		}, []string{"outcome"}),
		trucks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleetintake_trucks_recorded_total",
			Help: "Total number of trucks in completed interviews",
		}),
	}
	m.Registry.MustRegister(m.stateVisits, m.reprompts, m.corrections, m.interviews, m.trucks)
	return m
}

// Hooks returns interview callbacks that update the counters.
func (m *Metrics) Hooks() interview.Hooks {
	return interview.Hooks{
		OnStateEnter: func(_ context.Context, e *interview.StateEvent) {
			m.stateVisits.WithLabelValues(e.State.Kind.String()).Inc()
		},
		OnReprompt: func(_ context.Context, e *interview.StateEvent) {
			m.reprompts.WithLabelValues(e.State.Kind.String(), Reason(e.Err)).Inc()
		},
		OnCorrection: func(_ context.Context, e *interview.CorrectionEvent) {
			m.corrections.WithLabelValues(e.Command).Inc()
		},
		OnDone: func(_ context.Context, r *domain.FleetRecord) {
			if r.TotalTrucks == 0 {
				m.interviews.WithLabelValues(OutcomeNoTrucks).Inc()
				return
			}
			m.interviews.WithLabelValues(OutcomeCompleted).Inc()
			m.trucks.Add(float64(r.TotalTrucks))
		},
	}
}

// Aborted counts an interview that ended without reaching Done.
func (m *Metrics) Aborted() {
	m.interviews.WithLabelValues(OutcomeAborted).Inc()
}

var reasons = []struct {
	err   error
	label string
}{
	{domain.ErrNotANumber, "not_a_number"},
	{domain.ErrEmptyInput, "empty"},
	{domain.ErrOutOfRange, "out_of_range"},
	{domain.ErrNoBrandRecognized, "no_brand"},
	{domain.ErrTooManyBrandsForTruckCount, "too_many_brands"},
	{domain.ErrInconsistentTotals, "inconsistent_totals"},
	{domain.ErrDuplicateModelName, "duplicate_model"},
	{domain.ErrUnrecognizedAnswer, "unrecognized"},
}

// Reason maps a rejection to a bounded label value.
func Reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.label
		}
	}
	return "other"
}

// Handler serves /metrics and /healthz.
func (m *Metrics) Handler() http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})
	return r
}

// Serve runs the metrics endpoint on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           m.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("metrics server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}
