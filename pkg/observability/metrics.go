package observability

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/splitcalc/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the calculator collectors and the registry they live in.
type Metrics struct {
	Registry *prometheus.Registry

	Recomputes      *prometheus.CounterVec
	Resets          prometheus.Counter
	AmountPerPerson prometheus.Histogram
	PartySize       prometheus.Gauge
}

// NewMetrics creates and registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Recomputes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splitcalc_recomputes_total",
				Help: "Total number of results derived by the engine",
			},
			[]string{"tip_kind"},
		),
		Resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "splitcalc_resets_total",
			Help: "Total number of reset signals forwarded by the engine",
		}),
		AmountPerPerson: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "splitcalc_amount_per_person",
			Help:    "Distribution of computed per-person shares",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		PartySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "splitcalc_party_size",
			Help: "Party size used by the latest recompute",
		}),
	}
	m.Registry.MustRegister(m.Recomputes, m.Resets, m.AmountPerPerson, m.PartySize)
	return m
}

// Hooks returns lifecycle hooks feeding the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnResult: func(ctx context.Context, e *domain.ResultEvent) {
			m.Recomputes.WithLabelValues(e.Tip.Kind().String()).Inc()
			m.AmountPerPerson.Observe(e.Result.AmountPerPerson)
			m.PartySize.Set(float64(e.Split))
		},
		OnReset: func(ctx context.Context, e *domain.ResetEvent) {
			m.Resets.Inc()
		},
	}
}

// WriteText dumps the registry in the Prometheus text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.Registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
