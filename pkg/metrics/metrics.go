package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PlannerMetrics records itinerary pipeline outcomes.
type PlannerMetrics struct {
	plans      *prometheus.CounterVec
	items      *prometheus.CounterVec
	generation prometheus.Histogram
}

// NewPlannerMetrics registers the planner collectors on reg, or on the default
// registerer when reg is nil. Already registered collectors are reused.
func NewPlannerMetrics(reg prometheus.Registerer) (*PlannerMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	plans := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "itinera_plans_total",
		Help: "Itinerary requests by outcome",
	}, []string{"outcome"})
	items := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "itinera_schedule_items_total",
		Help: "Candidates handled by the scheduler by result",
	}, []string{"result"})
	generation := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "itinera_generation_seconds",
		Help:    "Latency of the text generation call",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	})

	var err error
	if plans, err = register(reg, plans); err != nil {
		return nil, err
	}
	if items, err = register(reg, items); err != nil {
		return nil, err
	}
	if generation, err = register(reg, generation); err != nil {
		return nil, err
	}
	return &PlannerMetrics{plans: plans, items: items, generation: generation}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// PlanGenerated counts a successful plan.
func (m *PlannerMetrics) PlanGenerated() {
	m.plans.WithLabelValues("ok").Inc()
}

// PlanFailed counts a failed plan under the given reason.
func (m *PlannerMetrics) PlanFailed(reason string) {
	m.plans.WithLabelValues(reason).Inc()
}

// ScheduleOutcome counts placed, dropped and skipped candidates.
func (m *PlannerMetrics) ScheduleOutcome(placed, dropped, skipped int) {
	m.items.WithLabelValues("placed").Add(float64(placed))
	m.items.WithLabelValues("dropped").Add(float64(dropped))
	m.items.WithLabelValues("skipped").Add(float64(skipped))
}

// ObserveGeneration records the duration of one generation call.
func (m *PlannerMetrics) ObserveGeneration(d time.Duration) {
	m.generation.Observe(d.Seconds())
}
