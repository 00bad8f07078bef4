package metric

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for RequestsTotal.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Registry holds the client's dispatch metrics.
type Registry struct {
	reg *prometheus.Registry

	// RequestsTotal counts dispatched requests by operation and outcome.
	RequestsTotal *prometheus.CounterVec
}

// NewRegistry creates a metrics registry with all collectors registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sigmesh",
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Dispatched management requests by operation and outcome.",
	}, []string{"operation", "outcome"})

	reg.MustRegister(requests)

	return &Registry{
		reg:           reg,
		RequestsTotal: requests,
	}
}

// Record counts one dispatched request.
func (r *Registry) Record(operation, outcome string) {
	r.RequestsTotal.WithLabelValues(operation, outcome).Inc()
}

// Stat is one gathered counter sample.
type Stat struct {
	Operation string  `json:"operation"`
	Outcome   string  `json:"outcome"`
	Count     float64 `json:"count"`
}

// Snapshot gathers the current request counters, sorted by operation
// then outcome for stable output.
func (r *Registry) Snapshot() ([]Stat, error) {
	families, err := r.reg.Gather()
	if err != nil {
		return nil, err
	}

	var stats []Stat
	for _, fam := range families {
		if fam.GetName() != "sigmesh_client_requests_total" {
			continue
		}
		for _, m := range fam.GetMetric() {
			s := Stat{Count: m.GetCounter().GetValue()}
			for _, label := range m.GetLabel() {
				switch label.GetName() {
				case "operation":
					s.Operation = label.GetValue()
				case "outcome":
					s.Outcome = label.GetValue()
				}
			}
			stats = append(stats, s)
		}
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Operation != stats[j].Operation {
			return stats[i].Operation < stats[j].Operation
		}
		return stats[i].Outcome < stats[j].Outcome
	})

	return stats, nil
}
