package chain

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "redistrict"
	metricsSubsystem = "chain"

	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
)

// Metrics holds the chain counters. One Metrics value may be shared by every
// chain of an ensemble; a nil *Metrics records nothing.
type Metrics struct {
	Steps            *prometheus.CounterVec
	InvalidProposals prometheus.Counter
	ProposalAttempts prometheus.Histogram
	Energy           prometheus.Gauge
}

// NewMetrics creates unregistered chain metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "steps_total",
				Help:      "Chain steps by Metropolis outcome",
			},
			[]string{"outcome"},
		),

		InvalidProposals: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "invalid_flips_total",
				Help:      "Flip attempts rejected for emptying or disconnecting a district",
			},
		),

		ProposalAttempts: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "proposal_attempts",
				Help:      "Flip attempts needed per valid proposal",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
		),

		Energy: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "energy",
				Help:      "Weighted energy of the most recently accepted plan",
			},
		),
	}
}

// Register adds every collector to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.Steps, m.InvalidProposals, m.ProposalAttempts, m.Energy} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) observeProposal(attempts int) {
	if m == nil {
		return
	}
	m.ProposalAttempts.Observe(float64(attempts))
	if attempts > 1 {
		m.InvalidProposals.Add(float64(attempts - 1))
	}
}

func (m *Metrics) observeStep(accepted bool, energy float64) {
	if m == nil {
		return
	}
	if accepted {
		m.Steps.WithLabelValues(outcomeAccepted).Inc()
		m.Energy.Set(energy)
		return
	}
	m.Steps.WithLabelValues(outcomeRejected).Inc()
}
