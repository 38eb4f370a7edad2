package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the settlement pipeline counters. A nil *Metrics is safe
// to call; every method no-ops so tests can skip registration.
type Metrics struct {
	IntentsProcessed     prometheus.Counter
	SettlementsConfirmed prometheus.Counter
	SettlementsFailed    prometheus.Counter
	GrantsRevoked        prometheus.Counter
	MerkleCommits        prometheus.Counter
	DisputesResolved     *prometheus.CounterVec
}

// New registers the pipeline counters on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		IntentsProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "settlement_intents_processed_total",
			Help: "Payment intents accepted for settlement dispatch.",
		}),
		SettlementsConfirmed: factory.NewCounter(prometheus.CounterOpts{
			Name: "settlement_confirmations_total",
			Help: "Settlements confirmed by a fiat backend.",
		}),
		SettlementsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "settlement_failures_total",
			Help: "Settlements reported failed by a fiat backend.",
		}),
		GrantsRevoked: factory.NewCounter(prometheus.CounterOpts{
			Name: "access_grants_revoked_total",
			Help: "Provisional grants revoked by failure or expiry.",
		}),
		MerkleCommits: factory.NewCounter(prometheus.CounterOpts{
			Name: "merkle_commits_total",
			Help: "Bet batches anchored under a Merkle root.",
		}),
		DisputesResolved: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "disputes_resolved_total",
			Help: "Disputes resolved, labelled by verdict.",
		}, []string{"verdict"}),
	}
}

func (m *Metrics) IncIntents() {
	if m != nil {
		m.IntentsProcessed.Inc()
	}
}

func (m *Metrics) IncConfirmed() {
	if m != nil {
		m.SettlementsConfirmed.Inc()
	}
}

func (m *Metrics) IncFailed() {
	if m != nil {
		m.SettlementsFailed.Inc()
	}
}

func (m *Metrics) IncRevoked() {
	if m != nil {
		m.GrantsRevoked.Inc()
	}
}

func (m *Metrics) IncCommits() {
	if m != nil {
		m.MerkleCommits.Inc()
	}
}

func (m *Metrics) IncDisputes(verdict string) {
	if m != nil {
		m.DisputesResolved.WithLabelValues(verdict).Inc()
	}
}
