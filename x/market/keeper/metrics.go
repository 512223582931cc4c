package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes marketplace activity on the node's prometheus registry.
type Metrics struct {
	ResourcesListed    prometheus.Counter
	AuctionsCreated    prometheus.Counter
	BidsPlaced         prometheus.Counter
	AuctionsSettled    prometheus.Counter
	AuctionsExpired    prometheus.Counter
	JobsCreated        prometheus.Counter
	ProofsSubmitted    prometheus.Counter
	MilestonesReleased prometheus.Counter
	Deposits           prometheus.Counter
	Withdrawals        prometheus.Counter
	TreasuryBalance    prometheus.Gauge
}

var (
	metricsInstance *Metrics
	metricsOnce     sync.Once
)

// GetMetrics returns the process-wide market metrics, registering them on
// first use.
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		metricsInstance = newMetrics()
	})
	return metricsInstance
}

func newMetrics() *Metrics {
	m := &Metrics{
		ResourcesListed: newCounter("resources_listed_total", "Number of compute resource listings accepted."),
		AuctionsCreated: newCounter("auctions_created_total", "Number of auctions opened."),
		BidsPlaced:      newCounter("bids_placed_total", "Number of bids accepted."),
		AuctionsSettled: newCounter("auctions_settled_total", "Number of auctions settled, with or without a winner."),
		AuctionsExpired: newCounter("auctions_expired_total", "Number of auctions flagged expired by the end blocker."),
		JobsCreated:     newCounter("jobs_created_total", "Number of jobs created from winning bids."),
		ProofsSubmitted: newCounter("proofs_submitted_total", "Number of execution proofs recorded."),
		MilestonesReleased: newCounter("milestones_released_total",
			"Number of milestone escrows released to providers."),
		Deposits:    newCounter("deposits_total", "Number of bank-to-marketplace deposits."),
		Withdrawals: newCounter("withdrawals_total", "Number of marketplace-to-bank withdrawals."),
		TreasuryBalance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "grid",
			Subsystem: "market",
			Name:      "treasury_balance",
			Help:      "Accumulated platform fees held by the treasury.",
		}),
	}

	prometheus.MustRegister(
		m.ResourcesListed,
		m.AuctionsCreated,
		m.BidsPlaced,
		m.AuctionsSettled,
		m.AuctionsExpired,
		m.JobsCreated,
		m.ProofsSubmitted,
		m.MilestonesReleased,
		m.Deposits,
		m.Withdrawals,
		m.TreasuryBalance,
	)

	return m
}

func newCounter(name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "grid",
		Subsystem: "market",
		Name:      name,
		Help:      help,
	})
}

// SetTreasury records the treasury balance. Balances can exceed the int64
// range, so the conversion goes through big.Float.
func (m *Metrics) SetTreasury(balance math.Int) {
	f, _ := new(big.Float).SetInt(balance.BigInt()).Float64()
	m.TreasuryBalance.Set(f)
}
