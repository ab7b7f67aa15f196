// Package metrics exposes Prometheus collectors for a replay run. A batch
// run is usually short-lived, but long replays can expose /metrics through
// an optional listener so progress is observable while the run is in flight.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fusillicode/toyoments/pkg/models"
)

// Collector tracks replay progress counters on its own registry.
type Collector struct {
	registry              *prometheus.Registry
	transactionsProcessed *prometheus.CounterVec
	transactionsFailed    *prometheus.CounterVec
	accounts              prometheus.Gauge
	accountsLocked        prometheus.Gauge
}

// New creates a Collector with a fresh registry.
func New() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		transactionsProcessed: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "replay_transactions_total",
			Help: "Total number of successfully applied transactions by kind",
		}, []string{"type"}),
		transactionsFailed: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "replay_transaction_failures_total",
			Help: "Total number of rejected transactions by failure reason",
		}, []string{"reason"}),
		accounts: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "replay_accounts",
			Help: "Number of client accounts created during the run",
		}),
		accountsLocked: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "replay_accounts_locked",
			Help: "Number of client accounts locked by a chargeback",
		}),
	}
}

// TransactionProcessed records a successfully applied transaction.
func (c *Collector) TransactionProcessed(kind models.TxKind) {
	c.transactionsProcessed.WithLabelValues(string(kind)).Inc()
}

// TransactionFailed records a rejected transaction under its failure reason.
func (c *Collector) TransactionFailed(reason string) {
	c.transactionsFailed.WithLabelValues(reason).Inc()
}

// SetAccounts records how many client accounts the run has created and how
// many of them a chargeback has locked.
func (c *Collector) SetAccounts(total, locked int) {
	c.accounts.Set(float64(total))
	c.accountsLocked.Set(float64(locked))
}

// Handler returns the HTTP handler serving this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
