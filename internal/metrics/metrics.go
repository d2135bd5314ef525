package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "affiliate_escrow"

// Metrics holds the Prometheus collectors of the escrow service. A nil
// *Metrics is valid and records nothing, which keeps call sites free of
// nil checks in tests.
type Metrics struct {
	campaignsCreated prometheus.Counter
	linksCreated     prometheus.Counter
	settlements      *prometheus.CounterVec
	commissionPaid   prometheus.Counter
	proceedsPaid     prometheus.Counter
	txRetries        prometheus.Counter
}

// New creates the collectors and registers them with registry. A nil
// registry leaves them unregistered.
func New(registry prometheus.Registerer) *Metrics {
	factory := promauto.With(registry)
	return &Metrics{
		campaignsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaigns_created_total",
			Help:      "Total number of campaigns created",
		}),
		linksCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "affiliate_links_created_total",
			Help:      "Total number of affiliate links created",
		}),
		settlements: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_total",
			Help:      "Total number of settlement attempts by result",
		}, []string{"result"}),
		commissionPaid: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commission_paid_total",
			Help:      "Total lamports paid to influencers",
		}),
		proceedsPaid: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proceeds_paid_total",
			Help:      "Total lamports paid to campaign owners",
		}),
		txRetries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tx_retries_total",
			Help:      "Total number of transactions rerun after a storage conflict",
		}),
	}
}

// IncCampaignCreated counts a committed campaign.
func (m *Metrics) IncCampaignCreated() {
	if m == nil {
		return
	}
	m.campaignsCreated.Inc()
}

// IncLinkCreated counts a committed affiliate link.
func (m *Metrics) IncLinkCreated() {
	if m == nil {
		return
	}
	m.linksCreated.Inc()
}

// ObserveSettlement counts one settlement attempt. result is "ok" or an
// error code.
func (m *Metrics) ObserveSettlement(result string, commission, proceeds uint64) {
	if m == nil {
		return
	}
	m.settlements.WithLabelValues(result).Inc()
	if result == "ok" {
		m.commissionPaid.Add(float64(commission))
		m.proceedsPaid.Add(float64(proceeds))
	}
}

// IncTxRetry counts one rerun of a transaction that hit a storage conflict.
func (m *Metrics) IncTxRetry() {
	if m == nil {
		return
	}
	m.txRetries.Inc()
}
