package health

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments the upstream admin checks. One instance per Checker;
// collectors are registered on construction.
type Metrics struct {
	checkDuration *prometheus.HistogramVec
	checkFailures *prometheus.CounterVec
	solrUp        prometheus.Gauge
}

// NewMetrics registers the health collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		checkDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "solrops",
			Subsystem: "health",
			Name:      "check_duration_seconds",
			Help:      "Duration of upstream Solr admin checks.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"check"}),
		checkFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "solrops",
			Subsystem: "health",
			Name:      "check_failures_total",
			Help:      "Upstream Solr admin checks that failed.",
		}, []string{"check"}),
		solrUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "solrops",
			Name:      "solr_up",
			Help:      "1 if the last ping reached Solr, 0 otherwise.",
		}),
	}
	reg.MustRegister(m.checkDuration, m.checkFailures, m.solrUp)
	return m
}

// observe records one check's duration and outcome.
func (m *Metrics) observe(check string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.checkDuration.WithLabelValues(check).Observe(time.Since(start).Seconds())
	if err != nil {
		m.checkFailures.WithLabelValues(check).Inc()
	}
}

func (m *Metrics) setUp(up bool) {
	if m == nil {
		return
	}
	if up {
		m.solrUp.Set(1)
	} else {
		m.solrUp.Set(0)
	}
}
