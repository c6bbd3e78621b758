package column

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports a Stats as Prometheus metrics.
type Collector struct {
	stats   *Stats
	flat    *prometheus.Desc
	dynamic *prometheus.Desc
	flatten *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

func NewCollector(namespace string, stats *Stats) *Collector {
	return &Collector{
		stats: stats,
		flat: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "flat_json_hits_total"),
			"Document paths read from precomputed flat columns.",
			[]string{"path"}, nil),
		dynamic: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "dynamic_json_hits_total"),
			"Document paths flattened at read time.",
			[]string{"path"}, nil),
		flatten: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "json_flatten_seconds_total"),
			"Time spent flattening documents at read time.",
			nil, nil),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.flat
	ch <- c.dynamic
	ch <- c.flatten
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for path, n := range c.stats.FlatHits.Snapshot() {
		ch <- prometheus.MustNewConstMetric(c.flat, prometheus.CounterValue, float64(n), path)
	}
	for path, n := range c.stats.DynamicHits.Snapshot() {
		ch <- prometheus.MustNewConstMetric(c.dynamic, prometheus.CounterValue, float64(n), path)
	}
	ch <- prometheus.MustNewConstMetric(c.flatten, prometheus.CounterValue, c.stats.FlattenTime().Seconds())
}
