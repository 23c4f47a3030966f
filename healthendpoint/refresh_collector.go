package healthendpoint

import (
	"github.com/prometheus/client_golang/prometheus"
)

type RefreshCollector interface {
	prometheus.Collector
	IncRefresh()
	IncRefreshFailure()
}

type refreshCollector struct {
	refreshCounter        prometheus.Counter
	refreshFailureCounter prometheus.Counter
}

func NewRefreshCollector(namespace, subSystem string) RefreshCollector {
	return &refreshCollector{
		refreshCounter: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "refresh_total",
				Help:      "Number of dashboard refreshes",
			}),
		refreshFailureCounter: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "refresh_failures_total",
				Help:      "Number of failed dashboard refreshes",
			}),
	}
}

func (c *refreshCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.refreshCounter.Desc()
	ch <- c.refreshFailureCounter.Desc()
}

func (c *refreshCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- c.refreshCounter
	ch <- c.refreshFailureCounter
}

func (c *refreshCollector) IncRefresh() {
	c.refreshCounter.Inc()
}

func (c *refreshCollector) IncRefreshFailure() {
	c.refreshFailureCounter.Inc()
}
