package metrics

import "github.com/prometheus/client_golang/prometheus"

// PoolStat is a point-in-time view of a connection pool.
type PoolStat struct {
	Total    int32
	Idle     int32
	Acquired int32
	Max      int32
	Acquires int64
}

type poolCollector struct {
	stat func() PoolStat

	total    *prometheus.Desc
	idle     *prometheus.Desc
	acquired *prometheus.Desc
	max      *prometheus.Desc
	acquires *prometheus.Desc
}

// NewPoolCollector reads stat on every scrape.
func NewPoolCollector(stat func() PoolStat) prometheus.Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc("careergps_db_pool_"+name, help, nil, nil)
	}
	return &poolCollector{
		stat:     stat,
		total:    desc("conns", "Open connections"),
		idle:     desc("idle_conns", "Idle connections"),
		acquired: desc("acquired_conns", "Connections in use"),
		max:      desc("max_conns", "Configured pool size"),
		acquires: desc("acquires_total", "Connections acquired from the pool"),
	}
}

func (c *poolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.total
	ch <- c.idle
	ch <- c.acquired
	ch <- c.max
	ch <- c.acquires
}

func (c *poolCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.stat()
	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(s.Total))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(s.Idle))
	ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.GaugeValue, float64(s.Acquired))
	ch <- prometheus.MustNewConstMetric(c.max, prometheus.GaugeValue, float64(s.Max))
	ch <- prometheus.MustNewConstMetric(c.acquires, prometheus.CounterValue, float64(s.Acquires))
}
