/*
Package styleprom exports the activity counters of a styling engine as
Prometheus metrics.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package styleprom

import (
	"github.com/npillmayer/restyle/dom/style/restyle"
	"github.com/prometheus/client_golang/prometheus"
)

// StatsSource is implemented by restyle.Engine.
type StatsSource interface {
	Stats() restyle.Stats
}

// Collector is a prometheus.Collector reading the statistics of an engine
// whenever metrics are gathered. As engines are not safe for concurrent
// use, gathering has to be synchronized with the goroutine owning the
// engine.
type Collector struct {
	source StatsSource
	descs  []metric
}

type metric struct {
	desc  *prometheus.Desc
	kind  prometheus.ValueType
	value func(restyle.Stats) int
}

// NewCollector creates a collector for an engine. constLabels are attached
// to every metric, e.g. to tell apart several engines.
func NewCollector(source StatsSource, constLabels prometheus.Labels) *Collector {
	counter := func(name, help string, value func(restyle.Stats) int) metric {
		return metric{
			desc:  prometheus.NewDesc(prometheus.BuildFQName("restyle", "", name), help, nil, constLabels),
			kind:  prometheus.CounterValue,
			value: value,
		}
	}
	gauge := func(name, help string, value func(restyle.Stats) int) metric {
		m := counter(name, help, value)
		m.kind = prometheus.GaugeValue
		return m
	}
	return &Collector{
		source: source,
		descs: []metric{
			counter("toggles_total", "Pseudo-class toggles changing a node's state.",
				func(s restyle.Stats) int { return s.Toggles }),
			counter("ignored_toggles_total", "Pseudo-class toggles to the value already in effect.",
				func(s restyle.Stats) int { return s.IgnoredToggles }),
			counter("moves_total", "Tree moves reported to the engine.",
				func(s restyle.Stats) int { return s.Moves }),
			counter("dirty_marks_total", "Nodes marked for restyling.",
				func(s restyle.Stats) int { return s.DirtyMarks }),
			counter("resolutions_total", "Nodes resolved through the match cache.",
				func(s restyle.Stats) int { return s.Resolutions }),
			counter("changed_nodes_total", "Nodes whose declaration block changed.",
				func(s restyle.Stats) int { return s.Changed }),
			counter("pulses_total", "Restyling passes.",
				func(s restyle.Stats) int { return s.Pulses }),
			counter("cache_hits_total", "Resolutions answered from the match cache.",
				func(s restyle.Stats) int { return s.Cache.Hits }),
			counter("cache_misses_total", "Resolutions computed from candidate rules.",
				func(s restyle.Stats) int { return s.Cache.Misses }),
			counter("cache_collisions_total", "Hash collisions detected by the match cache.",
				func(s restyle.Stats) int { return s.Cache.Collisions }),
			gauge("cache_entries", "Results currently held by the match cache.",
				func(s restyle.Stats) int { return s.Cache.Entries }),
			gauge("cache_plans", "Match plans currently held by the match cache.",
				func(s restyle.Stats) int { return s.Cache.Plans }),
		},
	}
}

// Describe is part of interface prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range c.descs {
		ch <- m.desc
	}
}

// Collect is part of interface prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Stats()
	for _, m := range c.descs {
		ch <- prometheus.MustNewConstMetric(m.desc, m.kind, float64(m.value(s)))
	}
}
