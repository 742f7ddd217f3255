// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package metrics exports chart render statistics to Prometheus.
//
// An Observer is a ggchart.FrameObserver:
//
//	obs := metrics.MustNewObserver(prometheus.DefaultRegisterer)
//	c := ggchart.NewChart(ggchart.WithFrameObserver(obs))
//	http.Handle("/metrics", metrics.Handler(prometheus.DefaultGatherer))
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"

	"github.com/gogpu/ggchart"
)

const namespace = "ggchart"

// buckets for render pass durations, in seconds
var buckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1}

// Observer counts render passes and records their cost.
type Observer struct {
	rendered   prometheus.Counter
	skipped    prometheus.Counter
	rejected   prometheus.Counter
	primitives prometheus.Gauge
	duration   prometheus.Histogram
}

// NewObserver creates an Observer and registers its collectors with reg.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		rendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_rendered_total",
			Help:      "Render passes submitted to the surface.",
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_skipped_total",
			Help:      "Render passes skipped because nothing could be drawn.",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "series_rejected_total",
			Help:      "Malformed series left out of a render pass.",
		}),
		primitives: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "frame_primitives",
			Help:      "Primitives submitted by the last render pass.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time taken by a render pass.",
			Buckets:   buckets,
		}),
	}
	for _, c := range []prometheus.Collector{o.rendered, o.skipped, o.rejected, o.primitives, o.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// MustNewObserver is like NewObserver but panics if registration fails.
func MustNewObserver(reg prometheus.Registerer) *Observer {
	o, err := NewObserver(reg)
	if err != nil {
		panic(err)
	}
	return o
}

// ObserveFrame implements ggchart.FrameObserver.
func (o *Observer) ObserveFrame(stats ggchart.FrameStats) {
	o.duration.Observe(stats.Duration.Seconds())
	if !stats.Rendered {
		o.skipped.Inc()
		return
	}
	o.rendered.Inc()
	o.rejected.Add(float64(stats.Rejected))
	o.primitives.Set(float64(stats.Primitives))
}

// Stats is a point-in-time copy of the observer's values.
type Stats struct {
	Rendered   int64
	Skipped    int64
	Rejected   int64
	Primitives int64
	Passes     uint64
}

// Read fills s from the observer.
func (s *Stats) Read(o *Observer) {
	m := new(dto.Metric)

	_ = o.rendered.Write(m)
	s.Rendered = int64(m.GetCounter().GetValue())

	m.Reset()
	_ = o.skipped.Write(m)
	s.Skipped = int64(m.GetCounter().GetValue())

	m.Reset()
	_ = o.rejected.Write(m)
	s.Rejected = int64(m.GetCounter().GetValue())

	m.Reset()
	_ = o.primitives.Write(m)
	s.Primitives = int64(m.GetGauge().GetValue())

	m.Reset()
	_ = o.duration.Write(m)
	s.Passes = m.GetHistogram().GetSampleCount()
}

// Stats returns the current values.
func (o *Observer) Stats() (s Stats) {
	s.Read(o)
	return
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
