// Package profiler records scope timings and main-loop counters on a
// Prometheus registry. Every call is a no-op until Init.
package profiler

import (
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type collectors struct {
	scopes *prometheus.HistogramVec
	frames prometheus.Counter
	events *prometheus.CounterVec
	layers prometheus.Gauge
}

var active atomic.Pointer[collectors]

// Init registers the engine collectors on reg and enables recording.
// Example: profiler.Init(prometheus.DefaultRegisterer)
func Init(reg prometheus.Registerer) error {
	c := &collectors{
		scopes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "strata_scope_duration_seconds",
			Help:    "Duration of profiled engine scopes",
			Buckets: []float64{.0001, .0005, .001, .002, .004, .008, .016, .033, .066, .1, .25},
		}, []string{"scope"}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "strata_frames_total",
			Help: "Main loop iterations",
		}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "strata_events_total",
			Help: "Events propagated through the layer stack",
		}, []string{"type", "handled"}),
		layers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "strata_layers",
			Help: "Layers and overlays currently in the stack",
		}),
	}
	for _, col := range []prometheus.Collector{c.scopes, c.frames, c.events, c.layers} {
		if err := reg.Register(col); err != nil {
			return err
		}
	}
	active.Store(c)
	return nil
}

// Reset disables recording. Collectors stay registered wherever Init put them.
func Reset() { active.Store(nil) }

func noop() {}

// Start begins a scope and returns the func that ends it.
//
//	defer profiler.Start("Layer.OnUpdate")()
func Start(name string) func() {
	c := active.Load()
	if c == nil {
		return noop
	}
	obs := c.scopes.WithLabelValues(name)
	begin := time.Now()
	return func() { obs.Observe(time.Since(begin).Seconds()) }
}

// Frame counts one main loop iteration.
func Frame() {
	if c := active.Load(); c != nil {
		c.frames.Inc()
	}
}

// Event counts one event after propagation finished.
func Event(typ string, handled bool) {
	if c := active.Load(); c != nil {
		c.events.WithLabelValues(typ, strconv.FormatBool(handled)).Inc()
	}
}

// Layers records the current stack size.
func Layers(n int) {
	if c := active.Load(); c != nil {
		c.layers.Set(float64(n))
	}
}

func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func NumGoroutine() int {
	return runtime.NumGoroutine()
}
