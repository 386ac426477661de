// Package metrics counts executed commands and tracks fleet size.
//
// Metrics live on a private registry and are exported to a file in the
// node_exporter textfile format rather than served over HTTP.
//
// Metrics:
//   - toyrobot_commands_total{command,outcome} - commands executed, by outcome
//   - toyrobot_robots - robots currently in the registry
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the simulator's Prometheus metrics
type Recorder struct {
	registry *prometheus.Registry

	CommandsTotal *prometheus.CounterVec
	Robots        prometheus.Gauge
}

// NewRecorder creates and registers the metrics on a fresh registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		CommandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toyrobot_commands_total",
				Help: "Total number of commands executed, by command and outcome",
			},
			[]string{"command", "outcome"},
		),
		Robots: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "toyrobot_robots",
			Help: "Number of robots currently in the registry",
		}),
	}
	r.registry.MustRegister(r.CommandsTotal, r.Robots)
	return r
}

// Observe counts one command. An empty command is recorded as "unparsed".
func (r *Recorder) Observe(command, outcome string) {
	if command == "" {
		command = "unparsed"
	}
	r.CommandsTotal.WithLabelValues(command, outcome).Inc()
}

// SetRobots records the current fleet size
func (r *Recorder) SetRobots(n int) {
	r.Robots.Set(float64(n))
}

// Registry exposes the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path atomically
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
