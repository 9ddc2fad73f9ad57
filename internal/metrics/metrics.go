// Package metrics records what a generation run produced in a Prometheus
// registry that can be written out as a node-exporter textfile.
package metrics

import (
	"fmt"
	"time"

	"github.com/Rana718/funnelgen/internal/dataset"
	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus metric names.
const (
	MetricRowsGeneratedTotal        = "funnelgen_rows_generated_total"
	MetricLeadStatusTotal           = "funnelgen_lead_status_total"
	MetricOpportunityStageTotal     = "funnelgen_opportunity_stage_total"
	MetricGenerationDurationSeconds = "funnelgen_generation_duration_seconds"
)

// Recorder owns a private registry so repeated runs in one process never
// collide on registration.
type Recorder struct {
	registry *prometheus.Registry

	rowsGenerated      *prometheus.CounterVec
	leadStatus         *prometheus.CounterVec
	opportunityStage   *prometheus.CounterVec
	generationDuration prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		rowsGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRowsGeneratedTotal,
				Help: "Rows generated per table.",
			},
			[]string{"table"},
		),
		leadStatus: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricLeadStatusTotal,
				Help: "Generated leads by funnel status.",
			},
			[]string{"status"},
		),
		opportunityStage: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricOpportunityStageTotal,
				Help: "Generated opportunities by stage.",
			},
			[]string{"stage"},
		),
		generationDuration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: MetricGenerationDurationSeconds,
				Help: "Wall time of the last generation run in seconds.",
			},
		),
	}

	r.registry.MustRegister(
		r.rowsGenerated,
		r.leadStatus,
		r.opportunityStage,
		r.generationDuration,
	)
	return r
}

// Observe adds the contents of d to the counters and sets the run duration.
func (r *Recorder) Observe(d *dataset.Dataset, elapsed time.Duration) {
	for table, n := range d.RowCounts() {
		r.rowsGenerated.WithLabelValues(table).Add(float64(n))
	}
	for _, l := range d.Leads {
		r.leadStatus.WithLabelValues(string(l.Status)).Inc()
	}
	for _, o := range d.Opportunities {
		r.opportunityStage.WithLabelValues(string(o.Stage)).Inc()
	}
	r.generationDuration.Set(elapsed.Seconds())
}

// WriteFile writes the registry in text exposition format. The file is
// replaced atomically.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
