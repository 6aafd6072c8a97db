package providers

import (
	"time"
	"umc/internal/structures"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	AddRecordsLoaded(count int)
	IncSkippedInputs()
	SetSheetRows(sheet string, rows int)
	ObserveRunDuration(duration time.Duration)
	Flush() error
}

type MetricsProvider struct {
	registry      *prometheus.Registry
	textfile      string
	recordsLoaded prometheus.Counter
	skippedInputs prometheus.Counter
	sheetRows     *prometheus.GaugeVec
	runDuration   prometheus.Gauge
}

func (m *MetricsProvider) AddRecordsLoaded(count int) {
	m.recordsLoaded.Add(float64(count))
}

func (m *MetricsProvider) IncSkippedInputs() {
	m.skippedInputs.Inc()
}

func (m *MetricsProvider) SetSheetRows(sheet string, rows int) {
	m.sheetRows.WithLabelValues(sheet).Set(float64(rows))
}

func (m *MetricsProvider) ObserveRunDuration(duration time.Duration) {
	m.runDuration.Set(duration.Seconds())
}

// Flush dumps the registry in the node_exporter textfile collector format,
// one file per run.
func (m *MetricsProvider) Flush() error {
	return prometheus.WriteToTextfile(m.textfile, m.registry)
}

func NewMetricsProvider(conf *structures.Config, logger Logger) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}
	if conf.Metrics.Textfile == "" {
		logger.Warnf(TypeApp, "Metrics enabled but no textfile path configured, disabling")
		return &noopMetrics{}
	}

	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &MetricsProvider{
		registry: registry,
		textfile: conf.Metrics.Textfile,

		recordsLoaded: factory.NewCounter(prometheus.CounterOpts{
			Name: "umc_records_loaded_total",
			Help: "Total number of usage records loaded from the input file",
		}),

		skippedInputs: factory.NewCounter(prometheus.CounterOpts{
			Name: "umc_skipped_inputs_total",
			Help: "Total number of input lines or elements skipped as unparseable",
		}),

		sheetRows: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "umc_sheet_rows",
			Help: "Number of data rows produced per sheet",
		}, []string{"sheet"}),

		runDuration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "umc_run_duration_seconds",
			Help: "Duration of the conversion run in seconds",
		}),
	}

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) AddRecordsLoaded(_ int)             {}
func (n *noopMetrics) IncSkippedInputs()                  {}
func (n *noopMetrics) SetSheetRows(_ string, _ int)       {}
func (n *noopMetrics) ObserveRunDuration(_ time.Duration) {}
func (n *noopMetrics) Flush() error                       { return nil }
