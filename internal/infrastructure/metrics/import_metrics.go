package metrics

import (
	domain "github.com/mohammadpnp/user-registry/internal/domain/user"
	"github.com/prometheus/client_golang/prometheus"
)

type ImportMetrics struct {
	runs      *prometheus.CounterVec
	rowErrors *prometheus.CounterVec
	imported  prometheus.Counter
}

func NewImportMetrics(reg prometheus.Registerer) *ImportMetrics {
	m := &ImportMetrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "user_import_runs_total",
			Help: "Spreadsheet imports by outcome.",
		}, []string{"outcome"}),
		rowErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "user_import_row_errors_total",
			Help: "Rejected spreadsheet rows by error kind.",
		}, []string{"kind"}),
		imported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "user_import_records_total",
			Help: "Users inserted through spreadsheet imports.",
		}),
	}

	reg.MustRegister(m.runs, m.rowErrors, m.imported)
	return m
}

func (m *ImportMetrics) ObserveImport(outcome domain.ImportOutcome, result domain.ImportResult) {
	m.runs.WithLabelValues(string(outcome)).Inc()
	for _, rowErr := range result.Errors {
		m.rowErrors.WithLabelValues(string(rowErr.Kind)).Inc()
	}
	if result.Success {
		m.imported.Add(float64(result.ImportedCount))
	}
}
