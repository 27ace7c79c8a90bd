package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/fraudmini/internal/domain"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Decision metrics
	Decisions          *prometheus.CounterVec
	IdempotentHits     prometheus.Counter
	RulesFired         *prometheus.CounterVec
	DecisionScore      prometheus.Histogram
	ScoringDuration    prometheus.Histogram
	SideEffectFailures *prometheus.CounterVec

	// Ingestion metrics
	FilesProcessed prometheus.Counter
	FilesFailed    prometheus.Counter
	FilesSkipped   prometheus.Counter
	RowsDispatched prometheus.Counter

	// Worker metrics
	StreamMessages *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates and registers all Prometheus metrics on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Decision metrics
		Decisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fraudmini_decisions_total",
				Help: "Total number of new decisions by tier",
			},
			[]string{"decision"},
		),
		IdempotentHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "fraudmini_decisions_idempotent_total",
			Help: "Total number of scoring requests answered from a stored decision",
		}),
		RulesFired: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fraudmini_rules_fired_total",
				Help: "Total number of times each rule fired",
			},
			[]string{"rule_id"},
		),
		DecisionScore: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fraudmini_decision_score",
			Help:    "Scores of new decisions",
			Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 85, 100, 150},
		}),
		ScoringDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fraudmini_scoring_duration_seconds",
			Help:    "Duration of scoring requests",
			Buckets: prometheus.DefBuckets,
		}),
		SideEffectFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fraudmini_side_effect_failures_total",
				Help: "Total number of failed best-effort side effects by kind",
			},
			[]string{"kind"},
		),

		// Ingestion metrics
		FilesProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "fraudmini_ingest_files_processed_total",
			Help: "Total number of files fully dispatched",
		}),
		FilesFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "fraudmini_ingest_files_failed_total",
			Help: "Total number of files quarantined",
		}),
		FilesSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "fraudmini_ingest_files_skipped_total",
			Help: "Total number of notifications for already relocated files",
		}),
		RowsDispatched: factory.NewCounter(prometheus.CounterOpts{
			Name: "fraudmini_ingest_rows_dispatched_total",
			Help: "Total number of rows sent to the downstream queue",
		}),

		// Worker metrics
		StreamMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fraudmini_stream_messages_total",
				Help: "Total stream messages by worker and outcome",
			},
			[]string{"worker", "outcome"},
		),
	}
}

// RecordDecision implements usecase.DecisionRecorder.
func (m *Metrics) RecordDecision(decision *domain.Decision, idempotent bool, elapsed time.Duration) {
	m.ScoringDuration.Observe(elapsed.Seconds())

	if idempotent {
		m.IdempotentHits.Inc()
		return
	}

	m.Decisions.WithLabelValues(string(decision.Tier)).Inc()
	m.DecisionScore.Observe(float64(decision.Score))
	for _, id := range decision.RulesFired {
		m.RulesFired.WithLabelValues(string(id)).Inc()
	}
}

// RecordSideEffectFailure implements usecase.DecisionRecorder.
func (m *Metrics) RecordSideEffectFailure(kind string) {
	m.SideEffectFailures.WithLabelValues(kind).Inc()
}

// RecordFile implements usecase.IngestRecorder.
func (m *Metrics) RecordFile(status domain.FileStatus) {
	switch status {
	case domain.FileProcessed:
		m.FilesProcessed.Inc()
	case domain.FileFailed:
		m.FilesFailed.Inc()
	case domain.FileSkipped:
		m.FilesSkipped.Inc()
	}
}

// RecordRowDispatched implements usecase.IngestRecorder.
func (m *Metrics) RecordRowDispatched() {
	m.RowsDispatched.Inc()
}

// RecordMessage implements streamworker.Recorder.
func (m *Metrics) RecordMessage(worker, outcome string) {
	m.StreamMessages.WithLabelValues(worker, outcome).Inc()
}
