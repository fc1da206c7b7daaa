package observability

import (
	"context"
	"strconv"

	"github.com/aretw0/quill/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by lifecycle hooks.
type Metrics struct {
	Sequences       *prometheus.CounterVec
	SequencePages   prometheus.Histogram
	ResolveDuration prometheus.Histogram
	Choices         *prometheus.CounterVec
	Rewinds         *prometheus.CounterVec
	Images          *prometheus.CounterVec
	ImageDuration   prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Sequences: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quill_sequences_total",
				Help: "Resolved sequences by outcome (playing, ending, broken)",
			},
			[]string{"outcome"},
		),
		SequencePages: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "quill_sequence_pages",
			Help:    "Number of pages per resolved sequence",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		}),
		ResolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "quill_resolve_duration_seconds",
			Help: "Time spent resolving a sequence",
		}),
		Choices: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quill_choices_total",
				Help: "Choices taken, by scene",
			},
			[]string{"node_id"},
		),
		Rewinds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quill_rewinds_total",
				Help: "Rewinds, by whether the lead-in could be rebuilt",
			},
			[]string{"degraded"},
		),
		Images: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quill_images_total",
				Help: "Settled illustration requests by result (ok, fallback, stale)",
			},
			[]string{"result"},
		),
		ImageDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "quill_image_duration_seconds",
			Help: "Duration of illustration requests",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.Sequences, m.SequencePages, m.ResolveDuration, m.Choices, m.Rewinds, m.Images, m.ImageDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSequenceLoaded: func(_ context.Context, e *domain.SequenceEvent) {
			outcome := "playing"
			switch {
			case e.Broken:
				outcome = "broken"
			case e.Ending:
				outcome = "ending"
			}
			m.Sequences.WithLabelValues(outcome).Inc()
			m.SequencePages.Observe(float64(e.Pages))
			m.ResolveDuration.Observe(e.Duration.Seconds())
		},
		OnChoice: func(_ context.Context, e *domain.ChoiceEvent) {
			m.Choices.WithLabelValues(e.FromID).Inc()
		},
		OnRewind: func(_ context.Context, e *domain.RewindEvent) {
			m.Rewinds.WithLabelValues(strconv.FormatBool(e.Degraded)).Inc()
		},
		OnImage: func(_ context.Context, e *domain.ImageEvent) {
			result := "ok"
			switch {
			case e.Stale:
				result = "stale"
			case e.Fallback:
				result = "fallback"
			}
			m.Images.WithLabelValues(result).Inc()
			m.ImageDuration.Observe(e.Duration.Seconds())
		},
	}
}
