package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payouts7000",
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Count of outcome events written to the broker.",
	}, []string{"topic", "status"})
	eventsPublishDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "payouts7000",
		Subsystem: "events",
		Name:      "publish_duration_seconds",
		Help:      "Duration of outcome event batches.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"topic", "status"})
)

// Events tracks metrics for the outcome event publisher.
type Events struct {
	topic string
}

// NewEvents constructs an Events collector for topic.
func NewEvents(topic string) *Events {
	if topic == "" {
		topic = "unknown"
	}
	return &Events{topic: topic}
}

// Observe records a published batch.
func (m Events) Observe(messages int, err error, started time.Time) {
	status := statusOf(err)
	eventsPublishedTotal.WithLabelValues(m.topic, status).Add(float64(messages))
	eventsPublishDuration.WithLabelValues(m.topic, status).Observe(time.Since(started).Seconds())
}
