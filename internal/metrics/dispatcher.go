package metrics

import (
	"time"

	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dispatcherPushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainwatch",
		Subsystem: "dispatcher",
		Name:      "push_total",
		Help:      "Count of notification pushes by outcome.",
	}, []string{"chain", "status"})
	dispatcherPushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainwatch",
		Subsystem: "dispatcher",
		Name:      "push_duration_seconds",
		Help:      "Duration of notification pushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "status"})
)

// Dispatcher tracks metrics for notification delivery.
type Dispatcher struct{}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Observe records a push outcome. Skipped pushes for disabled devices use status "skipped".
func (m Dispatcher) Observe(chain model.Chain, skipped bool, err error, started time.Time) {
	status := statusOf(err)
	if skipped {
		status = "skipped"
	}
	if chain == "" {
		chain = "unknown"
	}
	dispatcherPushTotal.WithLabelValues(string(chain), status).Inc()
	dispatcherPushDuration.WithLabelValues(string(chain), status).Observe(time.Since(started).Seconds())
}
