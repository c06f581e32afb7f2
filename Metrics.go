package gobitflyer

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OUTCOME_OK           = "ok"
	OUTCOME_AUTH         = "auth_required"
	OUTCOME_TRANSPORT    = "transport_error"
	OUTCOME_DECODE       = "decode_error"
	OUTCOME_OTHER        = "error"
	metricsNamespace     = "bitflyer"
	metricsLabelEndpoint = "endpoint"
)

// Metrics counts requests per endpoint. A nil *Metrics records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the collectors on reg. Returns nil when reg is nil.
// Registering twice on the same registry reuses the collectors already there.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, nil
	}

	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "requests_total",
				Help:      "Requests sent to the bitflyer REST API by outcome.",
			},
			[]string{metricsLabelEndpoint, "method", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "request_duration_seconds",
				Help:      "Round trip time of bitflyer REST requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{metricsLabelEndpoint},
		),
	}

	requests, err := registerOrReuse(reg, m.requests)
	if err != nil {
		return nil, err
	}
	duration, err := registerOrReuse(reg, m.duration)
	if err != nil {
		return nil, err
	}

	var ok bool
	if m.requests, ok = requests.(*prometheus.CounterVec); !ok {
		return nil, fmt.Errorf("%s_requests_total is registered as %T", metricsNamespace, requests)
	}
	if m.duration, ok = duration.(*prometheus.HistogramVec); !ok {
		return nil, fmt.Errorf("%s_request_duration_seconds is registered as %T", metricsNamespace, duration)
	}
	return m, nil
}

func registerOrReuse(reg prometheus.Registerer, c prometheus.Collector) (prometheus.Collector, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector, nil
		}
		return nil, err
	}
	return c, nil
}

func (m *Metrics) Observe(endpoint, method string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(endpoint, method, Outcome(err)).Inc()
	m.duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// Outcome maps an error to its tier label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OUTCOME_OK
	case errors.Is(err, ErrAuthRequired):
		return OUTCOME_AUTH
	case errors.Is(err, ErrTransport):
		return OUTCOME_TRANSPORT
	case errors.Is(err, ErrResponseDecode):
		return OUTCOME_DECODE
	default:
		return OUTCOME_OTHER
	}
}
