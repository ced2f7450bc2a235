package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Gameplay Metrics
var (
	Clicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameClicks,
			Help: HelpTextClicks,
		},
	)

	PointsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsEarned,
			Help: HelpTextPointsEarned,
		},
	)

	UpgradesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesPurchased,
			Help: HelpTextUpgradesPurchased,
		},
		[]string{LabelUpgrade},
	)

	Prestiges = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePrestiges,
			Help: HelpTextPrestiges,
		},
	)

	PrestigeUnlocks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePrestigeUnlocks,
			Help: HelpTextPrestigeUnlocks,
		},
		[]string{LabelUnlock},
	)

	GoldBombsTriggered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldBombsTriggered,
			Help: HelpTextGoldBombsTriggered,
		},
	)

	SaveFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSaveFailures,
			Help: HelpTextSaveFailures,
		},
	)
)

// RegisterActiveGames exposes the size of the game registry as a gauge.
// It must be called at most once per process.
func RegisterActiveGames(count func() int) {
	promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: MetricNameActiveGames,
			Help: HelpTextActiveGames,
		},
		func() float64 { return float64(count()) },
	)
}
