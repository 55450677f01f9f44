package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "traffiscan"

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	LocationChecks *prometheus.CounterVec // labels: result={danger,safe}
	NearbyResults  prometheus.Histogram

	// Weather metrics.
	WeatherRequests    *prometheus.CounterVec // labels: outcome={success,error}
	WeatherCache       *prometheus.CounterVec // labels: result={hit,miss}
	WeatherAPIDuration prometheus.Histogram
	WeatherImpact      *prometheus.GaugeVec // labels: level={low,medium,high}

	// Fan-out metrics.
	WebhookDeliveries *prometheus.CounterVec // labels: outcome={delivered,failed,skipped}
	FeedMessages      *prometheus.CounterVec // labels: outcome={published,error}

	// Quiz metrics.
	GamesPlayed   prometheus.Counter
	BadgesAwarded *prometheus.CounterVec // labels: badge
}

func newMetrics() *Metrics {
	return &Metrics{
		LocationChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "location_checks_total",
			Help:      "Location checks by result.",
		}, []string{"result"}),
		NearbyResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "nearby_results",
			Help:      "Number of incidents returned by a proximity query.",
			Buckets:   []float64{0, 1, 2, 3, 5, 10, 20, 50},
		}),
		WeatherRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_requests_total",
			Help:      "Weather provider requests by outcome.",
		}, []string{"outcome"}),
		WeatherCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_cache_total",
			Help:      "Weather cache lookups by result.",
		}, []string{"result"}),
		WeatherAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "weather_api_duration_seconds",
			Help:      "Weather provider request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		WeatherImpact: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "weather_impact",
			Help:      "1 for the impact level of the last polled snapshot, 0 for the others.",
		}, []string{"level"}),
		WebhookDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_deliveries_total",
			Help:      "Webhook deliveries by outcome.",
		}, []string{"outcome"}),
		FeedMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_messages_total",
			Help:      "Incident change-feed messages by outcome.",
		}, []string{"outcome"}),
		GamesPlayed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_played_total",
			Help:      "Completed safety quiz games.",
		}),
		BadgesAwarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "badges_awarded_total",
			Help:      "Badges awarded for the first time, by badge type.",
		}, []string{"badge"}),
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.LocationChecks,
		m.NearbyResults,
		m.WeatherRequests,
		m.WeatherCache,
		m.WeatherAPIDuration,
		m.WeatherImpact,
		m.WebhookDeliveries,
		m.FeedMessages,
		m.GamesPlayed,
		m.BadgesAwarded,
	)
	return m
}

// NewMetricsForTesting creates unregistered metrics so tests can build
// as many instances as they need.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
