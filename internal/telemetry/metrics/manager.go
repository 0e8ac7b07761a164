package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Manager holds all service-level prometheus instruments.
type Manager struct {
	registry *prometheus.Registry

	// CounterRequests counts handled HTTP requests, partitioned by method and status.
	CounterRequests *prometheus.CounterVec
	// CounterHandleRequestPanic counts panics recovered in the middleware.
	CounterHandleRequestPanic prometheus.Counter
	// CounterRateLimitedRequests counts requests rejected by the login rate limiter.
	CounterRateLimitedRequests prometheus.Counter

	CounterUsersRegistered prometheus.Counter
	CounterWorkoutsCreated *prometheus.CounterVec
	CounterExercisesLogged *prometheus.CounterVec
	CounterPointsAwarded   prometheus.Counter

	GaugeRequests            prometheus.Gauge
	GaugeLifeSignal          prometheus.Gauge
	HistogramRequestDuration prometheus.Histogram
}

func NewManager(namespace string, reg *prometheus.Registry) *Manager {
	m := &Manager{
		registry: reg,
		CounterRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "total_requests",
			Help:      "Total number of handled requests",
		}, []string{"method", "status"}),
		CounterHandleRequestPanic: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handle_request_panic",
			Help:      "Total number of panics during request handling",
		}),
		CounterRateLimitedRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_requests",
			Help:      "Total number of rate limited requests",
		}),
		CounterUsersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_registered",
			Help:      "Total number of registered users",
		}),
		CounterWorkoutsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workouts_created",
			Help:      "Total number of created workouts, partitioned by kind",
		}, []string{"kind"}),
		CounterExercisesLogged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exercises_logged",
			Help:      "Total number of exercises added to workouts, partitioned by kind",
		}, []string{"kind"}),
		CounterPointsAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_awarded",
			Help:      "Total number of awarded workout points",
		}),
		GaugeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "current_requests",
			Help:      "Number of open connections",
		}),
		GaugeLifeSignal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "life_signal",
			Help:      "Set to 1 while the service is up and serving",
		}),
		HistogramRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_millis",
			Help:      "Request handling duration in milliseconds",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}),
	}

	reg.MustRegister(
		m.CounterRequests,
		m.CounterHandleRequestPanic,
		m.CounterRateLimitedRequests,
		m.CounterUsersRegistered,
		m.CounterWorkoutsCreated,
		m.CounterExercisesLogged,
		m.CounterPointsAwarded,
		m.GaugeRequests,
		m.GaugeLifeSignal,
		m.HistogramRequestDuration,
	)

	return m
}

// NewTestManager returns a manager bound to a throwaway registry.
func NewTestManager() *Manager {
	return NewManager("test", prometheus.NewRegistry())
}

func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}
