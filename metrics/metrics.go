package metrics

import (
	"time"

	"github.com/blogem/workout-tracker/confirmgate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the workout tracker.
// Tracks confirmation outcomes, workout lifecycle events and request latency.
type Metrics struct {
	Confirmations   *prometheus.CounterVec
	WorkoutsCreated prometheus.Counter
	WorkoutsEnded   prometheus.Counter
	WorkoutsDeleted prometheus.Counter
	RequestDuration *prometheus.HistogramVec
}

// New creates a Metrics instance registered with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Confirmations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "workout_tracker_confirmations_total",
			Help: "Guarded action activations by element and outcome",
		}, []string{"element", "outcome"}),
		WorkoutsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "workout_tracker_workouts_created_total",
			Help: "Total number of workouts created",
		}),
		WorkoutsEnded: factory.NewCounter(prometheus.CounterOpts{
			Name: "workout_tracker_workouts_ended_total",
			Help: "Total number of workouts ended",
		}),
		WorkoutsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "workout_tracker_workouts_deleted_total",
			Help: "Total number of workouts deleted",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "workout_tracker_request_duration_seconds",
			Help:    "Duration of HTTP requests by route pattern and method",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "method"}),
	}
}

// ObserveConfirmation records a guarded action outcome
func (m *Metrics) ObserveConfirmation(action confirmgate.GuardedAction, outcome confirmgate.Outcome) {
	m.Confirmations.WithLabelValues(action.ElementID, string(outcome)).Inc()
}

// IncrementWorkoutCreated records a successful workout creation
func (m *Metrics) IncrementWorkoutCreated() {
	m.WorkoutsCreated.Inc()
}

// IncrementWorkoutEnded records a workout being ended
func (m *Metrics) IncrementWorkoutEnded() {
	m.WorkoutsEnded.Inc()
}

// IncrementWorkoutDeleted records a workout deletion
func (m *Metrics) IncrementWorkoutDeleted() {
	m.WorkoutsDeleted.Inc()
}

// ObserveRequest records the duration of a request.
// Call with time.Now() taken at the start of the request.
func (m *Metrics) ObserveRequest(route, method string, start time.Time) {
	m.RequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
}
