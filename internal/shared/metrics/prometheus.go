package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// Engine metrics
	labInterpretationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lab_interpretations_total",
			Help: "Total number of lab results interpreted",
		},
		[]string{"flag"},
	)

	criticalValuesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "critical_values_total",
			Help: "Total number of critical lab values flagged",
		},
		[]string{"test_code"},
	)

	woundAssessmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wound_assessments_total",
			Help: "Total number of wound assessments performed",
		},
		[]string{"phase"},
	)

	woundCorrectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wound_corrections_total",
			Help: "Total number of clinician corrections recorded",
		},
	)

	readmissionPredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "readmission_predictions_total",
			Help: "Total number of readmission risk predictions",
		},
		[]string{"risk_level"},
	)

	readmissionOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "readmission_outcomes_total",
			Help: "Total number of confirmed readmission outcomes recorded",
		},
		[]string{"readmitted"},
	)

	// Database metrics
	dbQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)
)

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware creates HTTP metrics middleware
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		// Wrap response writer to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		path := normalizePath(r.URL.Path)

		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// normalizePath normalizes URL paths for metrics to avoid cardinality explosion
func normalizePath(path string) string {
	if len(path) > 100 {
		return "/api/..."
	}
	return path
}

// --- Engine metric helpers ---

// RecordLabInterpretation records an interpreted lab result by flag
func RecordLabInterpretation(flag string) {
	labInterpretationsTotal.WithLabelValues(flag).Inc()
}

// RecordCriticalValue records a critical lab value by test code
func RecordCriticalValue(testCode string) {
	criticalValuesTotal.WithLabelValues(testCode).Inc()
}

// RecordWoundAssessment records a wound assessment by classified phase
func RecordWoundAssessment(phase string) {
	woundAssessmentsTotal.WithLabelValues(phase).Inc()
}

// RecordWoundCorrection records a clinician correction
func RecordWoundCorrection() {
	woundCorrectionsTotal.Inc()
}

// RecordReadmissionPrediction records a prediction by ensemble risk level
func RecordReadmissionPrediction(riskLevel string) {
	readmissionPredictionsTotal.WithLabelValues(riskLevel).Inc()
}

// RecordReadmissionOutcome records a confirmed outcome
func RecordReadmissionOutcome(readmitted bool) {
	label := "no"
	if readmitted {
		label = "yes"
	}
	readmissionOutcomesTotal.WithLabelValues(label).Inc()
}

// RecordDBQuery records a database query duration
func RecordDBQuery(operation string, duration time.Duration) {
	dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
