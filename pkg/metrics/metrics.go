package metrics

import (
	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ShiftRequestsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "shift_admin",
		Name:      "shift_requests_submitted_total",
		Help:      "Shift requests accepted by the submission endpoint.",
	})

	ShiftRequestsRejectedInput = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "shift_admin",
		Name:      "shift_requests_invalid_total",
		Help:      "Submissions refused as invalid-argument.",
	})

	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shift_admin",
		Name:      "status_transitions_total",
		Help:      "Shift request status changes by target status.",
	}, []string{"status"})

	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "shift_admin",
		Name:      "notification_failures_total",
		Help:      "Creation trigger calls that returned an error.",
	})

	Computations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shift_admin",
		Name:      "staffing_computations_total",
		Help:      "Staffing metric computations by kind (daily, series).",
	}, []string{"kind"})

	DayClassifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shift_admin",
		Name:      "staffing_day_classifications_total",
		Help:      "Computed days by staffing classification.",
	}, []string{"classification"})

	ExcludedRecords = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "shift_admin",
		Name:      "staffing_excluded_records_total",
		Help:      "Approved shift records skipped because of malformed times.",
	})
)

// ObserveMetrics records a computation of kind and the days it produced
func ObserveMetrics(kind string, days ...models.DailyStaffingMetric) {
	Computations.WithLabelValues(kind).Inc()
	for _, d := range days {
		DayClassifications.WithLabelValues(string(d.Classification)).Inc()
		if d.ExcludedRecords > 0 {
			ExcludedRecords.Add(float64(d.ExcludedRecords))
		}
	}
}
