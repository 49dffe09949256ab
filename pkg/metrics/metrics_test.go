package metrics

import (
	"testing"

	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveMetrics(t *testing.T) {
	computations := testutil.ToFloat64(Computations.WithLabelValues("series"))
	severe := testutil.ToFloat64(DayClassifications.WithLabelValues(string(models.ClassSevereShortage)))
	excluded := testutil.ToFloat64(ExcludedRecords)

	ObserveMetrics("series",
		models.DailyStaffingMetric{Classification: models.ClassSevereShortage, ExcludedRecords: 2},
		models.DailyStaffingMetric{Classification: models.ClassSevereShortage},
		models.DailyStaffingMetric{Classification: models.ClassStaffingOK},
	)

	if got := testutil.ToFloat64(Computations.WithLabelValues("series")) - computations; got != 1 {
		t.Errorf("Expected 1 computation, got %v", got)
	}
	if got := testutil.ToFloat64(DayClassifications.WithLabelValues(string(models.ClassSevereShortage))) - severe; got != 2 {
		t.Errorf("Expected 2 severe days, got %v", got)
	}
	if got := testutil.ToFloat64(ExcludedRecords) - excluded; got != 2 {
		t.Errorf("Expected 2 excluded records, got %v", got)
	}
}
