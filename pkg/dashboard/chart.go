package dashboard

import (
	"time"

	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/arnavshah/shift-admin-go/pkg/staffing"
)

// LabelLayout renders chart labels as e.g. "05/12 (Mon)"
const LabelLayout = "01/02 (Mon)"

// ChartPoint is one day on the staffing chart: actual hours as a bar,
// target hours and headcount as lines.
type ChartPoint struct {
	Label            string                `json:"label"`
	Date             string                `json:"date"`
	ActualHours      float64               `json:"actualHours"`
	TargetHours      float64               `json:"targetHours"`
	ActualStaffCount int                   `json:"actualStaffCount"`
	Classification   models.Classification `json:"classification"`
}

// Chart converts a metric series into chart points, keeping its order
func Chart(metrics []models.DailyStaffingMetric) []ChartPoint {
	points := make([]ChartPoint, 0, len(metrics))
	for _, m := range metrics {
		label := m.Date
		if d, err := time.Parse(staffing.DateLayout, m.Date); err == nil {
			label = d.Format(LabelLayout)
		}
		points = append(points, ChartPoint{
			Label:            label,
			Date:             m.Date,
			ActualHours:      m.ActualHours,
			TargetHours:      m.TargetHours,
			ActualStaffCount: m.ActualStaffCount,
			Classification:   m.Classification,
		})
	}
	return points
}
