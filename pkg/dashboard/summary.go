package dashboard

import (
	"math"

	"github.com/arnavshah/shift-admin-go/pkg/models"
)

// Alert flags an upcoming day that is seriously short of staff
type Alert struct {
	Date           string                `json:"date"`
	Classification models.Classification `json:"classification"`
	StaffingRatio  float64               `json:"staffingRatio"`
	ShortfallHours float64               `json:"shortfallHours"`
}

// Summary backs the admin dashboard
type Summary struct {
	PendingCount int                          `json:"pendingCount"`
	StaffCount   int                          `json:"staffCount"`
	Today        models.DailyStaffingMetric   `json:"today"`
	Upcoming     []models.DailyStaffingMetric `json:"upcoming"`
	Alerts       []Alert                      `json:"alerts"`
}

// ShortageAlerts returns an alert for each severe or moderate shortage day
func ShortageAlerts(metrics []models.DailyStaffingMetric) []Alert {
	alerts := []Alert{}
	for _, m := range metrics {
		if m.Classification != models.ClassSevereShortage && m.Classification != models.ClassModerateShortage {
			continue
		}
		alerts = append(alerts, Alert{
			Date:           m.Date,
			Classification: m.Classification,
			StaffingRatio:  m.StaffingRatio,
			ShortfallHours: math.Max(0, m.TargetHours-m.ActualHours),
		})
	}
	return alerts
}

// CountPending counts requests still waiting for a decision
func CountPending(reqs []models.ShiftRequest) int {
	n := 0
	for _, r := range reqs {
		if r.Status == models.StatusPending {
			n++
		}
	}
	return n
}
