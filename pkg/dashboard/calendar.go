package dashboard

import (
	"errors"
	"fmt"
	"time"

	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/arnavshah/shift-admin-go/pkg/staffing"
)

// ClassOtherMonth marks padding cells outside the displayed month. It is a
// presentation class only and never comes out of the engine.
const ClassOtherMonth = "other-month"

// MonthLayout is the format of the month query parameter
const MonthLayout = "2006-01"

var ErrInvalidMonth = errors.New("invalid month")

// CalendarCell is one square of the month grid
type CalendarCell struct {
	Date    string                      `json:"date"`
	Day     int                         `json:"day"`
	InMonth bool                        `json:"inMonth"`
	Class   string                      `json:"class"`
	Metric  *models.DailyStaffingMetric `json:"metric,omitempty"`
}

// Calendar is a Sunday-first grid of whole weeks covering one month
type Calendar struct {
	Month string           `json:"month"`
	Weeks [][]CalendarCell `json:"weeks"`
}

// ParseMonth parses "YYYY-MM" into the first day of that month in loc
func ParseMonth(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(MonthLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return t, nil
}

// GridRange returns the first and last day shown for the month containing
// first, padded out to whole Sunday-first weeks.
func GridRange(first time.Time) models.DateRange {
	y, m, _ := first.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, first.Location())
	last := start.AddDate(0, 1, -1)
	return models.DateRange{
		From: start.AddDate(0, 0, -int(start.Weekday())),
		To:   last.AddDate(0, 0, int(time.Saturday-last.Weekday())),
	}
}

// BuildCalendar lays metrics out on the grid of month. Metrics are matched by
// date; in-month days without one get no class.
func BuildCalendar(month time.Time, metrics []models.DailyStaffingMetric) Calendar {
	byDate := make(map[string]models.DailyStaffingMetric, len(metrics))
	for _, m := range metrics {
		byDate[m.Date] = m
	}

	cal := Calendar{Month: month.Format(MonthLayout)}
	var week []CalendarCell
	for _, d := range staffing.Days(GridRange(month)) {
		key := d.Format(staffing.DateLayout)
		cell := CalendarCell{
			Date:    key,
			Day:     d.Day(),
			InMonth: d.Month() == month.Month(),
		}
		if !cell.InMonth {
			cell.Class = ClassOtherMonth
		} else if m, ok := byDate[key]; ok {
			m := m
			cell.Class = string(m.Classification)
			cell.Metric = &m
		}

		week = append(week, cell)
		if len(week) == 7 {
			cal.Weeks = append(cal.Weeks, week)
			week = nil
		}
	}
	return cal
}
