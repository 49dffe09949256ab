package staffing

import (
	"time"

	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/rs/zerolog"
)

// DateLayout is the calendar date format used by shift records
const DateLayout = "2006-01-02"

// Staffing target used when nothing else is configured
const (
	DefaultTargetStaffCount     = 3
	DefaultAverageHoursPerStaff = 8
)

// Engine turns shift records into per-day staffing metrics. It holds no state
// besides its band table and logger, so one Engine can serve concurrent callers.
type Engine struct {
	bands  Bands
	logger zerolog.Logger
}

// NewEngine creates an engine. A nil or empty table falls back to DefaultBands.
func NewEngine(bands Bands, logger zerolog.Logger) *Engine {
	if len(bands) == 0 {
		bands = DefaultBands()
	}
	return &Engine{
		bands:  bands,
		logger: logger.With().Str("component", "staffing").Logger(),
	}
}

// Bands returns a copy of the engine's classification table
func (e *Engine) Bands() Bands {
	return append(Bands(nil), e.bands...)
}

// ComputeDailyMetric aggregates the approved shifts on date. The shift slice
// is read only and may contain records for any date or status.
func (e *Engine) ComputeDailyMetric(shifts []models.ShiftRequest, date time.Time, cfg models.StaffingConfig) models.DailyStaffingMetric {
	return e.daily(shifts, date.Format(DateLayout), cfg)
}

// ComputeSeriesMetric returns one metric per day of r in ascending order. A
// zero r.From yields an empty series, as does a To earlier than From.
func (e *Engine) ComputeSeriesMetric(shifts []models.ShiftRequest, r models.DateRange, cfg models.StaffingConfig) []models.DailyStaffingMetric {
	days := Days(r)
	if len(days) == 0 {
		return []models.DailyStaffingMetric{}
	}

	byDate := make(map[string][]models.ShiftRequest, len(days))
	for _, s := range shifts {
		byDate[s.Date] = append(byDate[s.Date], s)
	}

	out := make([]models.DailyStaffingMetric, 0, len(days))
	for _, d := range days {
		key := d.Format(DateLayout)
		out = append(out, e.daily(byDate[key], key, cfg))
	}
	return out
}

func (e *Engine) daily(shifts []models.ShiftRequest, date string, cfg models.StaffingConfig) models.DailyStaffingMetric {
	metric := models.DailyStaffingMetric{
		Date:        date,
		TargetHours: cfg.TargetHours(),
	}

	// Minutes are summed as integers so the total does not depend on input order.
	totalMinutes := 0
	staff := make(map[string]struct{})
	for _, s := range shifts {
		if s.Date != date || s.Status != models.StatusApproved {
			continue
		}
		minutes, err := DurationMinutes(s.StartTime, s.EndTime)
		if err != nil {
			metric.ExcludedRecords++
			e.logger.Warn().
				Err(err).
				Str("shift_id", s.ID).
				Str("date", s.Date).
				Str("start_time", s.StartTime).
				Str("end_time", s.EndTime).
				Msg("excluding shift with malformed time")
			continue
		}
		totalMinutes += minutes
		staff[s.StaffName] = struct{}{}
	}

	metric.ActualHours = float64(totalMinutes) / 60
	metric.ActualStaffCount = len(staff)

	if !cfg.Valid() {
		metric.Classification = models.ClassNormal
		return metric
	}

	metric.EquivalentStaff = metric.ActualHours / cfg.AverageHoursPerStaff
	metric.StaffingRatio = metric.EquivalentStaff / cfg.DailyTargetStaffCount
	metric.Classification = e.bands.Classify(metric.StaffingRatio)
	return metric
}

// Days lists the calendar days of r at midnight in From's location
func Days(r models.DateRange) []time.Time {
	if r.From.IsZero() {
		return nil
	}
	start := midnight(r.From)
	end := start
	if !r.To.IsZero() {
		end = midnight(r.To.In(start.Location()))
	}
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
