package handlers

import (
	"net/http"
	"time"

	"github.com/arnavshah/shift-admin-go/pkg/dashboard"
	"github.com/arnavshah/shift-admin-go/pkg/metrics"
	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/arnavshah/shift-admin-go/pkg/repository"
	"github.com/arnavshah/shift-admin-go/pkg/staffing"
	"github.com/gin-gonic/gin"
)

// approvedShifts loads the approved shifts of every day in r
func (h *Handler) approvedShifts(c *gin.Context, r models.DateRange) ([]models.ShiftRequest, error) {
	to := r.To
	if to.IsZero() {
		to = r.From
	}
	return h.Store.ListShiftRequests(c.Request.Context(), repository.ShiftFilter{
		From:   r.From.Format(staffing.DateLayout),
		To:     to.Format(staffing.DateLayout),
		Status: models.StatusApproved,
	})
}

// maxRangeDays bounds every [from, to] query
const maxRangeDays = 366

// parseRange reads from and to. A missing from is not an error and yields a
// zero range. Ranges longer than maxRangeDays are rejected.
func parseRange(c *gin.Context) (models.DateRange, bool) {
	var r models.DateRange
	if v := c.Query("from"); v != "" {
		from, err := parseDate(v)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, "from must be YYYY-MM-DD")
			return r, false
		}
		r.From = from
	}
	if v := c.Query("to"); v != "" {
		to, err := parseDate(v)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, "to must be YYYY-MM-DD")
			return r, false
		}
		r.To = to
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Sub(r.From) >= maxRangeDays*24*time.Hour {
		abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, "range must not exceed 366 days")
		return r, false
	}
	return r, true
}

// series computes metrics for r, loading nothing when r selects no days
func (h *Handler) series(c *gin.Context, r models.DateRange, cfg models.StaffingConfig) ([]models.DailyStaffingMetric, bool) {
	if r.From.IsZero() || (!r.To.IsZero() && r.To.Before(r.From)) {
		return []models.DailyStaffingMetric{}, true
	}
	shifts, err := h.approvedShifts(c, r)
	if err != nil {
		h.storeError(c, err, "Could not load shift requests")
		return nil, false
	}
	out := h.Engine.ComputeSeriesMetric(shifts, r, cfg)
	metrics.ObserveMetrics("series", out...)
	return out, true
}

// DailyMetric returns the staffing metric for one date (default today)
func (h *Handler) DailyMetric(c *gin.Context) {
	cfg, err := h.staffingConfig(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, err.Error())
		return
	}

	date := h.today()
	if v := c.Query("date"); v != "" {
		if date, err = parseDate(v); err != nil {
			abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, "date must be YYYY-MM-DD")
			return
		}
	}

	shifts, err := h.approvedShifts(c, models.DateRange{From: date})
	if err != nil {
		h.storeError(c, err, "Could not load shift requests")
		return
	}
	m := h.Engine.ComputeDailyMetric(shifts, date, cfg)
	metrics.ObserveMetrics("daily", m)
	c.JSON(http.StatusOK, m)
}

// SeriesMetric returns one metric per day of [from, to]
func (h *Handler) SeriesMetric(c *gin.Context) {
	cfg, err := h.staffingConfig(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, err.Error())
		return
	}
	r, ok := parseRange(c)
	if !ok {
		return
	}
	out, ok := h.series(c, r, cfg)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"config": cfg, "metrics": out})
}

// Chart returns the series as labelled chart points
func (h *Handler) Chart(c *gin.Context) {
	cfg, err := h.staffingConfig(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, err.Error())
		return
	}
	r, ok := parseRange(c)
	if !ok {
		return
	}
	out, ok := h.series(c, r, cfg)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": dashboard.Chart(out)})
}

// Calendar returns the Sunday-first month grid (default current month)
func (h *Handler) Calendar(c *gin.Context) {
	cfg, err := h.staffingConfig(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, err.Error())
		return
	}

	month := h.today()
	month = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	if v := c.Query("month"); v != "" {
		if month, err = dashboard.ParseMonth(v, time.UTC); err != nil {
			abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, "month must be YYYY-MM")
			return
		}
	}

	out, ok := h.series(c, dashboard.GridRange(month), cfg)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dashboard.BuildCalendar(month, out))
}
