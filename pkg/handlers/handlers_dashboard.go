package handlers

import (
	"net/http"
	"strconv"

	"github.com/arnavshah/shift-admin-go/pkg/dashboard"
	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/arnavshah/shift-admin-go/pkg/repository"
	"github.com/arnavshah/shift-admin-go/pkg/staffing"
	"github.com/arnavshah/shift-admin-go/pkg/workload"
	"github.com/gin-gonic/gin"
)

const maxDashboardDays = 90

// Dashboard returns the admin overview: pending requests, roster size,
// today's staffing and shortage alerts for the next days.
func (h *Handler) Dashboard(c *gin.Context) {
	days := 7
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxDashboardDays {
			abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, "days must be between 1 and 90")
			return
		}
		days = n
	}

	ctx := c.Request.Context()
	pending, err := h.Store.ListShiftRequests(ctx, repository.ShiftFilter{Status: models.StatusPending})
	if err != nil {
		h.storeError(c, err, "Could not load dashboard")
		return
	}
	staff, err := h.Store.ListStaff(ctx)
	if err != nil {
		h.storeError(c, err, "Could not load dashboard")
		return
	}

	today := h.today()
	upcoming, ok := h.series(c, models.DateRange{From: today, To: today.AddDate(0, 0, days-1)}, h.Defaults)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dashboard.Summary{
		PendingCount: dashboard.CountPending(pending),
		StaffCount:   len(staff),
		Today:        upcoming[0],
		Upcoming:     upcoming,
		Alerts:       dashboard.ShortageAlerts(upcoming),
	})
}

// WorkReport summarises approved hours per staff member over [from, to]
func (h *Handler) WorkReport(c *gin.Context) {
	r, ok := parseRange(c)
	if !ok {
		return
	}
	if r.From.IsZero() {
		abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, "from is required")
		return
	}
	if r.To.IsZero() {
		r.To = r.From
	}
	if r.To.Before(r.From) {
		abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, "to must not be before from")
		return
	}

	shifts, err := h.approvedShifts(c, r)
	if err != nil {
		h.storeError(c, err, "Could not build work report")
		return
	}
	c.JSON(http.StatusOK, workload.Build(shifts, r.From.Format(staffing.DateLayout), r.To.Format(staffing.DateLayout)))
}
