package handlers

import (
	"errors"
	"net/http"

	"github.com/arnavshah/shift-admin-go/pkg/metrics"
	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/arnavshah/shift-admin-go/pkg/repository"
	"github.com/gin-gonic/gin"
)

// AnonymousStaffName is stored when a submission names nobody
const AnonymousStaffName = "anonymous"

// SubmitShiftRequest stores a new pending shift request and fires the
// creation trigger.
func (h *Handler) SubmitShiftRequest(c *gin.Context) {
	var input models.ShiftRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		metrics.ShiftRequestsRejectedInput.Inc()
		abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, "invalid request body")
		return
	}
	if err := validateInput(&input); err != nil {
		metrics.ShiftRequestsRejectedInput.Inc()
		abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, err.Error())
		return
	}

	ctx := c.Request.Context()
	name, err := h.resolveStaffName(c, input)
	if err != nil {
		h.Logger.Error().Err(err).Str("staff_id", input.StaffID).Msg("staff lookup failed")
		abortWithError(c, http.StatusInternalServerError, CodeInternal, "Failed to submit shift request")
		return
	}

	req := models.ShiftRequest{
		Date:      input.Date,
		StaffID:   input.StaffID,
		StaffName: name,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	}
	if err := h.Store.CreateShiftRequest(ctx, &req); err != nil {
		h.Logger.Error().Err(err).Str("date", req.Date).Msg("failed to store shift request")
		abortWithError(c, http.StatusInternalServerError, CodeInternal, "Failed to submit shift request")
		return
	}
	metrics.ShiftRequestsSubmitted.Inc()

	if h.Notifier != nil {
		if err := h.Notifier.ShiftRequestCreated(ctx, req); err != nil {
			metrics.NotificationFailures.Inc()
			h.Logger.Error().Err(err).Str("request_id", req.ID).Msg("creation trigger failed")
		}
	}

	c.JSON(http.StatusCreated, models.SubmitResponse{
		Success: true,
		Message: "Shift request submitted successfully.",
		DocID:   req.ID,
	})
}

func (h *Handler) resolveStaffName(c *gin.Context, input models.ShiftRequestInput) (string, error) {
	if input.StaffName != "" {
		return input.StaffName, nil
	}
	if input.StaffID == "" {
		return AnonymousStaffName, nil
	}
	staff, err := h.Store.GetStaff(c.Request.Context(), input.StaffID)
	if errors.Is(err, repository.ErrNotFound) {
		return AnonymousStaffName, nil
	}
	if err != nil {
		return "", err
	}
	return staff.Name, nil
}

// ListShiftRequests lists requests in [from, to] with an optional status
func (h *Handler) ListShiftRequests(c *gin.Context) {
	filter := repository.ShiftFilter{
		From:   c.Query("from"),
		To:     c.Query("to"),
		Status: models.Status(c.Query("status")),
	}
	if filter.From != "" {
		if _, err := parseDate(filter.From); err != nil {
			abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, "from must be YYYY-MM-DD")
			return
		}
		if filter.To == "" {
			filter.To = filter.From
		}
	}
	if filter.To != "" {
		if _, err := parseDate(filter.To); err != nil {
			abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, "to must be YYYY-MM-DD")
			return
		}
	}
	if filter.Status != "" && !filter.Status.Valid() {
		abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, "unknown status")
		return
	}

	reqs, err := h.Store.ListShiftRequests(c.Request.Context(), filter)
	if err != nil {
		h.storeError(c, err, "Could not list shift requests")
		return
	}
	c.JSON(http.StatusOK, gin.H{"shiftRequests": reqs})
}

// GetShiftRequest returns one shift request
func (h *Handler) GetShiftRequest(c *gin.Context) {
	req, err := h.Store.GetShiftRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeError(c, err, "Could not get shift request")
		return
	}
	c.JSON(http.StatusOK, req)
}

// ApproveShiftRequest moves a pending request to approved
func (h *Handler) ApproveShiftRequest(c *gin.Context) {
	h.updateStatus(c, models.StatusApproved)
}

// RejectShiftRequest moves a pending request to rejected
func (h *Handler) RejectShiftRequest(c *gin.Context) {
	h.updateStatus(c, models.StatusRejected)
}

func (h *Handler) updateStatus(c *gin.Context, status models.Status) {
	req, err := h.Store.UpdateShiftStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		h.storeError(c, err, "Could not update shift request")
		return
	}
	metrics.StatusTransitions.WithLabelValues(string(status)).Inc()
	h.Logger.Info().Str("request_id", req.ID).Str("status", string(status)).Msg("shift request decided")
	c.JSON(http.StatusOK, req)
}
