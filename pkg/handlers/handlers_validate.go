package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/arnavshah/shift-admin-go/pkg/staffing"
	"github.com/gin-gonic/gin"
)

const overnightHint = "overnight shifts must be split per date"

// clockError wraps a time field error, pointing hours of 24 or more at the
// per-date split.
func clockError(field, value string, err error) error {
	if len(value) == 5 && value[2] == ':' && value[:2] >= "24" && value[:2] <= "99" {
		return fmt.Errorf("%s: %w; %s", field, err, overnightHint)
	}
	return fmt.Errorf("%s: %w", field, err)
}

// validateInput checks a submission payload. Only date is required; time
// fields that are present must be valid HH:MM values.
func validateInput(in *models.ShiftRequestInput) error {
	in.Date = strings.TrimSpace(in.Date)
	in.StartTime = strings.TrimSpace(in.StartTime)
	in.EndTime = strings.TrimSpace(in.EndTime)

	if in.Date == "" {
		return errors.New("date is required")
	}
	if _, err := parseDate(in.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD, got %q", in.Date)
	}
	if in.StartTime != "" {
		if _, err := staffing.ParseClock(in.StartTime); err != nil {
			return clockError("startTime", in.StartTime, err)
		}
	}
	if in.EndTime != "" {
		if _, err := staffing.ParseClock(in.EndTime); err != nil {
			return clockError("endTime", in.EndTime, err)
		}
	}
	return nil
}

// ValidateShiftRequest dry-runs submission validation without storing anything
func (h *Handler) ValidateShiftRequest(c *gin.Context) {
	var input models.ShiftRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if err := validateInput(&input); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	resp := gin.H{"valid": true}
	if input.StartTime != "" && input.EndTime != "" {
		minutes, _ := staffing.DurationMinutes(input.StartTime, input.EndTime)
		resp["durationHours"] = float64(minutes) / 60
		if minutes <= 0 {
			resp["warning"] = "endTime is not after startTime; " + overnightHint
		}
	}
	c.JSON(http.StatusOK, resp)
}
