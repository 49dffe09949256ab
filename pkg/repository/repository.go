package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrAlreadyExists     = errors.New("record already exists")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

// ShiftFilter selects shift requests by inclusive date range and status.
// Empty fields do not filter.
type ShiftFilter struct {
	From   string
	To     string
	Status models.Status
}

// Match reports whether req passes the filter
func (f ShiftFilter) Match(req models.ShiftRequest) bool {
	if f.From != "" && req.Date < f.From {
		return false
	}
	if f.To != "" && req.Date > f.To {
		return false
	}
	if f.Status != "" && req.Status != f.Status {
		return false
	}
	return true
}

// ShiftStore persists shift requests
type ShiftStore interface {
	CreateShiftRequest(ctx context.Context, req *models.ShiftRequest) error
	GetShiftRequest(ctx context.Context, id string) (*models.ShiftRequest, error)
	ListShiftRequests(ctx context.Context, filter ShiftFilter) ([]models.ShiftRequest, error)
	UpdateShiftStatus(ctx context.Context, id string, status models.Status) (*models.ShiftRequest, error)
}

// StaffStore persists the staff roster
type StaffStore interface {
	CreateStaff(ctx context.Context, staff *models.Staff) error
	GetStaff(ctx context.Context, id string) (*models.Staff, error)
	ListStaff(ctx context.Context) ([]models.Staff, error)
	UpdateStaff(ctx context.Context, staff *models.Staff) error
	DeleteStaff(ctx context.Context, id string) error
}

// Store is the full record store used by the HTTP layer
type Store interface {
	ShiftStore
	StaffStore
	Ping(ctx context.Context) error
	Close() error
}

// PrepareNew stamps a shift request for creation: a generated id when none is
// set, a pending status and a submission timestamp.
func PrepareNew(req *models.ShiftRequest, now time.Time) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	req.Status = models.StatusPending
	req.SubmittedAt = now.UTC()
	req.UpdatedAt = req.SubmittedAt
}

// ValidateTransition allows only pending -> approved and pending -> rejected
func ValidateTransition(from, to models.Status) error {
	if from != models.StatusPending {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, from)
	}
	if to != models.StatusApproved && to != models.StatusRejected {
		return fmt.Errorf("%w: cannot move to %q", ErrInvalidTransition, to)
	}
	return nil
}

// NextStaffID returns the next "S###" identifier after the highest one in use
func NextStaffID(existing []models.Staff) string {
	max := 0
	for _, s := range existing {
		if !strings.HasPrefix(s.ID, "S") {
			continue
		}
		n, err := strconv.Atoi(s.ID[1:])
		if err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("S%03d", max+1)
}
