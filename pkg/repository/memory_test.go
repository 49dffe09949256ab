package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/arnavshah/shift-admin-go/pkg/models"
)

func TestMemoryStore_CreateForcesPending(t *testing.T) {
	store := NewMemoryStore()
	req := &models.ShiftRequest{Date: "2025-05-28", StaffName: "Taro", StartTime: "09:00", EndTime: "17:00", Status: models.StatusApproved}

	if err := store.CreateShiftRequest(context.Background(), req); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if req.ID == "" {
		t.Errorf("Expected generated id")
	}
	if req.Status != models.StatusPending {
		t.Errorf("Expected pending status, got %s", req.Status)
	}
	if req.SubmittedAt.IsZero() {
		t.Errorf("Expected submission timestamp")
	}

	got, err := store.GetShiftRequest(context.Background(), req.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.Status != models.StatusPending {
		t.Errorf("Expected stored status pending, got %s", got.Status)
	}
}

func TestMemoryStore_StatusTransitions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	req := &models.ShiftRequest{Date: "2025-05-28", StaffName: "Taro", StartTime: "09:00", EndTime: "17:00"}
	if err := store.CreateShiftRequest(ctx, req); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	updated, err := store.UpdateShiftStatus(ctx, req.ID, models.StatusApproved)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if updated.Status != models.StatusApproved {
		t.Errorf("Expected approved, got %s", updated.Status)
	}

	if _, err := store.UpdateShiftStatus(ctx, req.ID, models.StatusRejected); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition out of a terminal state, got %v", err)
	}

	if _, err := store.UpdateShiftStatus(ctx, "missing", models.StatusApproved); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_ListFilter(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for _, r := range []models.ShiftRequest{
		{ID: "b", Date: "2025-05-12", StaffName: "B", StartTime: "13:00", EndTime: "17:00"},
		{ID: "a", Date: "2025-05-12", StaffName: "A", StartTime: "09:00", EndTime: "17:00"},
		{ID: "c", Date: "2025-05-13", StaffName: "C", StartTime: "09:00", EndTime: "17:00"},
		{ID: "d", Date: "2025-05-20", StaffName: "D", StartTime: "09:00", EndTime: "17:00"},
	} {
		r := r
		if err := store.CreateShiftRequest(ctx, &r); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	if _, err := store.UpdateShiftStatus(ctx, "c", models.StatusApproved); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got, err := store.ListShiftRequests(ctx, ShiftFilter{From: "2025-05-12", To: "2025-05-13"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 requests, got %d", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Errorf("Unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}

	approved, _ := store.ListShiftRequests(ctx, ShiftFilter{Status: models.StatusApproved})
	if len(approved) != 1 || approved[0].ID != "c" {
		t.Errorf("Expected only c to be approved, got %+v", approved)
	}
}

func TestMemoryStore_StaffCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s := &models.Staff{ID: "S001", Name: "Yamada Taro", Role: "manager"}
	if err := store.CreateStaff(ctx, s); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := store.CreateStaff(ctx, &models.Staff{ID: "S001", Name: "dup"}); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists, got %v", err)
	}

	s.Email = "yamada@example.com"
	if err := store.UpdateStaff(ctx, s); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	got, _ := store.GetStaff(ctx, "S001")
	if got.Email != "yamada@example.com" {
		t.Errorf("Expected updated email, got %q", got.Email)
	}

	if err := store.DeleteStaff(ctx, "S001"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := store.GetStaff(ctx, "S001"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if err := store.UpdateStaff(ctx, s); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound updating deleted staff, got %v", err)
	}
}

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		from, to models.Status
		ok       bool
	}{
		{models.StatusPending, models.StatusApproved, true},
		{models.StatusPending, models.StatusRejected, true},
		{models.StatusPending, models.StatusPending, false},
		{models.StatusApproved, models.StatusRejected, false},
		{models.StatusRejected, models.StatusApproved, false},
		{models.StatusPending, "cancelled", false},
	}
	for _, tt := range tests {
		err := ValidateTransition(tt.from, tt.to)
		if tt.ok && err != nil {
			t.Errorf("%s -> %s: unexpected error %v", tt.from, tt.to, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("%s -> %s: expected ErrInvalidTransition, got %v", tt.from, tt.to, err)
		}
	}
}

func TestNextStaffID(t *testing.T) {
	if got := NextStaffID(nil); got != "S001" {
		t.Errorf("Expected S001, got %s", got)
	}
	existing := []models.Staff{{ID: "S001"}, {ID: "S004"}, {ID: "custom"}}
	if got := NextStaffID(existing); got != "S005" {
		t.Errorf("Expected S005, got %s", got)
	}
}
