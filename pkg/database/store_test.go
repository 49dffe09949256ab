package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/arnavshah/shift-admin-go/pkg/repository"
	"github.com/rs/zerolog"
)

func newTestStore(t *testing.T, name string) *Store {
	t.Helper()
	db, err := Open("", fmt.Sprintf("file:%s?mode=memory&cache=shared", name), zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	s := NewStore(db)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_ShiftRequestLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, "lifecycle")

	req := &models.ShiftRequest{Date: "2025-05-12", StaffName: "John Doe", StartTime: "09:00", EndTime: "17:00", Status: models.StatusApproved}
	if err := s.CreateShiftRequest(ctx, req); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if req.Status != models.StatusPending {
		t.Errorf("Expected status forced to pending, got %s", req.Status)
	}

	got, err := s.GetShiftRequest(ctx, req.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.StaffName != "John Doe" || got.Status != models.StatusPending {
		t.Errorf("Unexpected stored request %+v", got)
	}

	updated, err := s.UpdateShiftStatus(ctx, req.ID, models.StatusApproved)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if updated.Status != models.StatusApproved {
		t.Errorf("Expected approved, got %s", updated.Status)
	}

	if _, err := s.UpdateShiftStatus(ctx, req.ID, models.StatusRejected); !errors.Is(err, repository.ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition, got %v", err)
	}
	if _, err := s.UpdateShiftStatus(ctx, "missing", models.StatusRejected); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetShiftRequest(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestStore_ListShiftRequests(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, "list")

	for _, r := range []models.ShiftRequest{
		{ID: "2", Date: "2025-05-13", StaffName: "B", StartTime: "09:00", EndTime: "17:00"},
		{ID: "1", Date: "2025-05-12", StaffName: "A", StartTime: "09:00", EndTime: "17:00"},
		{ID: "3", Date: "2025-05-30", StaffName: "C", StartTime: "09:00", EndTime: "17:00"},
	} {
		r := r
		if err := s.CreateShiftRequest(ctx, &r); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	if _, err := s.UpdateShiftStatus(ctx, "2", models.StatusApproved); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got, err := s.ListShiftRequests(ctx, repository.ShiftFilter{From: "2025-05-12", To: "2025-05-20"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Errorf("Unexpected result %+v", got)
	}

	approved, err := s.ListShiftRequests(ctx, repository.ShiftFilter{Status: models.StatusApproved})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(approved) != 1 || approved[0].ID != "2" {
		t.Errorf("Expected only request 2, got %+v", approved)
	}
}

func TestStore_StaffCRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, "staff")

	staff := &models.Staff{ID: "S001", Name: "Yamada Taro", Email: "yamada.taro@example.com", Role: "manager"}
	if err := s.CreateStaff(ctx, staff); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := s.CreateStaff(ctx, &models.Staff{ID: "S001", Name: "dup"}); !errors.Is(err, repository.ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists, got %v", err)
	}

	staff.Role = "part-time"
	if err := s.UpdateStaff(ctx, staff); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	got, err := s.GetStaff(ctx, "S001")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.Role != "part-time" {
		t.Errorf("Expected updated role, got %q", got.Role)
	}

	list, err := s.ListStaff(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("Expected 1 staff member, got %d (%v)", len(list), err)
	}

	if err := s.DeleteStaff(ctx, "S001"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := s.DeleteStaff(ctx, "S001"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
	if err := s.UpdateStaff(ctx, staff); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound updating deleted staff, got %v", err)
	}
}

func TestStore_Ping(t *testing.T) {
	s := newTestStore(t, "ping")
	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("Unexpected ping error: %v", err)
	}
}
