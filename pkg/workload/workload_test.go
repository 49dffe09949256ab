package workload

import (
	"testing"

	"github.com/arnavshah/shift-admin-go/pkg/models"
)

func approved(id, name, date, start, end string) models.ShiftRequest {
	return models.ShiftRequest{ID: id, StaffName: name, Date: date, StartTime: start, EndTime: end, Status: models.StatusApproved}
}

func TestBuild(t *testing.T) {
	shifts := []models.ShiftRequest{
		approved("1", "Bob", "2025-05-12", "09:00", "17:00"),
		approved("2", "Alice", "2025-05-12", "10:00", "14:00"),
		approved("3", "Alice", "2025-05-13", "10:00", "14:00"),
		{ID: "4", StaffName: "Carol", Date: "2025-05-12", StartTime: "09:00", EndTime: "17:00", Status: models.StatusPending},
	}

	r := Build(shifts, "2025-05-12", "2025-05-13")

	if len(r.Staff) != 2 {
		t.Fatalf("Expected 2 staff entries, got %d", len(r.Staff))
	}
	if r.Staff[0].StaffName != "Alice" || r.Staff[1].StaffName != "Bob" {
		t.Errorf("Expected staff sorted by name, got %s, %s", r.Staff[0].StaffName, r.Staff[1].StaffName)
	}
	if r.Staff[0].Hours != 8 || r.Staff[0].ShiftCount != 2 {
		t.Errorf("Expected Alice 8h over 2 shifts, got %fh over %d", r.Staff[0].Hours, r.Staff[0].ShiftCount)
	}
	if len(r.Staff[0].Dates) != 2 {
		t.Errorf("Expected Alice on 2 dates, got %v", r.Staff[0].Dates)
	}
	if r.TotalHours != 16 {
		t.Errorf("Expected 16 total hours, got %f", r.TotalHours)
	}
	if r.FairnessScore != 100 {
		t.Errorf("Expected perfectly fair split, got %f", r.FairnessScore)
	}
}

func TestBuild_Overlap(t *testing.T) {
	shifts := []models.ShiftRequest{
		approved("a", "Alice", "2025-05-12", "09:00", "13:00"),
		approved("b", "Alice", "2025-05-12", "12:00", "16:00"),
		approved("c", "Alice", "2025-05-12", "16:00", "18:00"),
		approved("d", "Alice", "2025-05-13", "12:00", "16:00"),
	}

	r := Build(shifts, "2025-05-12", "2025-05-13")

	if len(r.Conflicts) != 1 {
		t.Fatalf("Expected 1 conflict, got %d", len(r.Conflicts))
	}
	c := r.Conflicts[0]
	if c.Date != "2025-05-12" || c.ShiftIDs[0] != "a" || c.ShiftIDs[1] != "b" {
		t.Errorf("Unexpected conflict %+v", c)
	}
}

func TestBuild_Excluded(t *testing.T) {
	shifts := []models.ShiftRequest{
		approved("1", "Alice", "2025-05-12", "9am", "17:00"),
		approved("2", "Bob", "2025-05-12", "09:00", "17:60"),
		approved("3", "Bob", "2025-05-12", "09:00", "12:00"),
	}

	r := Build(shifts, "2025-05-12", "")
	if r.ExcludedRecords != 2 {
		t.Errorf("Expected 2 excluded records, got %d", r.ExcludedRecords)
	}
	if len(r.Staff) != 1 || r.Staff[0].Hours != 3 {
		t.Errorf("Expected only Bob with 3h, got %+v", r.Staff)
	}
}

func TestCalculateFairnessScore(t *testing.T) {
	tests := []struct {
		name   string
		shifts []models.ShiftRequest
		want   float64
	}{
		{"empty", nil, 100},
		{"even", []models.ShiftRequest{
			approved("1", "A", "2025-05-12", "09:00", "13:00"),
			approved("2", "B", "2025-05-12", "09:00", "13:00"),
		}, 100},
		// mean 4, stddev 4 -> 0
		{"lopsided", []models.ShiftRequest{
			approved("1", "A", "2025-05-12", "09:00", "17:00"),
			approved("2", "B", "2025-05-12", "09:00", "09:00"),
		}, 0},
		// mean 3, stddev 1 -> 66.67
		{"partial", []models.ShiftRequest{
			approved("1", "A", "2025-05-12", "09:00", "13:00"),
			approved("2", "B", "2025-05-12", "09:00", "11:00"),
		}, 100 * (1 - 1.0/3.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			b.Add(tt.shifts)
			got := b.CalculateFairnessScore()
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("CalculateFairnessScore() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestOverlap(t *testing.T) {
	b := NewBuilder()
	if !b.Overlap(540, 780, 720, 960) {
		t.Error("Expected 09:00-13:00 and 12:00-16:00 to overlap")
	}
	if b.Overlap(540, 780, 780, 960) {
		t.Error("Expected touching ranges not to overlap")
	}
}
