package staffing

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "17:00", want: 1020},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "25:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "9:00", wantErr: true},
		{in: "09:00:00", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "+1:00", wantErr: true},
		{in: "09-00", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidClock) {
					t.Errorf("Expected ErrInvalidClock for %q, got %v", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %d minutes, got %d", tt.want, got)
			}
		})
	}
}

func TestDurationMinutes_NoRollover(t *testing.T) {
	got, err := DurationMinutes("22:00", "02:00")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != -1200 {
		t.Errorf("Expected -1200 minutes for a shift crossing midnight, got %d", got)
	}
}

func TestDurationMinutes_ReportsField(t *testing.T) {
	if _, err := DurationMinutes("09:00", "25:00"); err == nil || !errors.Is(err, ErrInvalidClock) {
		t.Errorf("Expected wrapped ErrInvalidClock, got %v", err)
	}
}
