package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/arnavshah/shift-admin-go/pkg/repository"
	"github.com/rs/zerolog"
)

// Result counts what Load created
type Result struct {
	Staff         int
	ShiftRequests int
	Skipped       int
}

// Staff is the demo roster
func Staff() []models.Staff {
	return []models.Staff{
		{ID: "S001", Name: "山田 太郎", Email: "yamada.taro@example.com", Role: "店長"},
		{ID: "S002", Name: "佐藤 花子", Email: "sato.hanako@example.com", Role: "アルバイトリーダー"},
		{ID: "S003", Name: "鈴木 一郎", Email: "suzuki.ichiro@example.com", Role: "正社員"},
		{ID: "S004", Name: "田中 次郎", Email: "tanaka.jiro@example.com", Role: "アルバイト"},
	}
}

func shift(id, date, name, start, end string, status models.Status) models.ShiftRequest {
	return models.ShiftRequest{ID: "demo-" + id, Date: date, StaffName: name, StartTime: start, EndTime: end, Status: status}
}

// ShiftRequests is the demo request set. 2025-05-12 is exactly staffed,
// 2025-05-13 overstaffed and 2025-05-14 slightly short against 3 x 8h.
func ShiftRequests() []models.ShiftRequest {
	return []models.ShiftRequest{
		shift("1", "2025-05-28", "山田 太郎", "09:00", "17:00", models.StatusPending),
		shift("3", "2025-05-29", "鈴木 一郎", "18:00", "23:00", models.StatusPending),
		shift("4", "2025-05-29", "高橋 次郎", "09:00", "15:00", models.StatusRejected),
		shift("5", "2025-05-30", "田中 三郎", "10:00", "18:00", models.StatusPending),
		shift("6", "2025-05-30", "伊藤 五郎", "08:00", "16:00", models.StatusApproved),

		shift("7", "2025-05-12", "John Doe", "09:00", "17:00", models.StatusApproved),
		shift("8", "2025-05-12", "Jane Smith", "09:00", "17:00", models.StatusApproved),
		shift("9", "2025-05-12", "Mike Lee", "09:00", "17:00", models.StatusApproved),

		shift("10", "2025-05-13", "Alice Brown", "09:00", "17:00", models.StatusApproved),
		shift("11", "2025-05-13", "Bob Green", "09:00", "17:00", models.StatusApproved),
		shift("12", "2025-05-13", "Carol White", "09:00", "17:00", models.StatusApproved),
		shift("13", "2025-05-13", "David Black", "09:00", "17:00", models.StatusApproved),

		shift("14", "2025-05-14", "Eve Gray", "09:00", "17:00", models.StatusApproved),
		shift("15", "2025-05-14", "Frank Blue", "09:00", "17:00", models.StatusApproved),
		shift("16", "2025-05-14", "Grace Red", "09:00", "13:00", models.StatusApproved),
	}
}

// Load writes the demo data into store. Records that already exist are
// skipped, so running it twice is harmless.
func Load(ctx context.Context, store repository.Store, logger zerolog.Logger) (Result, error) {
	var res Result

	for _, s := range Staff() {
		s := s
		err := store.CreateStaff(ctx, &s)
		switch {
		case errors.Is(err, repository.ErrAlreadyExists):
			res.Skipped++
		case err != nil:
			return res, fmt.Errorf("seed staff %s: %w", s.ID, err)
		default:
			res.Staff++
		}
	}

	for _, demo := range ShiftRequests() {
		if _, err := store.GetShiftRequest(ctx, demo.ID); err == nil {
			res.Skipped++
			continue
		} else if !errors.Is(err, repository.ErrNotFound) {
			return res, fmt.Errorf("seed shift %s: %w", demo.ID, err)
		}

		// Requests are always created pending; decided ones go through the
		// normal transition afterwards.
		target := demo.Status
		req := demo
		if err := store.CreateShiftRequest(ctx, &req); err != nil {
			return res, fmt.Errorf("seed shift %s: %w", demo.ID, err)
		}
		if target != models.StatusPending {
			if _, err := store.UpdateShiftStatus(ctx, req.ID, target); err != nil {
				return res, fmt.Errorf("seed shift %s: %w", demo.ID, err)
			}
		}
		res.ShiftRequests++
	}

	logger.Info().
		Int("staff", res.Staff).
		Int("shift_requests", res.ShiftRequests).
		Int("skipped", res.Skipped).
		Msg("demo data loaded")
	return res, nil
}
