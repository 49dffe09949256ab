package notify

import (
	"context"
	"time"

	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/rs/zerolog"
)

// EventShiftRequestCreated is the event type published after a request is stored
const EventShiftRequestCreated = "shift_request.created"

// Event is the payload handed to downstream consumers
type Event struct {
	Type         string              `json:"type"`
	ShiftRequest models.ShiftRequest `json:"shiftRequest"`
	OccurredAt   time.Time           `json:"occurredAt"`
}

// Notifier is the creation trigger: it runs after a shift request has been
// persisted and must not change the stored data.
type Notifier interface {
	ShiftRequestCreated(ctx context.Context, req models.ShiftRequest) error
}

// LogNotifier records creation events in the log only
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a notifier that writes to logger
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With().Str("component", "notify").Logger()}
}

func (n *LogNotifier) ShiftRequestCreated(ctx context.Context, req models.ShiftRequest) error {
	logEvent(n.logger, req).Msg("new shift request created")
	return nil
}

func logEvent(logger zerolog.Logger, req models.ShiftRequest) *zerolog.Event {
	return logger.Info().
		Str("request_id", req.ID).
		Str("staff_id", req.StaffID).
		Str("staff_name", req.StaffName).
		Str("date", req.Date).
		Str("start_time", req.StartTime).
		Str("end_time", req.EndTime)
}
