package notify

import (
	"context"
	"log/slog"

	"appointment-scheduler/internal/usecase/shared"
)

// LogNotifier writes notices to the log instead of delivering them.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, notice shared.Notice) error {
	n.logger.InfoContext(ctx, "owner notice",
		"to", notice.OwnerEmail,
		"subject", Subject(notice),
		"appointment_id", notice.AppointmentID,
		"date", notice.Date,
		"time", notice.Time)
	return nil
}
