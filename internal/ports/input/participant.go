package input

import (
	"context"

	"gather/internal/domain/entities"
)

type ParticipantUseCase interface {
	// JoinEvent idempotently confirms userID's attendance; the joined event is
	// returned for confirmation messages.
	JoinEvent(ctx context.Context, userID, eventID int64) (*entities.Event, error)
	// LeaveEvent idempotently withdraws userID's attendance.
	LeaveEvent(ctx context.Context, userID, eventID int64) (*entities.Event, error)
}
