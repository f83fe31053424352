package application

import (
	"context"
	"fmt"

	"gather/internal/domain/entities"
	"gather/internal/ports/input"
	"gather/internal/ports/output"
)

var _ input.ParticipantUseCase = (*ParticipantService)(nil)

type ParticipantService struct {
	participantRepo output.ParticipantRepository
	eventRepo       output.EventRepository
}

func NewParticipantService(
	participantRepo output.ParticipantRepository,
	eventRepo output.EventRepository,
) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
	}
}

// JoinEvent confirms attendance. Joining an event twice is a no-op; the
// uniqueness of the (event, user) pair is enforced by the store.
func (s *ParticipantService) JoinEvent(ctx context.Context, userID, eventID int64) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.participantRepo.Add(ctx, eventID, userID); err != nil {
		return nil, fmt.Errorf("join event: %w", err)
	}
	return event, nil
}

// LeaveEvent withdraws attendance. Leaving an event never joined is a no-op.
func (s *ParticipantService) LeaveEvent(ctx context.Context, userID, eventID int64) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.participantRepo.Remove(ctx, eventID, userID); err != nil {
		return nil, fmt.Errorf("leave event: %w", err)
	}
	return event, nil
}
