package application

import (
	"context"
	"log"
	"strings"

	"gather/internal/domain"
	"gather/internal/domain/entities"
	"gather/internal/ports/input"
	"gather/internal/ports/output"
)

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	eventRepo       output.EventRepository
	participantRepo output.ParticipantRepository
	userRepo        output.UserRepository
	images          output.ImageStore
}

func NewEventService(
	eventRepo output.EventRepository,
	participantRepo output.ParticipantRepository,
	userRepo output.UserRepository,
	images output.ImageStore,
) *EventService {
	return &EventService{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		userRepo:        userRepo,
		images:          images,
	}
}

func (s *EventService) ListEvents(ctx context.Context, search string) ([]entities.Event, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return s.eventRepo.FindAll(ctx)
	}
	return s.eventRepo.SearchByTitle(ctx, search)
}

func (s *EventService) CreateEvent(ctx context.Context, ownerID int64, in input.CreateEventInput) (*entities.Event, error) {
	if err := validateEventFields(in.Title, in.Date, in.City); err != nil {
		return nil, err
	}
	event := &entities.Event{
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(in.Title),
		Date:        in.Date,
		City:        strings.TrimSpace(in.City),
		Private:     in.Private,
		Description: in.Description,
		Items:       in.Items,
	}
	// Image problems never abort the create; the event is simply stored
	// without an image.
	if in.Image != nil {
		name, err := s.images.Store(ctx, *in.Image)
		if err != nil {
			log.Printf("event create: image skipped: %v", err)
		} else {
			event.Image = name
		}
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) GetEventDetail(ctx context.Context, eventID, requesterID int64) (*input.EventDetail, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	owner, err := s.userRepo.FindByID(ctx, event.OwnerID)
	if err != nil {
		return nil, err
	}
	hasJoined := false
	if requesterID != 0 {
		hasJoined, err = s.participantRepo.Exists(ctx, eventID, requesterID)
		if err != nil {
			return nil, err
		}
	}
	count, err := s.participantRepo.CountByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return &input.EventDetail{
		Event:        *event,
		Owner:        *owner,
		HasJoined:    hasJoined,
		Participants: count,
	}, nil
}

func (s *EventService) GetDashboard(ctx context.Context, userID int64) (*input.Dashboard, error) {
	owned, err := s.eventRepo.FindByOwnerID(ctx, userID)
	if err != nil {
		return nil, err
	}
	participating, err := s.eventRepo.FindByParticipantID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &input.Dashboard{
		OwnedEvents:         owned,
		ParticipatingEvents: participating,
	}, nil
}

func (s *EventService) AuthorizeEdit(ctx context.Context, userID, eventID int64) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OwnerID != userID {
		return nil, domain.ErrNotOwner
	}
	return event, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, userID, eventID int64, in input.UpdateEventInput) (*entities.Event, error) {
	// Ownership is re-checked here so callers cannot skip AuthorizeEdit.
	event, err := s.AuthorizeEdit(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	applyEventUpdate(event, in)
	if err := validateEventFields(event.Title, event.Date, event.City); err != nil {
		return nil, err
	}
	oldImage := event.Image
	if in.Image != nil {
		name, err := s.images.Store(ctx, *in.Image)
		if err != nil {
			log.Printf("event update: image skipped: %v", err)
		} else {
			event.Image = name
		}
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	if oldImage != "" && event.Image != oldImage {
		if err := s.images.Remove(ctx, oldImage); err != nil {
			log.Printf("event update: stale image %s not removed: %v", oldImage, err)
		}
	}
	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, userID, eventID int64) error {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.OwnerID != userID {
		return domain.ErrNotOwner
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return err
	}
	if event.Image != "" {
		if err := s.images.Remove(ctx, event.Image); err != nil {
			log.Printf("event delete: image %s not removed: %v", event.Image, err)
		}
	}
	return nil
}

func applyEventUpdate(event *entities.Event, in input.UpdateEventInput) {
	if in.Title != nil {
		event.Title = strings.TrimSpace(*in.Title)
	}
	if in.Date != nil {
		event.Date = *in.Date
	}
	if in.City != nil {
		event.City = strings.TrimSpace(*in.City)
	}
	if in.Private != nil {
		event.Private = *in.Private
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	if in.Items != nil {
		event.Items = *in.Items
	}
}
