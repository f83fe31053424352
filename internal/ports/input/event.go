package input

import (
	"context"
	"time"

	"gather/internal/domain"
	"gather/internal/domain/entities"
)

// CreateEventInput lists every field accepted when creating an event.
type CreateEventInput struct {
	Title       string
	Date        time.Time
	City        string
	Private     bool
	Description string
	Items       []string
	Image       *domain.ImageUpload
}

// UpdateEventInput is a partial update: nil fields are left untouched.
type UpdateEventInput struct {
	Title       *string
	Date        *time.Time
	City        *string
	Private     *bool
	Description *string
	Items       *[]string
	Image       *domain.ImageUpload
}

// EventDetail is the view-model for the event page.
type EventDetail struct {
	Event        entities.Event
	Owner        entities.User
	HasJoined    bool
	Participants int64
}

// Dashboard is the per-user view of owned and attended events.
type Dashboard struct {
	OwnedEvents         []entities.Event
	ParticipatingEvents []entities.Event
}

type EventUseCase interface {
	// ListEvents returns all events, or the ones whose title contains search
	// (case-insensitive) when search is non-empty. Ordered by id.
	ListEvents(ctx context.Context, search string) ([]entities.Event, error)
	CreateEvent(ctx context.Context, ownerID int64, in CreateEventInput) (*entities.Event, error)
	// GetEventDetail assembles the event page; requesterID 0 means anonymous.
	GetEventDetail(ctx context.Context, eventID, requesterID int64) (*EventDetail, error)
	GetDashboard(ctx context.Context, userID int64) (*Dashboard, error)
	// AuthorizeEdit returns the event when userID owns it, domain.ErrNotOwner otherwise.
	AuthorizeEdit(ctx context.Context, userID, eventID int64) (*entities.Event, error)
	UpdateEvent(ctx context.Context, userID, eventID int64, in UpdateEventInput) (*entities.Event, error)
	DeleteEvent(ctx context.Context, userID, eventID int64) error
}
