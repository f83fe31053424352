package output

import (
	"context"

	"gather/internal/domain/entities"
)

type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id int64) (*entities.Event, error)
	FindAll(ctx context.Context) ([]entities.Event, error)
	SearchByTitle(ctx context.Context, query string) ([]entities.Event, error)
	FindByOwnerID(ctx context.Context, ownerID int64) ([]entities.Event, error)
	FindByParticipantID(ctx context.Context, userID int64) ([]entities.Event, error)
	Update(ctx context.Context, event *entities.Event) error
	// Delete removes the event and its participation rows in one transaction.
	Delete(ctx context.Context, id int64) error
}
