package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gather/internal/domain"
	"gather/internal/domain/entities"
	"gather/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO events (owner_id, title, event_date, city, private, description, items, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		event.OwnerID, event.Title, event.Date, event.City, event.Private,
		event.Description, event.Items, nullText(event.Image),
	)
	if err := row.Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*entities.Event, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return &e, nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return collectEvents(rows)
}

// SearchByTitle matches the query as a case-insensitive substring of the title.
func (r *EventRepository) SearchByTitle(ctx context.Context, query string) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+eventColumns+` FROM events WHERE title ILIKE '%' || $1 || '%' ORDER BY id`,
		query)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	return collectEvents(rows)
}

func (r *EventRepository) FindByOwnerID(ctx context.Context, ownerID int64) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+eventColumns+` FROM events WHERE owner_id = $1 ORDER BY id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get events by owner id: %w", err)
	}
	return collectEvents(rows)
}

func (r *EventRepository) FindByParticipantID(ctx context.Context, userID int64) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT e.id, e.owner_id, e.title, e.event_date, e.city, e.private,
		       e.description, e.items, e.image, e.created_at, e.updated_at
		FROM events e
		JOIN event_user eu ON eu.event_id = e.id
		WHERE eu.user_id = $1
		ORDER BY e.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("get events by participant id: %w", err)
	}
	return collectEvents(rows)
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE events
		SET title = $2, event_date = $3, city = $4, private = $5,
		    description = $6, items = $7, image = $8, updated_at = now()
		WHERE id = $1`,
		event.ID, event.Title, event.Date, event.City, event.Private,
		event.Description, event.Items, nullText(event.Image),
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// Delete removes the event and its participation rows in one transaction.
// The event_user foreign key also declares ON DELETE CASCADE; the explicit
// delete keeps the cascade visible in the storage layer.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("delete event: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM event_user WHERE event_id = $1`, id); err != nil {
		return fmt.Errorf("delete event participants: %w", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("delete event: commit: %w", err)
	}
	return nil
}
