package database

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"gather/internal/domain/entities"
)

const eventColumns = `id, owner_id, title, event_date, city, private, description, items, image, created_at, updated_at`

func scanEvent(row pgx.Row) (entities.Event, error) {
	var (
		e     entities.Event
		image pgtype.Text
	)
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.Title, &e.Date, &e.City, &e.Private,
		&e.Description, &e.Items, &image, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return entities.Event{}, err
	}
	if image.Valid {
		e.Image = image.String
	}
	return e, nil
}

func collectEvents(rows pgx.Rows) ([]entities.Event, error) {
	defer rows.Close()
	var out []entities.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// nullText maps an empty string to SQL NULL.
func nullText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

const userColumns = `id, name, email, password_hash, created_at, updated_at`

func scanUser(row pgx.Row) (entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}
