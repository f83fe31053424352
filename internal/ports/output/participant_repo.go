package output

import "context"

type ParticipantRepository interface {
	// Add is a no-op when the (event, user) pair is already present.
	Add(ctx context.Context, eventID, userID int64) error
	// Remove is a no-op when the pair is absent.
	Remove(ctx context.Context, eventID, userID int64) error
	Exists(ctx context.Context, eventID, userID int64) (bool, error)
	CountByEventID(ctx context.Context, eventID int64) (int64, error)
}
