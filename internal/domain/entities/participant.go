package entities

import "time"

// Participant records a user's confirmed attendance at an event.
// Identity is the (EventID, UserID) pair.
type Participant struct {
	EventID  int64
	UserID   int64
	JoinedAt time.Time
}
