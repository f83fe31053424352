package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gather/internal/domain"
	"gather/internal/domain/entities"
)

type pair struct {
	eventID int64
	userID  int64
}

type fakeParticipantRepo struct {
	pairs map[pair]time.Time
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{pairs: make(map[pair]time.Time)}
}

func (r *fakeParticipantRepo) Add(_ context.Context, eventID, userID int64) error {
	key := pair{eventID, userID}
	if _, ok := r.pairs[key]; !ok {
		r.pairs[key] = time.Now()
	}
	return nil
}

func (r *fakeParticipantRepo) Remove(_ context.Context, eventID, userID int64) error {
	delete(r.pairs, pair{eventID, userID})
	return nil
}

func (r *fakeParticipantRepo) Exists(_ context.Context, eventID, userID int64) (bool, error) {
	_, ok := r.pairs[pair{eventID, userID}]
	return ok, nil
}

func (r *fakeParticipantRepo) CountByEventID(_ context.Context, eventID int64) (int64, error) {
	var n int64
	for key := range r.pairs {
		if key.eventID == eventID {
			n++
		}
	}
	return n, nil
}

func (r *fakeParticipantRepo) removeAllForEvent(eventID int64) {
	for key := range r.pairs {
		if key.eventID == eventID {
			delete(r.pairs, key)
		}
	}
}

// fakeEventRepo keeps events in a map and mirrors the storage cascade:
// deleting an event also drops its participation rows.
type fakeEventRepo struct {
	nextID       int64
	events       map[int64]entities.Event
	participants *fakeParticipantRepo
}

func newFakeEventRepo(participants *fakeParticipantRepo) *fakeEventRepo {
	return &fakeEventRepo{events: make(map[int64]entities.Event), participants: participants}
}

func (r *fakeEventRepo) Create(_ context.Context, event *entities.Event) error {
	r.nextID++
	event.ID = r.nextID
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	r.events[event.ID] = *event
	return nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id int64) (*entities.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return &e, nil
}

func (r *fakeEventRepo) sorted(filter func(entities.Event) bool) []entities.Event {
	var out []entities.Event
	for _, e := range r.events {
		if filter(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeEventRepo) FindAll(_ context.Context) ([]entities.Event, error) {
	return r.sorted(func(entities.Event) bool { return true }), nil
}

func (r *fakeEventRepo) SearchByTitle(_ context.Context, query string) ([]entities.Event, error) {
	q := strings.ToLower(query)
	return r.sorted(func(e entities.Event) bool {
		return strings.Contains(strings.ToLower(e.Title), q)
	}), nil
}

func (r *fakeEventRepo) FindByOwnerID(_ context.Context, ownerID int64) ([]entities.Event, error) {
	return r.sorted(func(e entities.Event) bool { return e.OwnerID == ownerID }), nil
}

func (r *fakeEventRepo) FindByParticipantID(_ context.Context, userID int64) ([]entities.Event, error) {
	return r.sorted(func(e entities.Event) bool {
		_, ok := r.participants.pairs[pair{e.ID, userID}]
		return ok
	}), nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *entities.Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return domain.ErrEventNotFound
	}
	r.events[event.ID] = *event
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.events, id)
	r.participants.removeAllForEvent(id)
	return nil
}

type fakeUserRepo struct {
	nextID int64
	users  map[int64]entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]entities.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// fakeImageStore records stored and removed names; failNext makes the next
// Store reject the payload.
type fakeImageStore struct {
	n        int
	stored   []string
	removed  []string
	failNext bool
}

func (s *fakeImageStore) Store(_ context.Context, _ domain.ImageUpload) (string, error) {
	if s.failNext {
		s.failNext = false
		return "", domain.ErrUnsupportedImage
	}
	s.n++
	name := fmt.Sprintf("image-%d.png", s.n)
	s.stored = append(s.stored, name)
	return name, nil
}

func (s *fakeImageStore) Remove(_ context.Context, name string) error {
	s.removed = append(s.removed, name)
	return nil
}
