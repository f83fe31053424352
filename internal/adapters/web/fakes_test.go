package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"gather/internal/config"
	"gather/internal/domain"
	"gather/internal/domain/entities"
	"gather/internal/ports/input"
	"gather/pkg/flash"
)

const testSecret = "web-test-secret-web-test-secret!!"

// stubTranslator echoes the message key so assertions can match on keys
// instead of localized copy.
type stubTranslator struct{}

func (stubTranslator) T(_, key string, _ map[string]any) string { return key }

// stubEvents implements input.EventUseCase with swappable funcs. Unset
// methods fail loudly so a test never silently exercises the wrong path.
type stubEvents struct {
	list      func(ctx context.Context, search string) ([]entities.Event, error)
	create    func(ctx context.Context, ownerID int64, in input.CreateEventInput) (*entities.Event, error)
	detail    func(ctx context.Context, eventID, requesterID int64) (*input.EventDetail, error)
	dashboard func(ctx context.Context, userID int64) (*input.Dashboard, error)
	authorize func(ctx context.Context, userID, eventID int64) (*entities.Event, error)
	update    func(ctx context.Context, userID, eventID int64, in input.UpdateEventInput) (*entities.Event, error)
	delete    func(ctx context.Context, userID, eventID int64) error
}

var _ input.EventUseCase = (*stubEvents)(nil)

func (s *stubEvents) ListEvents(ctx context.Context, search string) ([]entities.Event, error) {
	if s.list == nil {
		panic("unexpected ListEvents call")
	}
	return s.list(ctx, search)
}

func (s *stubEvents) CreateEvent(ctx context.Context, ownerID int64, in input.CreateEventInput) (*entities.Event, error) {
	if s.create == nil {
		panic("unexpected CreateEvent call")
	}
	return s.create(ctx, ownerID, in)
}

func (s *stubEvents) GetEventDetail(ctx context.Context, eventID, requesterID int64) (*input.EventDetail, error) {
	if s.detail == nil {
		panic("unexpected GetEventDetail call")
	}
	return s.detail(ctx, eventID, requesterID)
}

func (s *stubEvents) GetDashboard(ctx context.Context, userID int64) (*input.Dashboard, error) {
	if s.dashboard == nil {
		panic("unexpected GetDashboard call")
	}
	return s.dashboard(ctx, userID)
}

func (s *stubEvents) AuthorizeEdit(ctx context.Context, userID, eventID int64) (*entities.Event, error) {
	if s.authorize == nil {
		panic("unexpected AuthorizeEdit call")
	}
	return s.authorize(ctx, userID, eventID)
}

func (s *stubEvents) UpdateEvent(ctx context.Context, userID, eventID int64, in input.UpdateEventInput) (*entities.Event, error) {
	if s.update == nil {
		panic("unexpected UpdateEvent call")
	}
	return s.update(ctx, userID, eventID, in)
}

func (s *stubEvents) DeleteEvent(ctx context.Context, userID, eventID int64) error {
	if s.delete == nil {
		panic("unexpected DeleteEvent call")
	}
	return s.delete(ctx, userID, eventID)
}

type stubParticipants struct {
	join  func(ctx context.Context, userID, eventID int64) (*entities.Event, error)
	leave func(ctx context.Context, userID, eventID int64) (*entities.Event, error)
}

var _ input.ParticipantUseCase = (*stubParticipants)(nil)

func (s *stubParticipants) JoinEvent(ctx context.Context, userID, eventID int64) (*entities.Event, error) {
	if s.join == nil {
		panic("unexpected JoinEvent call")
	}
	return s.join(ctx, userID, eventID)
}

func (s *stubParticipants) LeaveEvent(ctx context.Context, userID, eventID int64) (*entities.Event, error) {
	if s.leave == nil {
		panic("unexpected LeaveEvent call")
	}
	return s.leave(ctx, userID, eventID)
}

type stubUsers struct {
	register func(ctx context.Context, in input.RegisterInput) (*entities.User, error)
	login    func(ctx context.Context, email, password string) (*entities.User, error)
	get      func(ctx context.Context, id int64) (*entities.User, error)
}

var _ input.UserUseCase = (*stubUsers)(nil)

func (s *stubUsers) Register(ctx context.Context, in input.RegisterInput) (*entities.User, error) {
	if s.register == nil {
		panic("unexpected Register call")
	}
	return s.register(ctx, in)
}

func (s *stubUsers) Login(ctx context.Context, email, password string) (*entities.User, error) {
	if s.login == nil {
		panic("unexpected Login call")
	}
	return s.login(ctx, email, password)
}

func (s *stubUsers) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	if s.get == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.get(ctx, id)
}

// testUser is the account stubUsers hands back for authenticated requests.
var testUser = entities.User{ID: 7, Name: "Ana", Email: "ana@example.com"}

func newTestServer(t *testing.T, events *stubEvents, participants *stubParticipants, users *stubUsers) *Server {
	t.Helper()
	if events == nil {
		events = &stubEvents{}
	}
	if participants == nil {
		participants = &stubParticipants{}
	}
	if users == nil {
		users = &stubUsers{}
	}
	cfg := &config.Config{
		Addr:          ":0",
		SessionSecret: testSecret,
		PublicDir:     t.TempDir(),
	}
	return New(cfg, events, participants, users, stubTranslator{})
}

func do(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

// asUser attaches a valid session cookie for testUser.
func asUser(t *testing.T, req *http.Request) *http.Request {
	t.Helper()
	token, err := NewSessionManager(testSecret, time.Hour).Issue(testUser.ID)
	if err != nil {
		t.Fatalf("issue session token: %v", err)
	}
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	return req
}

// loggedIn returns a stubUsers that resolves testUser's session.
func loggedIn() *stubUsers {
	return &stubUsers{
		get: func(_ context.Context, id int64) (*entities.User, error) {
			if id != testUser.ID {
				return nil, domain.ErrUserNotFound
			}
			u := testUser
			return &u, nil
		},
	}
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// poppedFlash reads the flash message the response queued for the next page.
func poppedFlash(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name != "gather_flash" || c.Value == "" {
			continue
		}
		next := httptest.NewRequest(http.MethodGet, "/", nil)
		next.AddCookie(c)
		return flash.Pop(httptest.NewRecorder(), next)
	}
	return ""
}
