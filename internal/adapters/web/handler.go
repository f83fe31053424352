package web

import (
	"net/http"

	"github.com/labstack/echo/v5"

	"gather/internal/domain/entities"
	"gather/internal/ports/input"
	"gather/internal/ports/output"
	"gather/pkg/flash"
)

const userContextKey = "currentUser"

// Handler serves the HTML pages using the use cases behind the input ports.
type Handler struct {
	events       input.EventUseCase
	participants input.ParticipantUseCase
	users        input.UserUseCase
	translator   output.T
	sessions     *SessionManager
	renderer     *renderer
	imageDir     string
}

func NewHandler(
	events input.EventUseCase,
	participants input.ParticipantUseCase,
	users input.UserUseCase,
	translator output.T,
	sessions *SessionManager,
	imageDir string,
) *Handler {
	return &Handler{
		events:       events,
		participants: participants,
		users:        users,
		translator:   translator,
		sessions:     sessions,
		renderer:     newRenderer(),
		imageDir:     imageDir,
	}
}

// currentUser returns the authenticated user resolved by the session
// middleware, or nil for guests.
func currentUser(c echo.Context) *entities.User {
	u, _ := c.Get(userContextKey).(*entities.User)
	return u
}

// locale returns the requester's language preference.
func locale(c echo.Context) string {
	return c.Request().Header.Get("Accept-Language")
}

// flashRedirect sets a localized flash message and redirects.
func (h *Handler) flashRedirect(c echo.Context, url, key string, data map[string]any) error {
	flash.Set(c.Response(), h.translator.T(locale(c), key, data))
	return c.Redirect(http.StatusSeeOther, url)
}

// viewData assembles the fields every page needs: auth state and any pending
// flash message.
func (h *Handler) viewData(c echo.Context, title string) map[string]any {
	data := map[string]any{"Title": title}
	if u := currentUser(c); u != nil {
		data["User"] = u
	}
	if msg := flash.Pop(c.Response(), c.Request()); msg != "" {
		data["Flash"] = msg
	}
	return data
}
