package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v5"

	"gather/internal/domain"
	"gather/internal/monitoring"
)

func (h *Handler) Join(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user := currentUser(c)
	event, err := h.participants.JoinEvent(c.Request().Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	monitoring.ParticipationOp("join")
	return h.flashRedirect(c, "/dashboard", "flash.event_joined", map[string]any{"Title": event.Title})
}

func (h *Handler) Leave(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user := currentUser(c)
	event, err := h.participants.LeaveEvent(c.Request().Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	monitoring.ParticipationOp("leave")
	return h.flashRedirect(c, "/dashboard", "flash.event_left", map[string]any{"Title": event.Title})
}
