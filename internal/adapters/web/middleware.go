package web

import (
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"gather/internal/monitoring"
	"gather/pkg/flash"
)

// resolveSession loads the authenticated user from the session cookie into
// the request context. Invalid or expired tokens are treated as guests.
func (h *Handler) resolveSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Request().Cookie(sessionCookieName)
		if err == nil && cookie.Value != "" {
			if id, err := h.sessions.Parse(cookie.Value); err == nil {
				if user, err := h.users.GetUser(c.Request().Context(), id); err == nil {
					c.Set(userContextKey, user)
				}
			}
		}
		return next(c)
	}
}

// requireAuth gates a route to authenticated users; guests are sent to the
// login page.
func (h *Handler) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if currentUser(c) == nil {
			flash.Set(c.Response(), h.translator.T(locale(c), "error.login_required", nil))
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return next(c)
	}
}

// requestLogger tags each request with an id, logs it, and records metrics.
func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Response().Header().Set("X-Request-ID", requestID)

		start := time.Now()
		err := next(c)
		duration := time.Since(start)

		method := c.Request().Method
		path := c.Request().URL.Path
		status := c.Response().Status
		if err != nil {
			if httpErr, ok := err.(*echo.HTTPError); ok {
				status = httpErr.Code
			} else {
				status = http.StatusInternalServerError
			}
		}
		monitoring.ObserveRequest(method, path, status, duration)
		log.Printf("%s %s %d %s id=%s", method, path, status, duration, requestID)
		return err
	}
}

func recoverPanics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic: %v\n%s", r, debug.Stack())
				err = echo.NewHTTPError(http.StatusInternalServerError)
			}
		}()
		return next(c)
	}
}
