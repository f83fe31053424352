package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v5"

	"gather/internal/domain"
	"gather/internal/ports/input"
)

func (h *Handler) RegisterForm(c echo.Context) error {
	data := h.viewData(c, "Register")
	data["Name"] = ""
	data["Email"] = ""
	data["Errors"] = map[string]string{}
	return h.renderer.render(c, http.StatusOK, "register", data)
}

func (h *Handler) Register(c echo.Context) error {
	r := c.Request()
	in := input.RegisterInput{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	user, err := h.users.Register(c.Request().Context(), in)
	if err != nil {
		data := h.viewData(c, "Register")
		data["Name"] = in.Name
		data["Email"] = in.Email
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			data["Errors"] = vErr.FieldMessages()
		case errors.Is(err, domain.ErrEmailTaken):
			data["Errors"] = map[string]string{"email": h.translator.T(locale(c), "error.email_taken", nil)}
		default:
			return err
		}
		return h.renderer.render(c, http.StatusUnprocessableEntity, "register", data)
	}
	if err := h.sessions.SetSession(c, user.ID); err != nil {
		return err
	}
	return h.flashRedirect(c, "/", "flash.registered", nil)
}

func (h *Handler) LoginForm(c echo.Context) error {
	data := h.viewData(c, "Login")
	data["Email"] = ""
	data["Errors"] = map[string]string{}
	return h.renderer.render(c, http.StatusOK, "login", data)
}

func (h *Handler) Login(c echo.Context) error {
	r := c.Request()
	email := r.FormValue("email")
	user, err := h.users.Login(c.Request().Context(), email, r.FormValue("password"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			data := h.viewData(c, "Login")
			data["Email"] = email
			data["Errors"] = map[string]string{"email": h.translator.T(locale(c), "error.invalid_credentials", nil)}
			return h.renderer.render(c, http.StatusUnprocessableEntity, "login", data)
		}
		return err
	}
	if err := h.sessions.SetSession(c, user.ID); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Logout(c echo.Context) error {
	h.sessions.ClearSession(c)
	return h.flashRedirect(c, "/", "flash.logged_out", nil)
}
