package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v5"

	"gather/internal/domain"
	"gather/internal/domain/entities"
	"gather/internal/monitoring"
	"gather/internal/ports/input"
)

const maxMultipartMemory = 32 << 20

// eventForm carries the raw submitted event fields so forms can be
// re-rendered with what the user typed.
type eventForm struct {
	Title       string
	DateRaw     string
	City        string
	Private     bool
	Description string
	Items       []string
	Image       *domain.ImageUpload
}

func parseEventForm(c echo.Context) (eventForm, func()) {
	r := c.Request()
	_ = r.ParseMultipartForm(maxMultipartMemory)
	form := eventForm{
		Title:       r.FormValue("title"),
		DateRaw:     r.FormValue("date"),
		City:        r.FormValue("city"),
		Private:     r.FormValue("private") == "1",
		Description: r.FormValue("description"),
		Items:       r.PostForm["items[]"],
	}
	cleanup := func() {}
	if file, header, err := r.FormFile("image"); err == nil {
		form.Image = &domain.ImageUpload{OriginalName: header.Filename, Content: file}
		cleanup = func() { file.Close() }
	}
	return form, cleanup
}

// date inputs submit ISO dates; anything unparseable counts as missing.
func (f eventForm) date() time.Time {
	t, err := time.Parse("2006-01-02", f.DateRaw)
	if err != nil {
		return time.Time{}
	}
	return t
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.PathParam("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound)
	}
	return id, nil
}

// Index is the home page: full listing, or a title search.
func (h *Handler) Index(c echo.Context) error {
	search := c.QueryParam("search")
	events, err := h.events.ListEvents(c.Request().Context(), search)
	if err != nil {
		return err
	}
	data := h.viewData(c, "Gather")
	data["Events"] = events
	data["Search"] = search
	return h.renderer.render(c, http.StatusOK, "welcome", data)
}

func (h *Handler) CreateForm(c echo.Context) error {
	data := h.viewData(c, "Create Event")
	data["Vocabulary"] = entities.InfrastructureItems()
	data["Form"] = eventForm{}
	data["Errors"] = map[string]string{}
	return h.renderer.render(c, http.StatusOK, "create", data)
}

func (h *Handler) Store(c echo.Context) error {
	form, cleanup := parseEventForm(c)
	defer cleanup()

	user := currentUser(c)
	_, err := h.events.CreateEvent(c.Request().Context(), user.ID, input.CreateEventInput{
		Title:       form.Title,
		Date:        form.date(),
		City:        form.City,
		Private:     form.Private,
		Description: form.Description,
		Items:       form.Items,
		Image:       form.Image,
	})
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			data := h.viewData(c, "Create Event")
			data["Vocabulary"] = entities.InfrastructureItems()
			data["Form"] = form
			data["Errors"] = vErr.FieldMessages()
			return h.renderer.render(c, http.StatusUnprocessableEntity, "create", data)
		}
		return err
	}
	monitoring.EventCreated()
	return h.flashRedirect(c, "/", "flash.event_created", nil)
}

func (h *Handler) Show(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var requesterID int64
	if user := currentUser(c); user != nil {
		requesterID = user.ID
	}
	detail, err := h.events.GetEventDetail(c.Request().Context(), id, requesterID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	data := h.viewData(c, detail.Event.Title)
	data["Detail"] = detail
	return h.renderer.render(c, http.StatusOK, "show", data)
}

func (h *Handler) Dashboard(c echo.Context) error {
	user := currentUser(c)
	dashboard, err := h.events.GetDashboard(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	data := h.viewData(c, "My Events")
	data["Dashboard"] = dashboard
	return h.renderer.render(c, http.StatusOK, "dashboard", data)
}

func (h *Handler) EditForm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user := currentUser(c)
	event, err := h.events.AuthorizeEdit(c.Request().Context(), user.ID, id)
	if err != nil {
		return h.eventError(c, err)
	}
	data := h.viewData(c, "Edit "+event.Title)
	data["Event"] = event
	data["Vocabulary"] = entities.InfrastructureItems()
	data["Errors"] = map[string]string{}
	return h.renderer.render(c, http.StatusOK, "edit", data)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	form, cleanup := parseEventForm(c)
	defer cleanup()

	user := currentUser(c)
	date := form.date()
	_, err = h.events.UpdateEvent(c.Request().Context(), user.ID, id, input.UpdateEventInput{
		Title:       &form.Title,
		Date:        &date,
		City:        &form.City,
		Private:     &form.Private,
		Description: &form.Description,
		Items:       &form.Items,
		Image:       form.Image,
	})
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			event, aerr := h.events.AuthorizeEdit(c.Request().Context(), user.ID, id)
			if aerr != nil {
				return h.eventError(c, aerr)
			}
			data := h.viewData(c, "Edit "+event.Title)
			data["Event"] = event
			data["Vocabulary"] = entities.InfrastructureItems()
			data["Errors"] = vErr.FieldMessages()
			return h.renderer.render(c, http.StatusUnprocessableEntity, "edit", data)
		}
		return h.eventError(c, err)
	}
	return h.flashRedirect(c, "/dashboard", "flash.event_updated", nil)
}

func (h *Handler) Destroy(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user := currentUser(c)
	if err := h.events.DeleteEvent(c.Request().Context(), user.ID, id); err != nil {
		return h.eventError(c, err)
	}
	return h.flashRedirect(c, "/dashboard", "flash.event_deleted", nil)
}

// eventError maps domain failures on owner actions: unknown events are 404s,
// non-owners are sent back to their dashboard.
func (h *Handler) eventError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		return echo.NewHTTPError(http.StatusNotFound)
	case errors.Is(err, domain.ErrNotOwner):
		return h.flashRedirect(c, "/dashboard", "error.not_owner", nil)
	default:
		return err
	}
}
