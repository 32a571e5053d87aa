package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/saia-da-torre/rsvp/internal/config"
	"github.com/saia-da-torre/rsvp/internal/format"
	"github.com/saia-da-torre/rsvp/internal/rsvp"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type formView struct {
	Status           string
	Message          string
	Name             string
	Phone            string
	NationalID       string
	PhoneLength      int
	NationalIDLength int
}

func newFormView(form *rsvp.Form) formView {
	v := formView{
		Status:           rsvp.StatusIdle.String(),
		PhoneLength:      format.PhoneLength,
		NationalIDLength: format.NationalIDLength,
	}
	if form != nil {
		status, msg := form.State()
		draft := form.Draft()
		v.Status = status.String()
		v.Message = msg
		v.Name = draft.Name
		v.Phone = draft.Phone
		v.NationalID = draft.NationalID
	}
	return v
}

type landingPage struct {
	Event config.Event
	Form  formView
}

type guestsPage struct {
	Event config.Event
	List  rsvp.GuestList
}

func (h *RegistrationHandler) HandleLanding(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "landing.html", landingPage{Event: h.event, Form: newFormView(nil)})
}

func (h *RegistrationHandler) HandleSubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	form, res, err := h.submit(r.Context(), r.PostForm.Get("name"), r.PostForm.Get("phone"), r.PostForm.Get("national_id"))
	if err != nil {
		http.Error(w, "Failed to process registration", http.StatusInternalServerError)
		return
	}

	h.render(w, r, statusForPage(res), "landing.html", landingPage{Event: h.event, Form: newFormView(form)})
}

func (h *RegistrationHandler) HandleGuests(w http.ResponseWriter, r *http.Request) {
	list := rsvp.LoadGuestList(r.Context(), h.store, h.loc, h.logger)
	h.render(w, r, http.StatusOK, "guests.html", guestsPage{Event: h.event, List: list})
}

func (h *RegistrationHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to render page", "page", name, "error", err)
	}
}
