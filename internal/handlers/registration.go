package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/saia-da-torre/rsvp/internal/auth"
	"github.com/saia-da-torre/rsvp/internal/config"
	"github.com/saia-da-torre/rsvp/internal/models"
	"github.com/saia-da-torre/rsvp/internal/notifier"
	"github.com/saia-da-torre/rsvp/internal/rsvp"
)

// InviteStore is the persistence the RSVP endpoints need.
type InviteStore interface {
	rsvp.Store
	rsvp.Lister
}

type RegistrationHandler struct {
	store       InviteStore
	notifier    notifier.Notifier
	authHandler *auth.AuthHandler
	event       config.Event
	loc         *time.Location
	logger      *slog.Logger
}

func NewRegistrationHandler(store InviteStore, notifier notifier.Notifier, authHandler *auth.AuthHandler, event config.Event, loc *time.Location, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		store:       store,
		notifier:    notifier,
		authHandler: authHandler,
		event:       event,
		loc:         loc,
		logger:      logger,
	}
}

// submit runs one attendance confirmation and tells the organizers about it.
func (h *RegistrationHandler) submit(ctx context.Context, name, phone, nationalID string) (*rsvp.Form, rsvp.Result, error) {
	form := rsvp.NewForm(h.store, h.logger)
	form.OnFieldChange(rsvp.FieldName, name)
	form.OnFieldChange(rsvp.FieldPhone, phone)
	form.OnFieldChange(rsvp.FieldNationalID, nationalID)

	res, err := form.Submit(ctx)
	if err != nil {
		return form, res, err
	}

	if res.Status == rsvp.StatusSuccess && h.notifier != nil {
		if err := h.notifier.NotifyInvite(h.event.Name, *res.Invite); err != nil {
			h.logger.WarnContext(ctx, "Failed to send RSVP notification", "error", err)
		}
	}
	return form, res, nil
}

type RegistrationRequest struct {
	Body struct {
		Name       string `json:"name" doc:"Full name of the guest"`
		Phone      string `json:"phone" doc:"WhatsApp phone, digits or (DD) DDDDD-DDDD"`
		NationalID string `json:"national_id" doc:"CPF, digits or DDD.DDD.DDD-DD"`
	}
}

type RegistrationResponse struct {
	Body struct {
		Status string        `json:"status"`
		Invite models.Invite `json:"invite"`
	}
}

func (h *RegistrationHandler) HandleRegister(ctx context.Context, input *RegistrationRequest) (*RegistrationResponse, error) {
	_, res, err := h.submit(ctx, input.Body.Name, input.Body.Phone, input.Body.NationalID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to process registration: " + err.Error())
	}

	switch res.Kind {
	case rsvp.KindValidation:
		return nil, huma.Error422UnprocessableEntity(res.Message)
	case rsvp.KindDuplicate:
		return nil, huma.Error409Conflict(res.Message)
	case rsvp.KindSchemaMissing:
		return nil, huma.Error503ServiceUnavailable(res.Message)
	case rsvp.KindBackend:
		return nil, huma.Error502BadGateway(res.Message)
	}

	resp := &RegistrationResponse{}
	resp.Body.Status = res.Status.String()
	resp.Body.Invite = *res.Invite
	return resp, nil
}

type MaskRequest struct {
	Body struct {
		Field string `json:"field" enum:"name,phone,national_id" doc:"Form field being typed"`
		Value string `json:"value" doc:"Complete current value of the input"`
	}
}

type MaskResponse struct {
	Body struct {
		Value string `json:"value"`
	}
}

func (h *RegistrationHandler) HandleMask(ctx context.Context, input *MaskRequest) (*MaskResponse, error) {
	value, err := rsvp.MaskField(rsvp.Field(input.Body.Field), input.Body.Value)
	if err != nil {
		return nil, huma.Error400BadRequest("Unknown field " + input.Body.Field)
	}

	resp := &MaskResponse{}
	resp.Body.Value = value
	return resp, nil
}

type EventResponse struct {
	Body config.Event
}

func (h *RegistrationHandler) HandleEvent(ctx context.Context, input *struct{}) (*EventResponse, error) {
	return &EventResponse{Body: h.event}, nil
}

type ListInvitesRequest struct {
	auth.AuthInput
}

type ListInvitesResponse struct {
	Body struct {
		Summary string           `json:"summary"`
		Guests  []rsvp.GuestCard `json:"guests"`
	}
}

func (h *RegistrationHandler) HandleList(ctx context.Context, input *ListInvitesRequest) (*ListInvitesResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.AuthInput); err != nil {
		return nil, err
	}

	list := rsvp.LoadGuestList(ctx, h.store, h.loc, h.logger)
	if list.Err != nil {
		return nil, huma.Error502BadGateway("Failed to list invites")
	}

	resp := &ListInvitesResponse{}
	resp.Body.Summary = list.Summary()
	resp.Body.Guests = list.Guests
	return resp, nil
}

func statusForPage(res rsvp.Result) int {
	switch res.Kind {
	case rsvp.KindValidation:
		return http.StatusUnprocessableEntity
	case rsvp.KindDuplicate:
		return http.StatusConflict
	case rsvp.KindSchemaMissing:
		return http.StatusServiceUnavailable
	case rsvp.KindBackend:
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}
