// Package rsvp holds the attendance confirmation workflow and the guest list.
package rsvp

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/saia-da-torre/rsvp/internal/format"
	"github.com/saia-da-torre/rsvp/internal/models"
	"github.com/saia-da-torre/rsvp/internal/store"
)

var (
	ErrSubmitInProgress = errors.New("rsvp: submission already in progress")
	ErrFormClosed       = errors.New("rsvp: attendance already confirmed")
	ErrUnknownField     = errors.New("rsvp: unknown field")
)

// Store is what the workflow needs from persistence.
type Store interface {
	FindByNationalID(ctx context.Context, nationalID string) ([]models.Invite, error)
	Insert(ctx context.Context, invite *models.Invite) error
}

type Field string

const (
	FieldName       Field = "name"
	FieldPhone      Field = "phone"
	FieldNationalID Field = "national_id"
)

// MaskField returns the display value of raw for field.
func MaskField(field Field, raw string) (string, error) {
	switch field {
	case FieldName:
		return raw, nil
	case FieldPhone:
		return format.Phone(raw), nil
	case FieldNationalID:
		return format.NationalID(raw), nil
	default:
		return "", ErrUnknownField
	}
}

type Draft struct {
	Name       string
	Phone      string
	NationalID string
}

type Result struct {
	Status  Status
	Message string
	Kind    Kind
	Invite  *models.Invite
}

// Form is one attendance confirmation. The draft and state are owned by the
// Form; store calls happen outside the lock so the Form reads as loading
// while they run.
type Form struct {
	store  Store
	logger *slog.Logger

	mu      sync.Mutex
	draft   Draft
	status  Status
	message string
}

func NewForm(store Store, logger *slog.Logger) *Form {
	return &Form{store: store, logger: logger}
}

// OnFieldChange formats raw for field, stores it in the draft and returns
// the value to display.
func (f *Form) OnFieldChange(field Field, raw string) (string, error) {
	value, err := MaskField(field, raw)
	if err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status == StatusSuccess {
		return "", ErrFormClosed
	}

	switch field {
	case FieldName:
		f.draft.Name = value
	case FieldPhone:
		f.draft.Phone = value
	case FieldNationalID:
		f.draft.NationalID = value
	}
	return value, nil
}

func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *Form) State() (Status, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status, f.message
}

// Submit validates the draft, checks the national ID is not registered yet
// and inserts the invite. Backend failures end in StatusError and are
// reported through the Result; the returned error is only set when the Form
// cannot be submitted at all.
func (f *Form) Submit(ctx context.Context) (Result, error) {
	f.mu.Lock()
	switch f.status {
	case StatusLoading:
		f.mu.Unlock()
		return Result{}, ErrSubmitInProgress
	case StatusSuccess:
		f.mu.Unlock()
		return Result{}, ErrFormClosed
	}

	draft := f.draft
	if !valid(draft) {
		f.transition(StatusError, MsgInvalidFields)
		f.mu.Unlock()
		f.logger.WarnContext(ctx, "Invalid RSVP fields")
		return Result{Status: StatusError, Message: MsgInvalidFields, Kind: KindValidation}, nil
	}
	f.transition(StatusLoading, "")
	f.mu.Unlock()

	res := f.register(ctx, draft)

	f.mu.Lock()
	f.transition(res.Status, res.Message)
	f.mu.Unlock()

	return res, nil
}

func (f *Form) register(ctx context.Context, draft Draft) Result {
	existing, err := f.store.FindByNationalID(ctx, draft.NationalID)
	if err != nil {
		f.logger.ErrorContext(ctx, "Failed to check for existing invite", "error", err)
		return failure(err)
	}
	if len(existing) > 0 {
		f.logger.WarnContext(ctx, "National ID already registered")
		return Result{Status: StatusError, Message: MsgDuplicateNationalID, Kind: KindDuplicate}
	}

	invite := &models.Invite{
		Name:       strings.TrimSpace(draft.Name),
		Phone:      draft.Phone,
		NationalID: draft.NationalID,
	}
	if err := f.store.Insert(ctx, invite); err != nil {
		if store.HasReason(err, store.REASON_ALREADY_EXISTS) {
			f.logger.WarnContext(ctx, "National ID registered concurrently", "error", err)
			return Result{Status: StatusError, Message: MsgDuplicateNationalID, Kind: KindDuplicate}
		}
		f.logger.ErrorContext(ctx, "Failed to insert invite", "error", err)
		return failure(err)
	}

	f.logger.InfoContext(ctx, "Attendance confirmed", slog.String("invite-id", invite.ID))
	return Result{Status: StatusSuccess, Invite: invite}
}

// transition must be called with mu held.
func (f *Form) transition(to Status, message string) {
	if !f.status.canTransition(to) {
		panic("rsvp: invalid transition from " + f.status.String() + " to " + to.String())
	}
	f.status = to
	f.message = message
}

func valid(d Draft) bool {
	return strings.TrimSpace(d.Name) != "" &&
		len(d.Phone) == format.PhoneLength &&
		len(d.NationalID) == format.NationalIDLength
}

func failure(err error) Result {
	if store.HasReason(err, store.REASON_SCHEMA_MISSING) {
		return Result{Status: StatusError, Message: MsgSchemaMissing, Kind: KindSchemaMissing}
	}

	msg := underlyingMessage(err)
	if msg == "" {
		msg = MsgConnectivity
	}
	return Result{Status: StatusError, Message: msg, Kind: KindBackend}
}

func underlyingMessage(err error) string {
	var storeErr *store.Error
	if errors.As(err, &storeErr) {
		if storeErr.Cause != nil {
			return storeErr.Cause.Error()
		}
		return storeErr.Message
	}
	return err.Error()
}
