package rsvp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/saia-da-torre/rsvp/internal/models"
)

// DateLayout is the dd/mm/yyyy layout used on guest cards.
const DateLayout = "02/01/2006"

type Lister interface {
	ListAll(ctx context.Context) ([]models.Invite, error)
}

type GuestCard struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Date       string `json:"date"`
	Phone      string `json:"phone"`
	NationalID string `json:"national_id"`
}

type GuestList struct {
	Guests []GuestCard
	// Err is the fetch failure, if any. The list is empty when it is set.
	Err error
}

func (l GuestList) Empty() bool {
	return len(l.Guests) == 0
}

func (l GuestList) Summary() string {
	if len(l.Guests) == 1 {
		return "1 confirmed guest"
	}
	return fmt.Sprintf("%d confirmed guests", len(l.Guests))
}

// LoadGuestList fetches every invite once and keeps the order the store
// returned them in.
func LoadGuestList(ctx context.Context, lister Lister, loc *time.Location, logger *slog.Logger) GuestList {
	invites, err := lister.ListAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list invites", "error", err)
		return GuestList{Err: err}
	}

	if loc == nil {
		loc = time.UTC
	}

	guests := make([]GuestCard, 0, len(invites))
	for _, inv := range invites {
		guests = append(guests, GuestCard{
			ID:         inv.ID,
			Name:       inv.Name,
			Date:       inv.CreatedAt.In(loc).Format(DateLayout),
			Phone:      inv.Phone,
			NationalID: inv.NationalID,
		})
	}
	return GuestList{Guests: guests}
}
