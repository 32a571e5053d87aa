package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/saia-da-torre/rsvp/internal/models"
)

type Notifier interface {
	NotifyInvite(event string, invite models.Invite) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) NotifyInvite(event string, invite models.Invite) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	_, err := n.session.ChannelMessageSend(n.channelID, InviteMessage(event, invite))
	return err
}

// InviteMessage renders the channel message for a new invite. The national
// ID is masked down to its last two digits.
func InviteMessage(event string, invite models.Invite) string {
	return fmt.Sprintf("🎉 **New RSVP for %s**\n**Name:** %s\n**Phone:** %s\n**CPF:** %s",
		event,
		invite.Name,
		invite.Phone,
		maskNationalID(invite.NationalID),
	)
}

func maskNationalID(id string) string {
	if len(id) < 2 {
		return id
	}
	return "***.***.***-" + id[len(id)-2:]
}
