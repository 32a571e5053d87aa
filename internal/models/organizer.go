package models

import (
	"gorm.io/gorm"
)

// Organizer is a Discord user allowed to see the guest list.
type Organizer struct {
	gorm.Model
	DiscordID string `gorm:"uniqueIndex"`
	Username  string
	Email     string
	Avatar    string
}
