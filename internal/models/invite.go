package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invite is one confirmed attendance. It is created once and never updated.
type Invite struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	Name       string    `json:"name" gorm:"not null"`
	Phone      string    `json:"phone" gorm:"not null"`
	NationalID string    `json:"national_id" gorm:"column:cpf;not null;uniqueIndex"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}

func (Invite) TableName() string {
	return "invites"
}

func (i *Invite) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
