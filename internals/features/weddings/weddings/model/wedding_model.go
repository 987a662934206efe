// file: internals/features/weddings/weddings/model/wedding_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTemplate = "garden"
	DefaultLanguage = "english"
)

type WeddingModel struct {
	// id comes from the client (random UUID at creation), never generated here
	ID     uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"  json:"id"`
	UserID *uuid.UUID `gorm:"column:user_id;type:uuid;index"  json:"user_id"`

	BrideName   string    `gorm:"column:bride_name;not null"   json:"bride_name"`
	GroomName   string    `gorm:"column:groom_name;not null"   json:"groom_name"`
	WeddingDate time.Time `gorm:"column:wedding_date;not null" json:"wedding_date"`
	Venue       string    `gorm:"column:venue;not null"        json:"venue"`

	BridePhoto    *string `gorm:"column:bride_photo"    json:"bride_photo"`
	GroomPhoto    *string `gorm:"column:groom_photo"    json:"groom_photo"`
	BrideParents  *string `gorm:"column:bride_parents"  json:"bride_parents"`
	GroomParents  *string `gorm:"column:groom_parents"  json:"groom_parents"`
	RSVPPhone     *string `gorm:"column:rsvp_phone"     json:"rsvp_phone"`
	RSVPEmail     *string `gorm:"column:rsvp_email"     json:"rsvp_email"`
	CustomMessage *string `gorm:"column:custom_message" json:"custom_message"`

	// nil = not shared; the only thing public reads are gated on
	ShareToken *string `gorm:"column:share_token;uniqueIndex" json:"share_token"`

	Template string `gorm:"column:template;not null;default:'garden'"  json:"template"`
	Language string `gorm:"column:language;not null;default:'english'" json:"language"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (WeddingModel) TableName() string { return "weddings" }
