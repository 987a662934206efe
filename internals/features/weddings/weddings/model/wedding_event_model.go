package model

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventRingCeremony EventType = "ring-ceremony"
	EventHaldi        EventType = "haldi"
	EventMehndi       EventType = "mehndi"
	EventSangeet      EventType = "sangeet"
	EventWedding      EventType = "wedding"
	EventReception    EventType = "reception"
	EventCustom       EventType = "custom"
)

// Owned by exactly one wedding; rewritten wholesale on every save.
type WeddingEventModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"         json:"id"`
	WeddingID   uuid.UUID `gorm:"column:wedding_id;type:uuid;not null;index" json:"wedding_id"`
	EventType   EventType `gorm:"column:event_type;not null"             json:"event_type"`
	CustomName  *string   `gorm:"column:custom_name"                     json:"custom_name"`
	EventDate   time.Time `gorm:"column:event_date;not null"             json:"event_date"`
	EventTime   *string   `gorm:"column:event_time"                      json:"event_time"`
	Venue       *string   `gorm:"column:venue"                           json:"venue"`
	Description *string   `gorm:"column:description"                     json:"description"`
}

func (WeddingEventModel) TableName() string { return "wedding_events" }
