// file: internals/features/weddings/weddings/dto/wedding_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "wedding_backend/internals/features/weddings/weddings/model"
)

/* =========================
   Request (whole aggregate)
   ========================= */

type SaveWeddingRequest struct {
	ID          string     `json:"id"           validate:"required,uuid"`
	UserID      *string    `json:"user_id"      validate:"omitempty,uuid"`
	BrideName   string     `json:"bride_name"   validate:"required"`
	GroomName   string     `json:"groom_name"   validate:"required"`
	WeddingDate *time.Time `json:"wedding_date" validate:"required"`
	Venue       string     `json:"venue"        validate:"required"`

	BridePhoto    *string `json:"bride_photo"`
	GroomPhoto    *string `json:"groom_photo"`
	BrideParents  *string `json:"bride_parents"`
	GroomParents  *string `json:"groom_parents"`
	RSVPPhone     *string `json:"rsvp_phone"`
	RSVPEmail     *string `json:"rsvp_email"`
	CustomMessage *string `json:"custom_message"`
	ShareToken    *string `json:"share_token"`

	Template *string `json:"template"`
	Language *string `json:"language" validate:"omitempty,oneof=english hindi bilingual"`

	Events []SaveEventRequest `json:"events" validate:"dive"`
}

// Event keys keep the camelCase the web client has always sent.
type SaveEventRequest struct {
	ID          string     `json:"id"          validate:"required,uuid"`
	Type        string     `json:"type"        validate:"required,oneof=ring-ceremony haldi mehndi sangeet wedding reception custom"`
	CustomName  *string    `json:"customName"  validate:"required_if=Type custom"`
	Date        *time.Time `json:"date"        validate:"required"`
	Time        *string    `json:"time"`
	Venue       *string    `json:"venue"`
	Description *string    `json:"description"`
}

// Normalize trims required names and turns blank optionals into nil, so
// absent values are stored as NULL and never as "".
func (r *SaveWeddingRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.BrideName = strings.TrimSpace(r.BrideName)
	r.GroomName = strings.TrimSpace(r.GroomName)
	r.Venue = strings.TrimSpace(r.Venue)

	for _, p := range []**string{
		&r.UserID, &r.BridePhoto, &r.GroomPhoto, &r.BrideParents, &r.GroomParents,
		&r.RSVPPhone, &r.RSVPEmail, &r.CustomMessage, &r.Template, &r.Language,
	} {
		*p = nilIfBlank(*p)
	}
	// Share tokens match byte for byte, so only "" counts as absent.
	if r.ShareToken != nil && *r.ShareToken == "" {
		r.ShareToken = nil
	}
	for i := range r.Events {
		e := &r.Events[i]
		e.ID = strings.TrimSpace(e.ID)
		e.Type = strings.TrimSpace(e.Type)
		e.CustomName = nilIfBlank(e.CustomName)
		e.Time = nilIfBlank(e.Time)
		e.Venue = nilIfBlank(e.Venue)
		e.Description = nilIfBlank(e.Description)
	}
}

func nilIfBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// ToModels expects a validated request. owner is used only when the body has no user_id.
func (r *SaveWeddingRequest) ToModels(owner uuid.UUID, now time.Time) (m.WeddingModel, []m.WeddingEventModel) {
	id := uuid.MustParse(r.ID)

	var userID *uuid.UUID
	if r.UserID != nil {
		u := uuid.MustParse(*r.UserID)
		userID = &u
	} else if owner != uuid.Nil {
		userID = &owner
	}

	template := m.DefaultTemplate
	if r.Template != nil {
		template = *r.Template
	}
	language := m.DefaultLanguage
	if r.Language != nil {
		language = *r.Language
	}

	w := m.WeddingModel{
		ID:            id,
		UserID:        userID,
		BrideName:     r.BrideName,
		GroomName:     r.GroomName,
		WeddingDate:   r.WeddingDate.UTC(),
		Venue:         r.Venue,
		BridePhoto:    r.BridePhoto,
		GroomPhoto:    r.GroomPhoto,
		BrideParents:  r.BrideParents,
		GroomParents:  r.GroomParents,
		RSVPPhone:     r.RSVPPhone,
		RSVPEmail:     r.RSVPEmail,
		CustomMessage: r.CustomMessage,
		ShareToken:    r.ShareToken,
		Template:      template,
		Language:      language,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	events := make([]m.WeddingEventModel, 0, len(r.Events))
	for _, e := range r.Events {
		customName := e.CustomName
		if m.EventType(e.Type) != m.EventCustom {
			customName = nil
		}
		events = append(events, m.WeddingEventModel{
			ID:          uuid.MustParse(e.ID),
			WeddingID:   id,
			EventType:   m.EventType(e.Type),
			CustomName:  customName,
			EventDate:   e.Date.UTC(),
			EventTime:   e.Time,
			Venue:       e.Venue,
			Description: e.Description,
		})
	}
	return w, events
}

/* =========================
   Responses
   ========================= */

type SaveWeddingResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

// PublicWeddingResponse is what token holders see: no owner, no token.
type PublicWeddingResponse struct {
	ID            uuid.UUID `json:"id"`
	BrideName     string    `json:"bride_name"`
	GroomName     string    `json:"groom_name"`
	WeddingDate   time.Time `json:"wedding_date"`
	Venue         string    `json:"venue"`
	BridePhoto    *string   `json:"bride_photo"`
	GroomPhoto    *string   `json:"groom_photo"`
	BrideParents  *string   `json:"bride_parents"`
	GroomParents  *string   `json:"groom_parents"`
	RSVPPhone     *string   `json:"rsvp_phone"`
	RSVPEmail     *string   `json:"rsvp_email"`
	CustomMessage *string   `json:"custom_message"`
	Template      string    `json:"template"`
	Language      string    `json:"language"`
}

type EventResponse struct {
	ID          uuid.UUID   `json:"id"`
	EventType   m.EventType `json:"event_type"`
	CustomName  *string     `json:"custom_name"`
	EventDate   time.Time   `json:"event_date"`
	EventTime   *string     `json:"event_time"`
	Venue       *string     `json:"venue"`
	Description *string     `json:"description"`
}

// WeddingResponse is the owner view of the whole aggregate.
type WeddingResponse struct {
	PublicWeddingResponse
	UserID     *uuid.UUID      `json:"user_id"`
	ShareToken *string         `json:"share_token"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Events     []EventResponse `json:"events"`
}

func FromModelPublic(w m.WeddingModel) PublicWeddingResponse {
	return PublicWeddingResponse{
		ID:            w.ID,
		BrideName:     w.BrideName,
		GroomName:     w.GroomName,
		WeddingDate:   w.WeddingDate,
		Venue:         w.Venue,
		BridePhoto:    w.BridePhoto,
		GroomPhoto:    w.GroomPhoto,
		BrideParents:  w.BrideParents,
		GroomParents:  w.GroomParents,
		RSVPPhone:     w.RSVPPhone,
		RSVPEmail:     w.RSVPEmail,
		CustomMessage: w.CustomMessage,
		Template:      w.Template,
		Language:      w.Language,
	}
}

func FromModelEvents(events []m.WeddingEventModel) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, EventResponse{
			ID:          e.ID,
			EventType:   e.EventType,
			CustomName:  e.CustomName,
			EventDate:   e.EventDate,
			EventTime:   e.EventTime,
			Venue:       e.Venue,
			Description: e.Description,
		})
	}
	return out
}

func FromModelWedding(w m.WeddingModel, events []m.WeddingEventModel) WeddingResponse {
	return WeddingResponse{
		PublicWeddingResponse: FromModelPublic(w),
		UserID:                w.UserID,
		ShareToken:            w.ShareToken,
		CreatedAt:             w.CreatedAt,
		UpdatedAt:             w.UpdatedAt,
		Events:                FromModelEvents(events),
	}
}
