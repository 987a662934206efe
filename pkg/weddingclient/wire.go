package weddingclient

import "time"

// Request and response bodies as the API spells them. Saved events use
// camelCase keys, returned events use snake_case.

type saveWeddingBody struct {
	ID            string          `json:"id"`
	UserID        *string         `json:"user_id"`
	BrideName     string          `json:"bride_name"`
	GroomName     string          `json:"groom_name"`
	WeddingDate   time.Time       `json:"wedding_date"`
	Venue         string          `json:"venue"`
	BridePhoto    *string         `json:"bride_photo"`
	GroomPhoto    *string         `json:"groom_photo"`
	BrideParents  *string         `json:"bride_parents"`
	GroomParents  *string         `json:"groom_parents"`
	RSVPPhone     *string         `json:"rsvp_phone"`
	RSVPEmail     *string         `json:"rsvp_email"`
	CustomMessage *string         `json:"custom_message"`
	ShareToken    *string         `json:"share_token"`
	Template      string          `json:"template,omitempty"`
	Language      string          `json:"language,omitempty"`
	Events        []saveEventBody `json:"events"`
}

type saveEventBody struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	CustomName  *string   `json:"customName"`
	Date        time.Time `json:"date"`
	Time        *string   `json:"time"`
	Venue       *string   `json:"venue"`
	Description *string   `json:"description"`
}

type saveWeddingResult struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type weddingBody struct {
	ID            string      `json:"id"`
	UserID        *string     `json:"user_id"`
	BrideName     string      `json:"bride_name"`
	GroomName     string      `json:"groom_name"`
	WeddingDate   time.Time   `json:"wedding_date"`
	Venue         string      `json:"venue"`
	BridePhoto    *string     `json:"bride_photo"`
	GroomPhoto    *string     `json:"groom_photo"`
	BrideParents  *string     `json:"bride_parents"`
	GroomParents  *string     `json:"groom_parents"`
	RSVPPhone     *string     `json:"rsvp_phone"`
	RSVPEmail     *string     `json:"rsvp_email"`
	CustomMessage *string     `json:"custom_message"`
	ShareToken    *string     `json:"share_token"`
	Template      string      `json:"template"`
	Language      string      `json:"language"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	Events        []eventBody `json:"events"`
}

type eventBody struct {
	ID          string    `json:"id"`
	EventType   EventType `json:"event_type"`
	CustomName  *string   `json:"custom_name"`
	EventDate   time.Time `json:"event_date"`
	EventTime   *string   `json:"event_time"`
	Venue       *string   `json:"venue"`
	Description *string   `json:"description"`
}

type errorBody struct {
	Error     string            `json:"error"`
	ErrorCode string            `json:"error_code"`
	Errors    map[string]string `json:"errors"`
}

func toSaveBody(w *Wedding) saveWeddingBody {
	b := saveWeddingBody{
		ID:            w.ID,
		UserID:        w.UserID,
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
		ShareToken:    w.ShareToken,
		Template:      w.Template,
		Language:      w.Language,
		Events:        make([]saveEventBody, 0, len(w.Events)),
	}
	for _, e := range w.Events {
		b.Events = append(b.Events, saveEventBody{
			ID:          e.ID,
			Type:        e.Type,
			CustomName:  e.CustomName,
			Date:        e.Date,
			Time:        e.Time,
			Venue:       e.Venue,
			Description: e.Description,
		})
	}
	return b
}

func fromWeddingBody(b weddingBody) *Wedding {
	return &Wedding{
		ID:            b.ID,
		UserID:        b.UserID,
		BrideName:     b.BrideName,
		GroomName:     b.GroomName,
		WeddingDate:   b.WeddingDate,
		Venue:         b.Venue,
		BridePhoto:    b.BridePhoto,
		GroomPhoto:    b.GroomPhoto,
		BrideParents:  b.BrideParents,
		GroomParents:  b.GroomParents,
		RSVPPhone:     b.RSVPPhone,
		RSVPEmail:     b.RSVPEmail,
		CustomMessage: b.CustomMessage,
		ShareToken:    b.ShareToken,
		Template:      b.Template,
		Language:      b.Language,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		Events:        fromEventBodies(b.Events),
	}
}

func fromEventBodies(in []eventBody) []Event {
	out := make([]Event, 0, len(in))
	for _, e := range in {
		out = append(out, Event{
			ID:          e.ID,
			Type:        e.EventType,
			CustomName:  e.CustomName,
			Date:        e.EventDate,
			Time:        e.EventTime,
			Venue:       e.Venue,
			Description: e.Description,
		})
	}
	return out
}
