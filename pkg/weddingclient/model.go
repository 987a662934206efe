package weddingclient

import (
	"sort"
	"time"
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

const (
	DefaultTemplate = "garden"
	DefaultLanguage = "english"
)

// Wedding is the client-side aggregate. Pointer fields are optional.
type Wedding struct {
	ID     string
	UserID *string

	BrideName   string
	GroomName   string
	WeddingDate time.Time
	Venue       string

	BridePhoto    *string
	GroomPhoto    *string
	BrideParents  *string
	GroomParents  *string
	RSVPPhone     *string
	RSVPEmail     *string
	CustomMessage *string
	ShareToken    *string

	Template string
	Language string

	CreatedAt time.Time
	UpdatedAt time.Time

	Events []Event
}

type Event struct {
	ID          string
	Type        EventType
	CustomName  *string
	Date        time.Time
	Time        *string
	Venue       *string
	Description *string
}

// IsSetupComplete reports whether the four required fields are present.
func (w *Wedding) IsSetupComplete() bool {
	return w != nil &&
		w.BrideName != "" &&
		w.GroomName != "" &&
		!w.WeddingDate.IsZero() &&
		w.Venue != ""
}

func (w *Wedding) clone() *Wedding {
	if w == nil {
		return nil
	}
	cp := *w
	cp.UserID = cloneStr(w.UserID)
	cp.BridePhoto = cloneStr(w.BridePhoto)
	cp.GroomPhoto = cloneStr(w.GroomPhoto)
	cp.BrideParents = cloneStr(w.BrideParents)
	cp.GroomParents = cloneStr(w.GroomParents)
	cp.RSVPPhone = cloneStr(w.RSVPPhone)
	cp.RSVPEmail = cloneStr(w.RSVPEmail)
	cp.CustomMessage = cloneStr(w.CustomMessage)
	cp.ShareToken = cloneStr(w.ShareToken)
	cp.Events = make([]Event, len(w.Events))
	for i, e := range w.Events {
		cp.Events[i] = e.clone()
	}
	return &cp
}

func (e Event) clone() Event {
	e.CustomName = cloneStr(e.CustomName)
	e.Time = cloneStr(e.Time)
	e.Venue = cloneStr(e.Venue)
	e.Description = cloneStr(e.Description)
	return e
}

func cloneStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func sortEventsByDate(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
}
