package gcalendar

import "time"

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	// TimeMax nil means no upper bound.
	TimeMax *time.Time
	// MaxResults 0 means no explicit page limit.
	MaxResults int64
}

// Event is a simplified representation of a Google Calendar event.
// Start and End carry the raw API value: an RFC3339 dateTime for timed
// events, a plain date for all-day events.
type Event struct {
	ID      string
	Summary string
	Start   string
	End     string
	// StartDateTime is nil for all-day events.
	StartDateTime  *time.Time
	Description    string
	Location       string
	HangoutLink    string
	OrganizerEmail string
}

// CreateEventRequest is the input for creating a Google Calendar event.
// Start/End must already be UTC.
type CreateEventRequest struct {
	CalendarID string
	Summary    string
	Start      time.Time
	End        time.Time
	Guests     []string
	// ConferenceRequestID, when set, asks Google to attach a Meet link
	// using this value as the idempotency key.
	ConferenceRequestID string
}

// CreatedEvent is the result of a successful insert.
type CreatedEvent struct {
	ID       string
	HTMLLink string
}
