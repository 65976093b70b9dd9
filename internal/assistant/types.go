package assistant

import "time"

// GmailQueryOptions are the structured filters behind a Gmail search query.
// Values arrive as strings from the action parameters; empty means unset.
type GmailQueryOptions struct {
	FromLastXDays   string // integer string, clamped to 7
	ShowOnlyUnread  string // "true" (case-insensitive) adds is:unread
	SubjectContains string // no escaping of spaces, caller responsibility
	SenderEmail     string
}

// FilterOptions are the raw calendar filter parameters.
// At most one of NextXDays/SpecificDate/SpecificDay decides the primary
// window (evaluated in that priority order); SpecificTime refines it.
type FilterOptions struct {
	NextXDays    string // integer string, clamped to 7
	SpecificDate string // YYYY-MM-DD
	SpecificDay  string // weekday name, case-insensitive
	SpecificTime string // "H:MM" or "H:MM-H:MM"
	TitleKeyword string
}

// ClockTime is a time of day at minute granularity.
type ClockTime struct {
	Hour   int
	Minute int
}

// ClockRange is a start/end pair of clock times.
type ClockRange struct {
	Start ClockTime
	End   ClockTime
}

// CalendarFilter is the resolved, immutable query window derived once from
// FilterOptions and "now".
type CalendarFilter struct {
	TimeMin time.Time
	// TimeMax nil means no upper bound.
	TimeMax *time.Time
	// TitleKeyword is lowercased; empty means no keyword filter.
	TitleKeyword string
	// ApproxTimeRange nil means no time-of-day filter.
	ApproxTimeRange *ClockRange
}

// EventInput is the requested calendar event before body construction.
type EventInput struct {
	Summary        string
	StartTimeLocal string // naive local timestamp, 2006-01-02T15:04:05
	EndTimeLocal   string // optional; default start + 1h
	Guests         []string
	AddMeetLink    bool
}

// EventBody is the normalized event payload handed to the calendar client.
// Start/End are already converted to UTC.
type EventBody struct {
	Summary             string
	Start               time.Time
	End                 time.Time
	Guests              []string
	ConferenceRequestID string // empty means no Meet link requested
}

// EventRecord is a normalized calendar read result.
type EventRecord struct {
	Summary        string
	StartTime      string // raw dateTime or date from the API
	EndTime        string
	OrganizerEmail string
	// MeetingLink precedence: hangout link > link extracted from the
	// description > raw location text > empty.
	MeetingLink string
	Description string
	Location    string
}

// EmailRecord is a normalized Gmail read result.
type EmailRecord struct {
	Subject string
	Snippet string
}

// SendInput is the request for sending a plain-text email.
type SendInput struct {
	To      string
	Subject string
	Body    string
}

// SendOutput is the result of a successful send.
type SendOutput struct {
	MessageID string
	Recipient string
}

// CreateEventOutput is the result of a successful event creation.
type CreateEventOutput struct {
	HTMLLink string
}
