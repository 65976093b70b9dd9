// Package gcalendar wraps the Google Calendar API for listing and creating
// events.
package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const defaultCalendarID = "primary"

// CredentialSource yields an OAuth2 token source scoped to Calendar.
type CredentialSource interface {
	TokenSource(ctx context.Context) (oauth2.TokenSource, error)
}

// Client wraps the Google Calendar API service. The service is rebuilt per
// call so a token acquired after startup is picked up without a restart.
type Client struct {
	creds      CredentialSource
	httpClient *http.Client
}

// NewClient creates a Calendar client backed by the credential source.
func NewClient(creds CredentialSource) *Client {
	return &Client{creds: creds}
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP
// client. Used by tests to point the service at a fake server.
func NewClientFromHTTP(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

func (c *Client) newSvc(ctx context.Context) (*calendar.Service, error) {
	if c.httpClient != nil {
		svc, err := calendar.NewService(ctx, option.WithHTTPClient(c.httpClient))
		if err != nil {
			return nil, fmt.Errorf("calendar.NewService failed: %w", err)
		}
		return svc, nil
	}

	ts, err := c.creds.TokenSource(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("calendar.NewService failed: %w", err)
	}
	return svc, nil
}

// ListEvents returns events ordered by start time, expanded to single
// instances.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	svc, err := c.newSvc(ctx)
	if err != nil {
		return nil, err
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	call := svc.Events.List(calendarID).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)
	if req.TimeMax != nil {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	result, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("events.List failed: %w", err)
	}

	events := make([]Event, 0, len(result.Items))
	for _, item := range result.Items {
		events = append(events, newEvent(item))
	}
	return events, nil
}

// CreateEvent inserts a single event, notifying all guests. A conference
// request id asks Google to attach a Meet link.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (CreatedEvent, error) {
	svc, err := c.newSvc(ctx)
	if err != nil {
		return CreatedEvent{}, err
	}

	event := &calendar.Event{
		Summary: req.Summary,
		Start: &calendar.EventDateTime{
			DateTime: req.Start.Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &calendar.EventDateTime{
			DateTime: req.End.Format(time.RFC3339),
			TimeZone: "UTC",
		},
	}
	for _, guest := range req.Guests {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: guest})
	}
	if req.ConferenceRequestID != "" {
		event.ConferenceData = &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{Type: "hangoutsMeet"},
				RequestId:             req.ConferenceRequestID,
			},
		}
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	created, err := svc.Events.Insert(calendarID, event).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return CreatedEvent{}, fmt.Errorf("events.Insert failed: %w", err)
	}

	return CreatedEvent{ID: created.Id, HTMLLink: created.HtmlLink}, nil
}

func newEvent(item *calendar.Event) Event {
	event := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Location:    item.Location,
		HangoutLink: item.HangoutLink,
	}
	if event.Summary == "" {
		event.Summary = "No Title"
	}
	if item.Organizer != nil {
		event.OrganizerEmail = item.Organizer.Email
	}
	if item.Start != nil {
		if item.Start.DateTime != "" {
			event.Start = item.Start.DateTime
			if t, err := time.Parse(time.RFC3339, item.Start.DateTime); err == nil {
				event.StartDateTime = &t
			}
		} else {
			event.Start = item.Start.Date
		}
	}
	if item.End != nil {
		if item.End.DateTime != "" {
			event.End = item.End.DateTime
		} else {
			event.End = item.End.Date
		}
	}
	return event
}
