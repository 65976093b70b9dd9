package actions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"workspace-agent/internal/assistant"
	pkgLog "workspace-agent/pkg/log"
)

// Sentinel lines substituted when a read yields zero items. This is a
// rendering convention; the operations themselves return empty slices.
const (
	noEmailsLine = "No emails found matching the criteria."
	noEventsLine = "No calendar events found matching the criteria."
)

// NewDefaultRegistry registers the four built-in tools.
func NewDefaultRegistry(uc assistant.UseCase, l pkgLog.Logger) *Registry {
	r := NewRegistry()
	r.Register(&readGmailTool{uc: uc, l: l})
	r.Register(&readCalendarTool{uc: uc, l: l})
	r.Register(&createEventTool{uc: uc, l: l})
	r.Register(&sendGmailTool{uc: uc, l: l})
	return r
}

// paramOr returns the parameter value, or def when the name is absent.
// An explicitly empty value stays empty.
func paramOr(params map[string]string, name, def string) string {
	if v, ok := params[name]; ok {
		return v
	}
	return def
}

type readGmailTool struct {
	uc assistant.UseCase
	l  pkgLog.Logger
}

func (t *readGmailTool) Name() string { return "read_gmail" }

func (t *readGmailTool) Description() string {
	return "Read Gmail messages matching structured filters (lookback days, unread, subject, sender)."
}

func (t *readGmailTool) Execute(ctx context.Context, params map[string]string) ([]string, error) {
	opts := assistant.GmailQueryOptions{
		FromLastXDays:   params["from_last_x_days"],
		ShowOnlyUnread:  paramOr(params, "show_only_unread", "true"),
		SubjectContains: params["subject_contains"],
		SenderEmail:     params["sender_email"],
	}

	records, err := t.uc.ReadGmail(ctx, opts)
	if err != nil {
		if errors.Is(err, assistant.ErrValidation) {
			return nil, err
		}
		t.l.Errorf(ctx, "read_gmail: %v", err)
		return []string{fmt.Sprintf("Error reading emails: %v", err)}, nil
	}

	if len(records) == 0 {
		return []string{noEmailsLine}, nil
	}

	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, fmt.Sprintf("Subject: %s\nSnippet: %s", r.Subject, r.Snippet))
	}
	return lines, nil
}

type readCalendarTool struct {
	uc assistant.UseCase
	l  pkgLog.Logger
}

func (t *readCalendarTool) Name() string { return "read_calendar" }

func (t *readCalendarTool) Description() string {
	return "Read calendar events for a resolved time window with optional keyword and time-of-day filters."
}

func (t *readCalendarTool) Execute(ctx context.Context, params map[string]string) ([]string, error) {
	opts := assistant.FilterOptions{
		NextXDays:    params["next_x_days"],
		SpecificDate: params["specific_date"],
		SpecificDay:  params["specific_day"],
		SpecificTime: params["specific_time"],
		TitleKeyword: params["title_keyword"],
	}

	// No page limit here; the HTTP read endpoint is the bounded variant.
	records, err := t.uc.ReadCalendar(ctx, opts, 0)
	if err != nil {
		if errors.Is(err, assistant.ErrValidation) {
			return nil, err
		}
		t.l.Errorf(ctx, "read_calendar: %v", err)
		return []string{fmt.Sprintf("Error reading calendar: %v", err)}, nil
	}

	if len(records) == 0 {
		return []string{noEventsLine}, nil
	}

	lines := make([]string, 0, len(records))
	for _, r := range records {
		link := r.MeetingLink
		if link == "" {
			link = "N/A"
		}
		lines = append(lines, fmt.Sprintf("Summary: %s\nStart: %s\nEnd: %s\nOrganizer: %s\nLink: %s",
			r.Summary, r.StartTime, r.EndTime, r.OrganizerEmail, link))
	}
	return lines, nil
}

type createEventTool struct {
	uc assistant.UseCase
	l  pkgLog.Logger
}

func (t *createEventTool) Name() string { return "create_calendar_event" }

func (t *createEventTool) Description() string {
	return "Create a calendar event with optional guests and a Google Meet link."
}

func (t *createEventTool) Execute(ctx context.Context, params map[string]string) ([]string, error) {
	in := assistant.EventInput{
		Summary:        params["summary"],
		StartTimeLocal: params["start_time_str"],
		EndTimeLocal:   params["end_time_str"],
		Guests:         parseGuests(params["guests"]),
		AddMeetLink:    strings.EqualFold(paramOr(params, "add_meet_link", "true"), "true"),
	}

	out, err := t.uc.CreateEvent(ctx, in)
	if err != nil {
		if errors.Is(err, assistant.ErrValidation) {
			return nil, err
		}
		t.l.Errorf(ctx, "create_calendar_event: %v", err)
		return []string{fmt.Sprintf("Error creating event: %v", err)}, nil
	}

	return []string{fmt.Sprintf("Event created: %s", out.HTMLLink)}, nil
}

// parseGuests accepts either a JSON array of addresses or a single bare
// address.
func parseGuests(raw string) []string {
	if raw == "" {
		return nil
	}
	var guests []string
	if err := json.Unmarshal([]byte(raw), &guests); err == nil {
		return guests
	}
	return []string{raw}
}

type sendGmailTool struct {
	uc assistant.UseCase
	l  pkgLog.Logger
}

func (t *sendGmailTool) Name() string { return "send_gmail" }

func (t *sendGmailTool) Description() string {
	return "Send a plain-text email to one recipient."
}

func (t *sendGmailTool) Execute(ctx context.Context, params map[string]string) ([]string, error) {
	out, err := t.uc.SendGmail(ctx, assistant.SendInput{
		To:      params["to_email"],
		Subject: params["subject"],
		Body:    params["body"],
	})
	if err != nil {
		if errors.Is(err, assistant.ErrValidation) {
			return nil, err
		}
		t.l.Errorf(ctx, "send_gmail: %v", err)
		return []string{fmt.Sprintf("Failed to send email: %v", err)}, nil
	}

	return []string{fmt.Sprintf("Email sent to %s. Message ID: %s", out.Recipient, out.MessageID)}, nil
}
