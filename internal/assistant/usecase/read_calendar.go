package usecase

import (
	"context"

	"workspace-agent/internal/assistant"
	"workspace-agent/pkg/gcalendar"
)

// ReadCalendar resolves the filter window against now, lists events, and
// applies the keyword and time-of-day post-filters. maxResults 0 means no
// explicit limit.
func (uc *implUseCase) ReadCalendar(ctx context.Context, opts assistant.FilterOptions, maxResults int64) ([]assistant.EventRecord, error) {
	filter, err := assistant.BuildCalendarFilter(opts, uc.now())
	if err != nil {
		return nil, err
	}

	uc.l.Infof(ctx, "ReadCalendar: timeMin=%s timeMax=%v keyword=%q", filter.TimeMin, filter.TimeMax, filter.TitleKeyword)

	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    filter.TimeMin,
		TimeMax:    filter.TimeMax,
		MaxResults: maxResults,
	})
	if err != nil {
		uc.l.Errorf(ctx, "ReadCalendar: list failed: %v", err)
		return nil, classify(err)
	}

	records := make([]assistant.EventRecord, 0, len(events))
	for _, event := range events {
		if !filter.MatchSummary(event.Summary) {
			continue
		}
		// The time-of-day filter only applies to events with a concrete
		// start time; all-day events pass through.
		if event.StartDateTime != nil {
			start := *event.StartDateTime
			if !filter.MatchStart(start.Hour(), start.Minute()) {
				continue
			}
		}
		records = append(records, newEventRecord(event))
	}

	uc.l.Infof(ctx, "ReadCalendar: %d of %d events after filtering", len(records), len(events))
	return records, nil
}

// newEventRecord normalizes an API event, resolving the meeting link by
// precedence: hangout link, then a link extracted from the description, then
// the raw location text.
func newEventRecord(event gcalendar.Event) assistant.EventRecord {
	link := event.HangoutLink
	if link == "" {
		link = assistant.ExtractMeetingLink(event.Description)
	}
	if link == "" {
		link = event.Location
	}

	return assistant.EventRecord{
		Summary:        event.Summary,
		StartTime:      event.Start,
		EndTime:        event.End,
		OrganizerEmail: event.OrganizerEmail,
		MeetingLink:    link,
		Description:    event.Description,
		Location:       event.Location,
	}
}
