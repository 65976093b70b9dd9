package usecase

import (
	"context"

	"workspace-agent/internal/assistant"
	"workspace-agent/pkg/gcalendar"
)

// CreateEvent builds the UTC event body and inserts it.
func (uc *implUseCase) CreateEvent(ctx context.Context, in assistant.EventInput) (assistant.CreateEventOutput, error) {
	body, err := assistant.BuildEventBody(in, uc.utcOffsetHours, uc.now())
	if err != nil {
		return assistant.CreateEventOutput{}, err
	}

	uc.l.Infof(ctx, "CreateEvent: summary=%q start=%s guests=%d", body.Summary, body.Start, len(body.Guests))

	created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:          uc.calendarID,
		Summary:             body.Summary,
		Start:               body.Start,
		End:                 body.End,
		Guests:              body.Guests,
		ConferenceRequestID: body.ConferenceRequestID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "CreateEvent: insert failed: %v", err)
		return assistant.CreateEventOutput{}, classify(err)
	}

	return assistant.CreateEventOutput{HTMLLink: created.HTMLLink}, nil
}
