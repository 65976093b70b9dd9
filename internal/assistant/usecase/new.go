package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workspace-agent/internal/assistant"
	"workspace-agent/pkg/gcalendar"
	"workspace-agent/pkg/gmailapi"
	"workspace-agent/pkg/googleauth"
	pkgLog "workspace-agent/pkg/log"
)

// GmailClient abstracts the Gmail API wrapper for mocking.
type GmailClient interface {
	Search(ctx context.Context, query string) ([]gmailapi.Message, error)
	Send(ctx context.Context, req gmailapi.SendRequest) (string, error)
}

// CalendarClient abstracts the Calendar API wrapper for mocking.
type CalendarClient interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (gcalendar.CreatedEvent, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	gmail    GmailClient
	calendar CalendarClient

	calendarID     string
	utcOffsetHours int
	now            func() time.Time
}

// New creates the assistant UseCase. utcOffsetHours is the fixed offset used
// to interpret naive local timestamps when building event bodies.
func New(
	l pkgLog.Logger,
	gmail GmailClient,
	calendar CalendarClient,
	calendarID string,
	utcOffsetHours int,
) *implUseCase {
	return &implUseCase{
		l:              l,
		gmail:          gmail,
		calendar:       calendar,
		calendarID:     calendarID,
		utcOffsetHours: utcOffsetHours,
		now:            time.Now,
	}
}

var _ assistant.UseCase = (*implUseCase)(nil)

// classify maps a client error onto the domain error taxonomy. Validation
// errors pass through; missing authorization becomes ErrAuth; everything
// else from the remote service becomes ErrRemote.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assistant.ErrValidation),
		errors.Is(err, assistant.ErrAuth),
		errors.Is(err, assistant.ErrRemote):
		return err
	case errors.Is(err, googleauth.ErrNotAuthorized):
		return fmt.Errorf("%w: %v", assistant.ErrAuth, err)
	default:
		return fmt.Errorf("%w: %v", assistant.ErrRemote, err)
	}
}
