package assistant

import "context"

// UseCase defines the read/write operations of the assistant domain.
// All operations are single-shot: one call maps to at most one outbound API
// call sequence, and nothing is retried.
type UseCase interface {
	// ReadGmail lists messages matching the built query, following
	// continuation tokens until exhausted. An empty result is an empty
	// slice; the "no results" sentinel text belongs to the renderer.
	ReadGmail(ctx context.Context, opts GmailQueryOptions) ([]EmailRecord, error)

	// ReadGmailRaw lists messages for an already-built query string.
	ReadGmailRaw(ctx context.Context, query string) ([]EmailRecord, error)

	// ReadCalendar lists events in the resolved window and applies the
	// keyword and time-of-day post-filters. maxResults 0 means unbounded.
	ReadCalendar(ctx context.Context, opts FilterOptions, maxResults int64) ([]EventRecord, error)

	// CreateEvent inserts one calendar event built from the input.
	CreateEvent(ctx context.Context, in EventInput) (CreateEventOutput, error)

	// SendGmail sends one plain-text email.
	SendGmail(ctx context.Context, in SendInput) (SendOutput, error)
}
