package usecase

import (
	"context"

	"workspace-agent/internal/assistant"
)

// ReadGmail builds the search query from the options and lists matching
// messages.
func (uc *implUseCase) ReadGmail(ctx context.Context, opts assistant.GmailQueryOptions) ([]assistant.EmailRecord, error) {
	query, err := assistant.BuildGmailQuery(opts)
	if err != nil {
		return nil, err
	}
	return uc.ReadGmailRaw(ctx, query)
}

// ReadGmailRaw lists messages for an already-built Gmail search query.
func (uc *implUseCase) ReadGmailRaw(ctx context.Context, query string) ([]assistant.EmailRecord, error) {
	uc.l.Infof(ctx, "ReadGmail: query=%q", query)

	messages, err := uc.gmail.Search(ctx, query)
	if err != nil {
		uc.l.Errorf(ctx, "ReadGmail: search failed: %v", err)
		return nil, classify(err)
	}

	records := make([]assistant.EmailRecord, 0, len(messages))
	for _, msg := range messages {
		records = append(records, assistant.EmailRecord{
			Subject: msg.Subject,
			Snippet: msg.Snippet,
		})
	}

	uc.l.Infof(ctx, "ReadGmail: %d messages", len(records))
	return records, nil
}
