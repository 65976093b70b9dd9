package usecase

import (
	"context"
	"fmt"

	"workspace-agent/internal/assistant"
	"workspace-agent/pkg/gmailapi"
)

// SendGmail sends one plain-text email and returns the assigned message id.
func (uc *implUseCase) SendGmail(ctx context.Context, in assistant.SendInput) (assistant.SendOutput, error) {
	if in.To == "" {
		return assistant.SendOutput{}, fmt.Errorf("%w: to_email is required", assistant.ErrValidation)
	}

	uc.l.Infof(ctx, "SendGmail: to=%s subject=%q", in.To, in.Subject)

	id, err := uc.gmail.Send(ctx, gmailapi.SendRequest{
		To:      in.To,
		Subject: in.Subject,
		Body:    in.Body,
	})
	if err != nil {
		uc.l.Errorf(ctx, "SendGmail: send failed: %v", err)
		return assistant.SendOutput{}, classify(err)
	}

	return assistant.SendOutput{MessageID: id, Recipient: in.To}, nil
}
