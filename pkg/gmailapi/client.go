// Package gmailapi wraps the Gmail REST API for searching and sending mail.
package gmailapi

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const gmailUserID = "me"

// CredentialSource yields an OAuth2 token source scoped to Gmail.
type CredentialSource interface {
	TokenSource(ctx context.Context) (oauth2.TokenSource, error)
}

// Client wraps the Gmail API service. The service is rebuilt per call so a
// token acquired after startup (via the consent flow) is picked up without a
// restart.
type Client struct {
	creds      CredentialSource
	httpClient *http.Client
}

// NewClient creates a Gmail client backed by the credential source.
func NewClient(creds CredentialSource) *Client {
	return &Client{creds: creds}
}

// NewClientFromHTTP creates a Gmail client from a pre-configured HTTP client.
// Used by tests to point the service at a fake server.
func NewClientFromHTTP(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

func (c *Client) newSvc(ctx context.Context) (*gmail.Service, error) {
	if c.httpClient != nil {
		svc, err := gmail.NewService(ctx, option.WithHTTPClient(c.httpClient))
		if err != nil {
			return nil, fmt.Errorf("gmail.NewService failed: %w", err)
		}
		return svc, nil
	}

	ts, err := c.creds.TokenSource(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := gmail.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("gmail.NewService failed: %w", err)
	}
	return svc, nil
}

// Search lists all messages matching the Gmail search query, following
// continuation tokens until the listing is exhausted, and resolves each
// message to its subject and snippet. A failure mid-pagination is terminal
// for the whole read.
func (c *Client) Search(ctx context.Context, query string) ([]Message, error) {
	svc, err := c.newSvc(ctx)
	if err != nil {
		return nil, err
	}

	var messages []Message
	pageToken := ""

	for {
		call := svc.Users.Messages.List(gmailUserID).Q(query).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("messages.List failed: %w", err)
		}

		for _, ref := range page.Messages {
			msg, err := svc.Users.Messages.Get(gmailUserID, ref.Id).Context(ctx).Do()
			if err != nil {
				return nil, fmt.Errorf("messages.Get %s failed: %w", ref.Id, err)
			}
			messages = append(messages, Message{
				Subject: subjectHeader(msg),
				Snippet: msg.Snippet,
			})
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return messages, nil
}

// Send builds a plain-text MIME message, base64url-encodes it, and sends it.
// Returns the message id assigned by Gmail.
func (c *Client) Send(ctx context.Context, req SendRequest) (string, error) {
	svc, err := c.newSvc(ctx)
	if err != nil {
		return "", err
	}

	mime := fmt.Sprintf("To: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		req.To, req.Subject, req.Body)

	sent, err := svc.Users.Messages.Send(gmailUserID, &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(mime)),
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("messages.Send failed: %w", err)
	}

	return sent.Id, nil
}

func subjectHeader(msg *gmail.Message) string {
	if msg.Payload == nil {
		return "No Subject"
	}
	for _, h := range msg.Payload.Headers {
		if h.Name == "Subject" {
			return h.Value
		}
	}
	return "No Subject"
}
