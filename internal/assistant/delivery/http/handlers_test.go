package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"workspace-agent/internal/assistant"
	assistantHTTP "workspace-agent/internal/assistant/delivery/http"
	"workspace-agent/pkg/googleauth"
)

const testCredentialsJSON = `{
	"installed": {
		"client_id": "test-client",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost:8080/oauth2callback"],
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token"
	}
}`

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockUseCase struct {
	emails    []assistant.EmailRecord
	emailsErr error
	gotQuery  string
	events    []assistant.EventRecord
	eventsErr error
	gotMax    int64
}

func (m *mockUseCase) ReadGmail(ctx context.Context, opts assistant.GmailQueryOptions) ([]assistant.EmailRecord, error) {
	return m.emails, m.emailsErr
}
func (m *mockUseCase) ReadGmailRaw(ctx context.Context, query string) ([]assistant.EmailRecord, error) {
	m.gotQuery = query
	return m.emails, m.emailsErr
}
func (m *mockUseCase) ReadCalendar(ctx context.Context, opts assistant.FilterOptions, maxResults int64) ([]assistant.EventRecord, error) {
	m.gotMax = maxResults
	return m.events, m.eventsErr
}
func (m *mockUseCase) CreateEvent(ctx context.Context, in assistant.EventInput) (assistant.CreateEventOutput, error) {
	return assistant.CreateEventOutput{}, nil
}
func (m *mockUseCase) SendGmail(ctx context.Context, in assistant.SendInput) (assistant.SendOutput, error) {
	return assistant.SendOutput{}, nil
}

func newRouter(t *testing.T, uc assistant.UseCase, store googleauth.TokenStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if store == nil {
		store = googleauth.NewMemoryStore()
	}
	provider, err := googleauth.NewProvider([]byte(testCredentialsJSON), store, "")
	if err != nil {
		t.Fatalf("failed to build provider: %v", err)
	}

	h := assistantHTTP.New(&mockLogger{}, uc, provider)
	r := gin.New()
	assistantHTTP.RegisterRoutes(&r.RouterGroup, h)
	return r
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHomeStatus(t *testing.T) {
	t.Run("Not authorized", func(t *testing.T) {
		r := newRouter(t, &mockUseCase{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/home", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status got = %d, want 200", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Not Authorized") {
			t.Errorf("page should report missing authorization: %s", w.Body.String())
		}
	})

	t.Run("Authorized for both services", func(t *testing.T) {
		store := googleauth.NewMemoryStore()
		token := &oauth2.Token{AccessToken: "at", RefreshToken: "rt"}
		_ = store.Save(googleauth.GmailScopes.Name, token)
		_ = store.Save(googleauth.CalendarScopes.Name, token)

		r := newRouter(t, &mockUseCase{}, store)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/home", nil))

		body := w.Body.String()
		if !strings.Contains(body, "Gmail Authorized") || !strings.Contains(body, "Calendar Authorized") {
			t.Errorf("page should report both authorizations: %s", body)
		}
	})
}

func TestRootRedirectsHome(t *testing.T) {
	r := newRouter(t, &mockUseCase{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusFound {
		t.Fatalf("status got = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/home" {
		t.Errorf("location got = %q, want /home", loc)
	}
}

func TestAuthorizeRedirectsToGoogle(t *testing.T) {
	r := newRouter(t, &mockUseCase{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/authorize", nil))

	if w.Code != http.StatusFound {
		t.Fatalf("status got = %d, want 302", w.Code)
	}
	loc := w.Header().Get("Location")
	if !strings.HasPrefix(loc, "https://accounts.google.com/o/oauth2/auth") {
		t.Errorf("location got = %q, want Google consent URL", loc)
	}
	if !strings.Contains(loc, "state=") {
		t.Errorf("consent URL should carry a state parameter: %q", loc)
	}
}

func TestOAuth2CallbackRejectsUnknownState(t *testing.T) {
	r := newRouter(t, &mockUseCase{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/oauth2callback?code=abc&state=forged", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status got = %d, want 500", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if !strings.Contains(resp["error"], "OAuth failed") {
		t.Errorf("error got = %q", resp["error"])
	}
}

func TestReadEmails(t *testing.T) {
	t.Run("Default filters", func(t *testing.T) {
		uc := &mockUseCase{
			emails: []assistant.EmailRecord{{Subject: "Hi", Snippet: "hello"}},
		}
		r := newRouter(t, uc, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/emails", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status got = %d, want 200", w.Code)
		}
		if uc.gotQuery != "newer_than:2d is:unread" {
			t.Errorf("query got = %q, want default", uc.gotQuery)
		}

		var resp struct {
			Emails []struct {
				Subject string `json:"subject"`
				Snippet string `json:"snippet"`
			} `json:"emails"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response JSON: %v", err)
		}
		if len(resp.Emails) != 1 || resp.Emails[0].Subject != "Hi" {
			t.Errorf("emails got = %+v", resp.Emails)
		}
	})

	t.Run("Custom filters forwarded", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newRouter(t, uc, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/emails?filters=from:a%40b.com", nil))

		if uc.gotQuery != "from:a@b.com" {
			t.Errorf("query got = %q", uc.gotQuery)
		}
	})

	t.Run("Legacy alias", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newRouter(t, uc, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/email", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status got = %d, want 200", w.Code)
		}
	})

	t.Run("Failure returns 500 with error body", func(t *testing.T) {
		uc := &mockUseCase{emailsErr: errors.New("gmail unavailable")}
		r := newRouter(t, uc, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/emails", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status got = %d, want 500", w.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response JSON: %v", err)
		}
		if resp["error"] != "gmail unavailable" {
			t.Errorf("error got = %q", resp["error"])
		}
	})
}

func TestReadEvents(t *testing.T) {
	t.Run("Bounded page of events", func(t *testing.T) {
		uc := &mockUseCase{
			events: []assistant.EventRecord{
				{
					Summary:        "Standup",
					StartTime:      "2024-01-03T09:00:00Z",
					OrganizerEmail: "lead@x.com",
					MeetingLink:    "https://meet.google.com/abc",
				},
			},
		}
		r := newRouter(t, uc, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/events", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status got = %d, want 200", w.Code)
		}
		if uc.gotMax != 10 {
			t.Errorf("maxResults got = %d, want 10", uc.gotMax)
		}

		var resp struct {
			Events []struct {
				Summary     string `json:"summary"`
				StartTime   string `json:"start_time"`
				MeetingLink string `json:"meeting_link"`
				Organizer   string `json:"organizer"`
			} `json:"events"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response JSON: %v", err)
		}
		if len(resp.Events) != 1 || resp.Events[0].Organizer != "lead@x.com" {
			t.Errorf("events got = %+v", resp.Events)
		}
	})

	t.Run("Failure returns 500", func(t *testing.T) {
		uc := &mockUseCase{eventsErr: errors.New("calendar unavailable")}
		r := newRouter(t, uc, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/calendar", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status got = %d, want 500", w.Code)
		}
	})
}
