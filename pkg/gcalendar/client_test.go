package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"workspace-agent/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(ts *httptest.Server) *gcalendar.Client {
	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	return gcalendar.NewClientFromHTTP(tsClient)
}

func TestListEvents(t *testing.T) {
	t.Run("Maps items and query parameters", func(t *testing.T) {
		var gotQuery map[string][]string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
				gotQuery = r.URL.Query()
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"items": [
						{
							"id": "event-123",
							"summary": "Planning",
							"start": { "dateTime": "2024-05-01T14:00:00Z" },
							"end": { "dateTime": "2024-05-01T15:00:00Z" },
							"organizer": { "email": "lead@x.com" },
							"hangoutLink": "https://meet.google.com/abc"
						},
						{
							"id": "event-124",
							"start": { "date": "2024-05-02" },
							"end": { "date": "2024-05-03" }
						}
					]
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		client := newTestClient(ts)

		timeMin := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		timeMax := timeMin.AddDate(0, 0, 7)
		events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			CalendarID: "primary",
			TimeMin:    timeMin,
			TimeMax:    &timeMax,
			MaxResults: 10,
		})
		if err != nil {
			t.Fatalf("failed to list events: %v", err)
		}

		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[0].Summary != "Planning" {
			t.Errorf("summary got = %q", events[0].Summary)
		}
		if events[0].StartDateTime == nil || events[0].StartDateTime.Hour() != 14 {
			t.Errorf("start dateTime not parsed: %+v", events[0].StartDateTime)
		}
		if events[0].OrganizerEmail != "lead@x.com" {
			t.Errorf("organizer got = %q", events[0].OrganizerEmail)
		}
		if events[0].HangoutLink != "https://meet.google.com/abc" {
			t.Errorf("hangout link got = %q", events[0].HangoutLink)
		}

		// All-day event: untitled fallback, raw date, no concrete start.
		if events[1].Summary != "No Title" {
			t.Errorf("untitled fallback got = %q", events[1].Summary)
		}
		if events[1].Start != "2024-05-02" || events[1].StartDateTime != nil {
			t.Errorf("all-day start got = %q (%v)", events[1].Start, events[1].StartDateTime)
		}

		if got := gotQuery["timeMin"]; len(got) != 1 || got[0] != "2024-05-01T00:00:00Z" {
			t.Errorf("timeMin got = %v", got)
		}
		if got := gotQuery["timeMax"]; len(got) != 1 || got[0] != "2024-05-08T00:00:00Z" {
			t.Errorf("timeMax got = %v", got)
		}
		if got := gotQuery["maxResults"]; len(got) != 1 || got[0] != "10" {
			t.Errorf("maxResults got = %v", got)
		}
		if got := gotQuery["singleEvents"]; len(got) != 1 || got[0] != "true" {
			t.Errorf("singleEvents got = %v", got)
		}
		if got := gotQuery["orderBy"]; len(got) != 1 || got[0] != "startTime" {
			t.Errorf("orderBy got = %v", got)
		}
	})

	t.Run("No upper bound and no limit omitted", func(t *testing.T) {
		var gotQuery map[string][]string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"items": []}`))
		}))
		defer ts.Close()

		client := newTestClient(ts)

		_, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			TimeMin: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("failed to list events: %v", err)
		}
		if _, ok := gotQuery["timeMax"]; ok {
			t.Errorf("timeMax should be omitted: %v", gotQuery)
		}
		if _, ok := gotQuery["maxResults"]; ok {
			t.Errorf("maxResults should be omitted: %v", gotQuery)
		}
	})

	t.Run("API failure", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		client := newTestClient(ts)

		_, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			TimeMin: time.Now(),
		})
		if err == nil {
			t.Fatalf("expected api error")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("Sends UTC body with attendees and conference request", func(t *testing.T) {
		var gotBody map[string]any
		var gotQuery map[string][]string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				gotQuery = r.URL.Query()
				_ = json.NewDecoder(r.Body).Decode(&gotBody)
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "event-123",
					"htmlLink": "https://calendar.google.com/event-uri",
					"status": "confirmed"
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		client := newTestClient(ts)

		created, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID:          "primary",
			Summary:             "Sync",
			Start:               time.Date(2024, 5, 2, 17, 0, 0, 0, time.UTC),
			End:                 time.Date(2024, 5, 2, 18, 0, 0, 0, time.UTC),
			Guests:              []string{"a@b.com"},
			ConferenceRequestID: "meet-1714564800",
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}

		if created.HTMLLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected link: %s", created.HTMLLink)
		}
		if created.ID != "event-123" {
			t.Errorf("unexpected id: %s", created.ID)
		}

		if got := gotQuery["conferenceDataVersion"]; len(got) != 1 || got[0] != "1" {
			t.Errorf("conferenceDataVersion got = %v", got)
		}
		if got := gotQuery["sendUpdates"]; len(got) != 1 || got[0] != "all" {
			t.Errorf("sendUpdates got = %v", got)
		}

		attendees, _ := gotBody["attendees"].([]any)
		if len(attendees) != 1 {
			t.Fatalf("attendees got = %v", gotBody["attendees"])
		}
		confData, _ := gotBody["conferenceData"].(map[string]any)
		createReq, _ := confData["createRequest"].(map[string]any)
		if createReq["requestId"] != "meet-1714564800" {
			t.Errorf("conference request id got = %v", createReq["requestId"])
		}
	})

	t.Run("API failure", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		client := newTestClient(ts)

		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID: "primary",
			Start:      time.Now(),
			End:        time.Now().Add(time.Hour),
		})
		if err == nil {
			t.Fatalf("expected create event error")
		}
	})
}
