package http

import "workspace-agent/internal/assistant"

type emailItem struct {
	Subject string `json:"subject"`
	Snippet string `json:"snippet"`
}

type emailsResp struct {
	Emails []emailItem `json:"emails"`
}

func newEmailsResp(records []assistant.EmailRecord) emailsResp {
	resp := emailsResp{Emails: make([]emailItem, 0, len(records))}
	for _, r := range records {
		resp.Emails = append(resp.Emails, emailItem{Subject: r.Subject, Snippet: r.Snippet})
	}
	return resp
}

type eventItem struct {
	Summary     string `json:"summary"`
	StartTime   string `json:"start_time"`
	MeetingLink string `json:"meeting_link"`
	Organizer   string `json:"organizer"`
}

type eventsResp struct {
	Events []eventItem `json:"events"`
}

func newEventsResp(records []assistant.EventRecord) eventsResp {
	resp := eventsResp{Events: make([]eventItem, 0, len(records))}
	for _, r := range records {
		resp.Events = append(resp.Events, eventItem{
			Summary:     r.Summary,
			StartTime:   r.StartTime,
			MeetingLink: r.MeetingLink,
			Organizer:   r.OrganizerEmail,
		})
	}
	return resp
}
