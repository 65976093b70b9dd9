package googleauth

import (
	calendar "google.golang.org/api/calendar/v3"
	gmail "google.golang.org/api/gmail/v1"
)

// ScopeSet is a named group of Google OAuth scopes sharing one stored token.
// The name doubles as the token store key (e.g. gmail_token.json).
type ScopeSet struct {
	Name   string
	Scopes []string
}

// GmailScopes covers reading and sending mail.
var GmailScopes = ScopeSet{
	Name:   "gmail",
	Scopes: []string{gmail.GmailReadonlyScope, gmail.GmailSendScope},
}

// CalendarScopes covers reading events and creating them.
var CalendarScopes = ScopeSet{
	Name:   "calendar",
	Scopes: []string{calendar.CalendarReadonlyScope, calendar.CalendarEventsScope},
}

// Combined unions the given scope sets for a single consent flow.
// The exchanged token is saved under every member set's name, so one
// authorization covers all of them.
func Combined(sets ...ScopeSet) ScopeSet {
	combined := ScopeSet{Name: "combined"}
	seen := map[string]bool{}
	for _, set := range sets {
		for _, s := range set.Scopes {
			if seen[s] {
				continue
			}
			seen[s] = true
			combined.Scopes = append(combined.Scopes, s)
		}
	}
	return combined
}
