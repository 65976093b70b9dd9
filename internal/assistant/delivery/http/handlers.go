package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"workspace-agent/internal/assistant"
	"workspace-agent/pkg/googleauth"
)

// defaultEmailFilters matches the original dashboard default: recent unread.
const defaultEmailFilters = "newer_than:2d is:unread"

// eventsPageSize bounds the HTTP events listing; the action dispatcher
// variant is unbounded.
const eventsPageSize = 10

// Home godoc
// @Summary     Status page
// @Description HTML dashboard showing authorization status and navigation links.
// @Tags        Assistant
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Router      /home [get]
func (h *handler) Home(c *gin.Context) {
	status := "❌ Not Authorized"
	var parts []string
	if h.auth.Authorized(googleauth.GmailScopes) {
		parts = append(parts, "✅ Gmail Authorized")
	}
	if h.auth.Authorized(googleauth.CalendarScopes) {
		parts = append(parts, "✅ Calendar Authorized")
	}
	if len(parts) > 0 {
		status = ""
		for i, p := range parts {
			if i > 0 {
				status += "<br>"
			}
			status += p
		}
	}

	page := fmt.Sprintf(`<h2>📬 Gmail &amp; 📅 Calendar Dashboard</h2>
<p>Authorization Status: %s</p>
<ul>
	<li><a href="/authorize">Step 1: Authorize Gmail &amp; Calendar</a></li>
	<li><a href="/emails">Step 2: Read Gmail (Unread Emails)</a></li>
	<li><a href="/events">Step 3: View Upcoming Calendar Events</a></li>
</ul>`, status)

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// Authorize godoc
// @Summary     Start OAuth consent
// @Description Redirects to the Google consent screen for the combined Gmail and Calendar scopes.
// @Tags        Assistant
// @Success     302 {string} string "Redirect to Google"
// @Failure     500 {object} map[string]string
// @Router      /authorize [get]
func (h *handler) Authorize(c *gin.Context) {
	ctx := c.Request.Context()

	combined := googleauth.Combined(googleauth.GmailScopes, googleauth.CalendarScopes)
	url, _, err := h.auth.AuthURL(combined)
	if err != nil {
		h.l.Errorf(ctx, "authorize: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, url)
}

// OAuth2Callback godoc
// @Summary     OAuth consent callback
// @Description Exchanges the authorization code and persists the token for both scope sets.
// @Tags        Assistant
// @Produce     html
// @Success     200 {string} string "HTML confirmation"
// @Failure     500 {object} map[string]string
// @Router      /oauth2callback [get]
func (h *handler) OAuth2Callback(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Query("code")
	state := c.Query("state")

	combined := googleauth.Combined(googleauth.GmailScopes, googleauth.CalendarScopes)
	// One consent covers both services; the token is stored once per set.
	err := h.auth.Exchange(ctx, combined, code, state, googleauth.GmailScopes, googleauth.CalendarScopes)
	if err != nil {
		h.l.Errorf(ctx, "oauth2callback: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("OAuth failed: %v", err)})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`<h3>✅ Authorization Complete</h3>
<p>Both Gmail and Calendar are now authorized.</p>
<a href="/emails">Access Gmail</a> | <a href="/events">Access Calendar</a>`))
}

// ReadEmails godoc
// @Summary     Read Gmail messages
// @Description Lists messages matching the Gmail search query in the filters parameter.
// @Tags        Assistant
// @Produce     json
// @Param       filters query string false "Gmail search query" default(newer_than:2d is:unread)
// @Success     200 {object} emailsResp
// @Failure     500 {object} map[string]string
// @Router      /emails [get]
func (h *handler) ReadEmails(c *gin.Context) {
	ctx := c.Request.Context()

	filters := c.DefaultQuery("filters", defaultEmailFilters)

	records, err := h.uc.ReadGmailRaw(ctx, filters)
	if err != nil {
		h.l.Errorf(ctx, "read emails: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newEmailsResp(records))
}

// ReadEvents godoc
// @Summary     Read upcoming calendar events
// @Description Lists up to 10 upcoming events with resolved meeting links.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} eventsResp
// @Failure     500 {object} map[string]string
// @Router      /events [get]
func (h *handler) ReadEvents(c *gin.Context) {
	ctx := c.Request.Context()

	records, err := h.uc.ReadCalendar(ctx, assistant.FilterOptions{}, eventsPageSize)
	if err != nil {
		h.l.Errorf(ctx, "read events: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newEventsResp(records))
}
