package assistant

import "regexp"

// Recognized video-conferencing hosts. The match runs to the first
// whitespace character.
var meetingLinkRe = regexp.MustCompile(`https?://(?:meet\.google\.com|zoom\.us|teams\.microsoft\.com)[^\s]+`)

// ExtractMeetingLink returns the first video-conferencing URL found in text,
// or "" when text is empty or contains none.
func ExtractMeetingLink(text string) string {
	if text == "" {
		return ""
	}
	return meetingLinkRe.FindString(text)
}
