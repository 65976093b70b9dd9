package assistant

import (
	"fmt"
	"strconv"
	"strings"
)

const maxLookbackDays = 7

// BuildGmailQuery composes a Gmail search query from the options.
// Token order is fixed: newer_than, is:unread, subject, from. Empty options
// produce an empty string, which Gmail treats as "no filter".
func BuildGmailQuery(opts GmailQueryOptions) (string, error) {
	var parts []string

	if opts.FromLastXDays != "" {
		days, err := strconv.Atoi(strings.TrimSpace(opts.FromLastXDays))
		if err != nil {
			return "", fmt.Errorf("%w: from_last_x_days %q is not an integer", ErrValidation, opts.FromLastXDays)
		}
		if days > maxLookbackDays {
			days = maxLookbackDays
		}
		parts = append(parts, fmt.Sprintf("newer_than:%dd", days))
	}

	if strings.EqualFold(opts.ShowOnlyUnread, "true") {
		parts = append(parts, "is:unread")
	}

	if opts.SubjectContains != "" {
		parts = append(parts, "subject:"+opts.SubjectContains)
	}

	if opts.SenderEmail != "" {
		parts = append(parts, "from:"+opts.SenderEmail)
	}

	return strings.Join(parts, " "), nil
}
