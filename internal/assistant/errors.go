package assistant

import "errors"

// Error kinds for the assistant domain. Operations wrap one of these so the
// delivery layers can classify failures with errors.Is before rendering them
// as plain text.
var (
	// ErrAuth covers missing/invalid credentials and failed consent.
	ErrAuth = errors.New("authorization error")
	// ErrRemote covers any failure returned by the Gmail/Calendar APIs.
	ErrRemote = errors.New("remote api error")
	// ErrValidation covers malformed date/day/time/number parameters.
	ErrValidation = errors.New("validation error")
)
