package gmailapi

// Message is a simplified representation of a Gmail message.
type Message struct {
	Subject string
	Snippet string
}

// SendRequest is the input for sending a plain-text email.
type SendRequest struct {
	To      string
	Subject string
	Body    string
}
