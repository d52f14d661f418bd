package models

import (
	"net/mail"
	"time"
)

// TimestampLayout matches the ISO-8601 form browsers produce for Date.toISOString
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// ContactSubmission is a message left through the public contact form
type ContactSubmission struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// FormatTimestamp renders t in TimestampLayout
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func (m ContactSubmission) Validate() error {
	switch {
	case m.Name == "":
		return missingField("name")
	case m.Email == "":
		return missingField("email")
	case m.Subject == "":
		return missingField("subject")
	case m.Message == "":
		return missingField("message")
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return invalidField("email", "not a valid address")
	}
	return nil
}
