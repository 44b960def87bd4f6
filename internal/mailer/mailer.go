package mailer

import (
	"context"
	"strings"

	"github.com/dantee-nv/contact-relay/internal/api/dto/v1/contact"
)

// Message is a plain-text email handed to the sending collaborator.
type Message struct {
	From    string
	To      []string
	ReplyTo []string
	Subject string
	Body    string
}

// Sender delivers a message, returning an error on rejection. It is
// treated as a black box: one call, no retries.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// Metadata carries request context attached to the relayed message.
// Every field defaults to "unknown" when unavailable.
type Metadata struct {
	SubmittedAt string
	SourceIP    string
	UserAgent   string
}

// BuildBody formats the submitter's fields and request metadata into the
// plain-text body delivered to the operator.
func BuildBody(in contact.SubmissionInput, meta Metadata) string {
	return strings.Join([]string{
		"New contact form submission",
		"",
		"Name: " + in.Name,
		"Email: " + in.Email,
		"Subject: " + in.Subject,
		"",
		"Message:",
		in.Message,
		"",
		"Metadata:",
		"Submitted At: " + meta.SubmittedAt,
		"Source IP: " + meta.SourceIP,
		"User Agent: " + meta.UserAgent,
	}, "\n")
}
