package contact

import (
	"strings"
)

// SubmitPath is the route the relay serves and the suffix clients append
// to a configured base URL.
const SubmitPath = "/api/v1/contact/submit"

// HoneypotFields is the shared vocabulary of decoy field names. Any of
// them carrying a non-empty value marks the submission as automated. The
// relay and the client must consume this list rather than re-deriving it.
var HoneypotFields = []string{"website", "contactPreference", "company", "url"}

// Fixed response messages. Internal failure detail never replaces these.
const (
	MessageSent       = "Message sent."
	MessageSendFailed = "Failed to send message."
	MessageInvalid    = "Invalid input."
)

// SubmissionInput represents a contact form submission after string
// coercion. Honeypot is transport-only and never serialized back out.
type SubmissionInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,submission_email"`
	Subject  string `json:"subject" validate:"required,max=150"`
	Message  string `json:"message" validate:"required,max=5000"`
	Honeypot string `json:"-"`
}

// SubmissionOutcome is the wire contract returned on every exit path.
type SubmissionOutcome struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// StringValue coerces a decoded JSON value to a string, mapping any
// non-string type to empty rather than erroring.
func StringValue(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// ReadHoneypot scans the decoy field names and returns the first
// non-empty trimmed value, or empty when the submission looks human.
func ReadHoneypot(body map[string]interface{}) string {
	for _, field := range HoneypotFields {
		if value := strings.TrimSpace(StringValue(body[field])); value != "" {
			return value
		}
	}
	return ""
}

// FromBody builds a SubmissionInput from a decoded JSON body, coercing
// every field to a string. Normalization is a separate step.
func FromBody(body map[string]interface{}) SubmissionInput {
	return SubmissionInput{
		Name:     StringValue(body["name"]),
		Email:    StringValue(body["email"]),
		Subject:  StringValue(body["subject"]),
		Message:  StringValue(body["message"]),
		Honeypot: ReadHoneypot(body),
	}
}
