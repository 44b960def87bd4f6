package sanitization

import (
	"strings"

	"github.com/dantee-nv/contact-relay/internal/api/dto/v1/contact"
)

// NormalizeText trims surrounding whitespace from a text field
func NormalizeText(input string) string {
	return strings.TrimSpace(input)
}

// NormalizeEmail trims whitespace and lowercases an email address
func NormalizeEmail(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Normalize applies the field normalization both sides perform before
// validating: whitespace trimming on every text field and lowercasing of
// the email address. The honeypot value passes through untouched.
func Normalize(in contact.SubmissionInput) contact.SubmissionInput {
	return contact.SubmissionInput{
		Name:     NormalizeText(in.Name),
		Email:    NormalizeEmail(in.Email),
		Subject:  NormalizeText(in.Subject),
		Message:  NormalizeText(in.Message),
		Honeypot: in.Honeypot,
	}
}
