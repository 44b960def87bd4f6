package mailer

import (
	"strings"
	"testing"

	"github.com/dantee-nv/contact-relay/internal/api/dto/v1/contact"
)

func TestBuildBody(t *testing.T) {
	in := contact.SubmissionInput{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hi",
		Message: "Hello there",
	}
	meta := Metadata{
		SubmittedAt: "2026-09-01T12:00:00Z",
		SourceIP:    "203.0.113.9",
		UserAgent:   "unknown",
	}

	body := BuildBody(in, meta)

	wantLines := []string{
		"New contact form submission",
		"Name: Ada",
		"Email: ada@example.com",
		"Subject: Hi",
		"Message:",
		"Hello there",
		"Metadata:",
		"Submitted At: 2026-09-01T12:00:00Z",
		"Source IP: 203.0.113.9",
		"User Agent: unknown",
	}
	for _, line := range wantLines {
		if !strings.Contains(body, line) {
			t.Errorf("BuildBody() missing line %q in:\n%s", line, body)
		}
	}

	if !strings.HasPrefix(body, "New contact form submission\n") {
		t.Errorf("BuildBody() has wrong header:\n%s", body)
	}
}
