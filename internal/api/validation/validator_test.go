package validation

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dantee-nv/contact-relay/internal/api/dto/v1/contact"
)

func validInput() contact.SubmissionInput {
	return contact.SubmissionInput{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hi",
		Message: "Hello there",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*contact.SubmissionInput)
		wantFields []string
	}{
		{"valid input", func(in *contact.SubmissionInput) {}, nil},
		{"empty name", func(in *contact.SubmissionInput) { in.Name = "" }, []string{"name"}},
		{"name at bound", func(in *contact.SubmissionInput) { in.Name = strings.Repeat("a", 100) }, nil},
		{"name over bound", func(in *contact.SubmissionInput) { in.Name = strings.Repeat("a", 101) }, []string{"name"}},
		{"empty email", func(in *contact.SubmissionInput) { in.Email = "" }, []string{"email"}},
		{"email without at", func(in *contact.SubmissionInput) { in.Email = "ada.example.com" }, []string{"email"}},
		{"email without dot in domain", func(in *contact.SubmissionInput) { in.Email = "ada@example" }, []string{"email"}},
		{"email with space", func(in *contact.SubmissionInput) { in.Email = "ada smith@example.com" }, []string{"email"}},
		{"empty subject", func(in *contact.SubmissionInput) { in.Subject = "" }, []string{"subject"}},
		{"subject at bound", func(in *contact.SubmissionInput) { in.Subject = strings.Repeat("s", 150) }, nil},
		{"subject over bound", func(in *contact.SubmissionInput) { in.Subject = strings.Repeat("s", 151) }, []string{"subject"}},
		{"empty message", func(in *contact.SubmissionInput) { in.Message = "" }, []string{"message"}},
		{"message at bound", func(in *contact.SubmissionInput) { in.Message = strings.Repeat("m", 5000) }, nil},
		{"message over bound", func(in *contact.SubmissionInput) { in.Message = strings.Repeat("m", 5001) }, []string{"message"}},
		{"everything empty", func(in *contact.SubmissionInput) { *in = contact.SubmissionInput{} }, []string{"name", "email", "subject", "message"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			errs := Validate(in)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("Validate() returned %d errors (%v), want %d", len(errs), errs, len(tt.wantFields))
			}
			for _, field := range tt.wantFields {
				if _, ok := errs[field]; !ok {
					t.Errorf("Validate() missing error for field %q, got %v", field, errs)
				}
			}

			// The struct-tag pass must agree with the map-based pass.
			structErr := CheckStruct(in)
			if (structErr != nil) != (len(tt.wantFields) > 0) {
				t.Errorf("CheckStruct() error = %v, want failure = %v", structErr, len(tt.wantFields) > 0)
			}
		})
	}
}

func TestValidateMultibyteBounds(t *testing.T) {
	// Bounds are counted in characters, not bytes.
	in := validInput()
	in.Name = strings.Repeat("é", 100)
	if errs := Validate(in); len(errs) != 0 {
		t.Errorf("Validate() rejected 100-rune name: %v", errs)
	}

	in.Name = strings.Repeat("é", 101)
	if errs := Validate(in); len(errs) != 1 {
		t.Errorf("Validate() accepted 101-rune name: %v", errs)
	}
}

func TestValidateIsPure(t *testing.T) {
	in := validInput()
	in.Email = "not-an-email"
	in.Message = ""

	first := Validate(in)
	second := Validate(in)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Validate() is not idempotent: first %v, second %v", first, second)
	}
}
