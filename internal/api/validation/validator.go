package validation

import (
	"regexp"
	"unicode/utf8"

	"github.com/dantee-nv/contact-relay/internal/api/dto/v1/contact"

	"github.com/go-playground/validator/v10"
)

// Field length bounds, counted in characters.
const (
	MaxNameLength    = 100
	MaxSubjectLength = 150
	MaxMessageLength = 5000
)

// EmailRegex is deliberately permissive: a non-whitespace local part, an
// @, and a non-whitespace domain containing a dot.
var EmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User-facing field error messages.
const (
	ErrNameRequired    = "Please provide your name."
	ErrNameTooLong     = "Name must be 100 characters or fewer."
	ErrEmailInvalid    = "Please provide a valid email address."
	ErrSubjectRequired = "Please provide a subject."
	ErrSubjectTooLong  = "Subject must be 150 characters or fewer."
	ErrMessageRequired = "Please provide a message."
	ErrMessageTooLong  = "Message must be 5000 characters or fewer."
)

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("submission_email", validateSubmissionEmail)
}

// validateSubmissionEmail checks the email shape
func validateSubmissionEmail(fl validator.FieldLevel) bool {
	return EmailRegex.MatchString(fl.Field().String())
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// CheckStruct runs the tag-based constraints over a normalized input.
// A non-nil error means at least one required field is missing, out of
// bound, or malformed.
func CheckStruct(in contact.SubmissionInput) error {
	return validate.Struct(in)
}

// Validate checks each field of a submission against its constraint and
// returns a message for every field that fails. An empty map signals
// valid input. The function is pure: same input, same error set.
func Validate(in contact.SubmissionInput) map[string]string {
	errs := make(map[string]string)

	switch {
	case in.Name == "":
		errs["name"] = ErrNameRequired
	case utf8.RuneCountInString(in.Name) > MaxNameLength:
		errs["name"] = ErrNameTooLong
	}

	if !EmailRegex.MatchString(in.Email) {
		errs["email"] = ErrEmailInvalid
	}

	switch {
	case in.Subject == "":
		errs["subject"] = ErrSubjectRequired
	case utf8.RuneCountInString(in.Subject) > MaxSubjectLength:
		errs["subject"] = ErrSubjectTooLong
	}

	switch {
	case in.Message == "":
		errs["message"] = ErrMessageRequired
	case utf8.RuneCountInString(in.Message) > MaxMessageLength:
		errs["message"] = ErrMessageTooLong
	}

	return errs
}
