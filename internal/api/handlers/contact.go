package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dantee-nv/contact-relay/internal/api/dto/v1/contact"
	"github.com/dantee-nv/contact-relay/internal/api/sanitization"
	"github.com/dantee-nv/contact-relay/internal/api/validation"
	"github.com/dantee-nv/contact-relay/internal/config"
	"github.com/dantee-nv/contact-relay/internal/logging"
	"github.com/dantee-nv/contact-relay/internal/mailer"
	"github.com/dantee-nv/contact-relay/internal/utils"

	"github.com/gin-gonic/gin"
)

const unknownValue = "unknown"

// maxBodySize bounds how much of a request body the relay reads.
const maxBodySize = 1 << 20

// ContactHandler relays contact submissions to the email collaborator.
// It never trusts client-side validation: every constraint is re-checked
// here before anything reaches the mailer.
type ContactHandler struct {
	cfg    *config.Config
	sender mailer.Sender
	now    func() time.Time
}

// NewContactHandler creates a new contact handler. The sender is injected
// so tests can substitute a spy for the SES client.
func NewContactHandler(cfg *config.Config, sender mailer.Sender) *ContactHandler {
	return &ContactHandler{
		cfg:    cfg,
		sender: sender,
		now:    time.Now,
	}
}

// Submit handles one submission to completion: config check, body parse,
// field validation, honeypot check, send, respond. Every exit path
// returns a well-formed {ok, message} body.
func (h *ContactHandler) Submit(c *gin.Context) {
	logger := logging.GetLogger()

	if !h.cfg.Configured() {
		// Operator error, not a user error. The response stays generic so
		// it cannot leak which configuration value is missing.
		logger.ErrorEvent("missing_environment_configuration", map[string]interface{}{
			"hasFromEmail": h.cfg.FromEmail != "",
			"hasToEmail":   h.cfg.ToEmail != "",
		})
		utils.RespondError(c, http.StatusInternalServerError, contact.MessageSendFailed)
		return
	}

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodySize))
	if err != nil {
		logger.WarnEvent("invalid_json_payload", map[string]interface{}{
			"errorMessage": err.Error(),
		})
		utils.RespondError(c, http.StatusBadRequest, contact.MessageInvalid)
		return
	}

	var body map[string]interface{}
	if err := json.Unmarshal(decodeTransportBody(raw), &body); err != nil {
		logger.WarnEvent("invalid_json_payload", map[string]interface{}{
			"errorMessage": err.Error(),
		})
		utils.RespondError(c, http.StatusBadRequest, contact.MessageInvalid)
		return
	}

	input := sanitization.Normalize(contact.FromBody(body))

	if err := validation.CheckStruct(input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, contact.MessageInvalid)
		return
	}

	if input.Honeypot != "" {
		// Automated submission: pretend to succeed without contacting the
		// collaborator, so the sender gets no filterable signal.
		utils.RespondOK(c, contact.MessageSent)
		return
	}

	meta := mailer.Metadata{
		SubmittedAt: h.now().UTC().Format(time.RFC3339),
		SourceIP:    orUnknown(utils.GetRealIP(c)),
		UserAgent:   orUnknown(c.Request.UserAgent()),
	}

	msg := &mailer.Message{
		From:    h.cfg.FromEmail,
		To:      []string{h.cfg.ToEmail},
		ReplyTo: []string{input.Email},
		Subject: fmt.Sprintf("[%s] %s", h.cfg.SubjectTag, input.Subject),
		Body:    mailer.BuildBody(input, meta),
	}

	if err := h.sender.Send(c.Request.Context(), msg); err != nil {
		logger.ErrorEvent("ses_send_failed", map[string]interface{}{
			"errorMessage": err.Error(),
		})
		utils.RespondError(c, http.StatusInternalServerError, contact.MessageSendFailed)
		return
	}

	utils.RespondOK(c, contact.MessageSent)
}

// decodeTransportBody reverses base64 transport encoding when the payload
// does not already look like JSON.
func decodeTransportBody(raw []byte) []byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return raw
	}

	switch trimmed[0] {
	case '{', '[', '"':
		return raw
	}

	decoded, err := base64.StdEncoding.DecodeString(string(trimmed))
	if err != nil {
		return raw
	}
	return decoded
}

func orUnknown(s string) string {
	if s == "" {
		return unknownValue
	}
	return s
}
