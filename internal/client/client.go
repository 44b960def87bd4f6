package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dantee-nv/contact-relay/internal/api/dto/v1/contact"
	"github.com/dantee-nv/contact-relay/internal/api/sanitization"
	"github.com/dantee-nv/contact-relay/internal/api/validation"
)

// DefaultTimeout bounds one submission attempt end to end.
const DefaultTimeout = 12 * time.Second

// maxResponseSize bounds how much of a relay response the client reads.
const maxResponseSize = 1 << 20

// User-facing outcome messages. Server-provided messages take precedence
// where one is available.
const (
	MsgNotConfigured = "Contact form is not configured yet. Please try again later."
	MsgRateLimited   = "Too many requests. Please wait a moment and try again."
	MsgSendFailed    = "Failed to send message."
	MsgTimedOut      = "Request timed out. Please try again."
	MsgNetworkError  = "Network error. Please try again."
)

// Result describes the terminal state of one submission attempt.
type Result struct {
	OK      bool
	Message string
	// FieldErrors is non-empty only when local validation failed; no
	// network call was made in that case.
	FieldErrors map[string]string
	// StatusCode is set when an HTTP response was received.
	StatusCode int
}

// Client submits contact messages to a configured relay endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	timeout    time.Duration
	inFlight   atomic.Bool
}

// New creates a client for the given base URL. An empty or unparseable
// URL yields an unconfigured client that never attempts a network call.
func New(rawURL string) *Client {
	return &Client{
		endpoint:   ResolveEndpoint(rawURL),
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
	}
}

// SetTimeout overrides the per-submission timeout. Heavier forms in this
// pattern family use a longer bound (~20s) than the default.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.timeout = d
	}
}

// Configured reports whether an endpoint was resolved.
func (c *Client) Configured() bool {
	return c.endpoint != ""
}

// Endpoint returns the resolved submit URL, empty when unconfigured.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// NormalizeEnvURL cleans a raw environment-sourced URL value: trims
// whitespace and strips one pair of matching surrounding quotes.
func NormalizeEnvURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	hasMatchingQuotes := len(trimmed) >= 2 &&
		((strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`)) ||
			(strings.HasPrefix(trimmed, `'`) && strings.HasSuffix(trimmed, `'`)))

	if hasMatchingQuotes {
		return strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	}
	return trimmed
}

// ResolveEndpoint derives the full submit URL from a base URL, appending
// the submit path when absent. Unset or unparseable input resolves empty.
func ResolveEndpoint(rawURL string) string {
	normalized := NormalizeEnvURL(rawURL)
	if normalized == "" {
		return ""
	}

	u, err := url.Parse(normalized)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}

	if !strings.HasSuffix(u.Path, contact.SubmitPath) {
		u.Path = strings.TrimSuffix(u.Path, "/") + contact.SubmitPath
	}
	return u.String()
}

// Validate checks each field against its constraint and returns a message
// for every field that fails. Empty map signals valid input.
func (c *Client) Validate(in contact.SubmissionInput) map[string]string {
	return validation.Validate(in)
}

// Submit runs one submission attempt: normalize, validate, honeypot
// check, then a single POST bounded by the client timeout. Validation
// failure and a tripped honeypot make no network call at all.
func (c *Client) Submit(ctx context.Context, in contact.SubmissionInput) Result {
	if !c.inFlight.CompareAndSwap(false, true) {
		return Result{Message: "A submission is already in progress."}
	}
	defer c.inFlight.Store(false)

	in = sanitization.Normalize(in)

	if errs := c.Validate(in); len(errs) > 0 {
		return Result{FieldErrors: errs, Message: contact.MessageInvalid}
	}

	if !c.Configured() {
		return Result{Message: MsgNotConfigured}
	}

	if strings.TrimSpace(in.Honeypot) != "" {
		// Automated form-filler tripped the decoy field: report generic
		// success without sending anything.
		return Result{OK: true, Message: contact.MessageSent}
	}

	payload, err := json.Marshal(in)
	if err != nil {
		return Result{Message: MsgSendFailed}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Result{Message: MsgNetworkError}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Result{Message: MsgTimedOut}
		}
		return Result{Message: MsgNetworkError}
	}
	defer resp.Body.Close()

	body := parseResponsePayload(resp)

	succeeded := resp.StatusCode >= 200 && resp.StatusCode < 300 &&
		!(body != nil && body.OK != nil && !*body.OK)

	if !succeeded {
		message := ""
		if body != nil {
			message = body.Message
		}
		if message == "" {
			if resp.StatusCode == http.StatusTooManyRequests {
				message = MsgRateLimited
			} else {
				message = MsgSendFailed
			}
		}
		return Result{Message: message, StatusCode: resp.StatusCode}
	}

	message := contact.MessageSent
	if body != nil && body.Message != "" {
		message = body.Message
	}
	return Result{OK: true, Message: message, StatusCode: resp.StatusCode}
}

// responsePayload mirrors the relay contract while tolerating bodies that
// omit either field.
type responsePayload struct {
	OK      *bool  `json:"ok"`
	Message string `json:"message"`
}

// parseResponsePayload reads a relay response leniently: JSON when it
// parses, otherwise the raw text wrapped as a message.
func parseResponsePayload(resp *http.Response) *responsePayload {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil
	}

	var payload responsePayload
	if err := json.Unmarshal([]byte(text), &payload); err == nil {
		return &payload
	}

	return &responsePayload{Message: text}
}
