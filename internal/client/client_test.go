package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dantee-nv/contact-relay/internal/api/dto/v1/contact"

	"github.com/stretchr/testify/require"
)

func validInput() contact.SubmissionInput {
	return contact.SubmissionInput{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hi",
		Message: "Hello there",
	}
}

func TestNormalizeEnvURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "https://api.example.com", "https://api.example.com"},
		{"surrounding spaces", "  https://api.example.com  ", "https://api.example.com"},
		{"double quotes", `"https://api.example.com"`, "https://api.example.com"},
		{"single quotes", "'https://api.example.com'", "https://api.example.com"},
		{"quotes and spaces", ` " https://api.example.com " `, "https://api.example.com"},
		{"mismatched quotes kept", `"https://api.example.com'`, `"https://api.example.com'`},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeEnvURL(tt.raw); got != tt.want {
				t.Errorf("NormalizeEnvURL(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestResolveEndpoint(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"appends submit path", "https://api.example.com", "https://api.example.com" + contact.SubmitPath},
		{"strips trailing slash", "https://api.example.com/", "https://api.example.com" + contact.SubmitPath},
		{"path already present", "https://api.example.com" + contact.SubmitPath, "https://api.example.com" + contact.SubmitPath},
		{"quoted env value", `"https://api.example.com"`, "https://api.example.com" + contact.SubmitPath},
		{"unset", "", ""},
		{"no scheme", "api.example.com", ""},
		{"garbage", "://not a url", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveEndpoint(tt.raw); got != tt.want {
				t.Errorf("ResolveEndpoint(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSubmitSuccess(t *testing.T) {
	var hits atomic.Int32
	var gotPath, gotContentType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"message":"Message sent."}`))
	}))
	defer ts.Close()

	c := New(ts.URL)
	result := c.Submit(context.Background(), validInput())

	require.Equal(t, contact.SubmitPath, gotPath)
	require.Equal(t, "application/json", gotContentType)
	require.True(t, result.OK)
	require.Equal(t, "Message sent.", result.Message)
	require.Equal(t, http.StatusOK, result.StatusCode)
	require.Empty(t, result.FieldErrors)
	require.Equal(t, int32(1), hits.Load())
}

func TestSubmitUsesDefaultSuccessMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := New(ts.URL)
	result := c.Submit(context.Background(), validInput())

	require.True(t, result.OK)
	require.Equal(t, "Message sent.", result.Message)
}

func TestSubmitServerDeclaredFailure(t *testing.T) {
	// 200 with ok:false still counts as failure.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":false,"message":"Mailbox over quota."}`))
	}))
	defer ts.Close()

	c := New(ts.URL)
	result := c.Submit(context.Background(), validInput())

	require.False(t, result.OK)
	require.Equal(t, "Mailbox over quota.", result.Message)
}

func TestSubmitRateLimited(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := New(ts.URL)
	result := c.Submit(context.Background(), validInput())

	require.False(t, result.OK)
	require.Equal(t, MsgRateLimited, result.Message)
	require.Equal(t, http.StatusTooManyRequests, result.StatusCode)
}

func TestSubmitPrefersServerMessageOnFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"ok":false,"message":"Slow down."}`))
	}))
	defer ts.Close()

	c := New(ts.URL)
	result := c.Submit(context.Background(), validInput())

	require.False(t, result.OK)
	require.Equal(t, "Slow down.", result.Message)
}

func TestSubmitPlainTextResponseWrappedAsMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	}))
	defer ts.Close()

	c := New(ts.URL)
	result := c.Submit(context.Background(), validInput())

	require.False(t, result.OK)
	require.Equal(t, "upstream exploded", result.Message)
}

func TestSubmitGenericFailureMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c := New(ts.URL)
	result := c.Submit(context.Background(), validInput())

	require.False(t, result.OK)
	require.Equal(t, MsgSendFailed, result.Message)
}

func TestSubmitTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer ts.Close()

	c := New(ts.URL)
	c.SetTimeout(50 * time.Millisecond)
	result := c.Submit(context.Background(), validInput())

	require.False(t, result.OK)
	require.Equal(t, MsgTimedOut, result.Message)
}

func TestSubmitNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	c := New(url)
	result := c.Submit(context.Background(), validInput())

	require.False(t, result.OK)
	require.Equal(t, MsgNetworkError, result.Message)
}

func TestSubmitValidationFailureMakesNoRequest(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer ts.Close()

	c := New(ts.URL)
	in := validInput()
	in.Email = "not-an-email"

	result := c.Submit(context.Background(), in)

	require.False(t, result.OK)
	require.Contains(t, result.FieldErrors, "email")
	require.Equal(t, int32(0), hits.Load())
}

func TestSubmitHoneypotMakesNoRequest(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer ts.Close()

	c := New(ts.URL)
	in := validInput()
	in.Honeypot = "http://spam.example"

	result := c.Submit(context.Background(), in)

	// Pretend success so the automated sender receives no signal.
	require.True(t, result.OK)
	require.Equal(t, "Message sent.", result.Message)
	require.Equal(t, int32(0), hits.Load())
}

func TestSubmitNotConfigured(t *testing.T) {
	c := New("")

	result := c.Submit(context.Background(), validInput())

	require.False(t, result.OK)
	require.Equal(t, MsgNotConfigured, result.Message)
}

func TestValidateMatchesValidationPackage(t *testing.T) {
	c := New("https://api.example.com")

	in := contact.SubmissionInput{Email: "ada@example.com"}
	errs := c.Validate(in)

	require.Contains(t, errs, "name")
	require.Contains(t, errs, "subject")
	require.Contains(t, errs, "message")
	require.NotContains(t, errs, "email")
}
