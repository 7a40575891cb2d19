package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/seek/client-registry/internal/core/domain"
)

func render(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"client not found", domain.ErrClientNotFound, http.StatusUnprocessableEntity, "Client not found"},
		{"age mismatch", domain.ErrAgeMismatch, http.StatusUnprocessableEntity, "Age does not match birth date"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		{"throttled", domain.ErrTooManyLoginAttempts, http.StatusTooManyRequests, "too many login attempts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := render(t, tt.err)
			if code != tt.wantCode {
				t.Fatalf("status = %d, want %d", code, tt.wantCode)
			}
			if body.Status != tt.wantCode {
				t.Fatalf("envelope status = %d, want %d", body.Status, tt.wantCode)
			}
			if body.Message != tt.wantMsg {
				t.Fatalf("message = %q, want %q", body.Message, tt.wantMsg)
			}
			if body.Error != http.StatusText(tt.wantCode) {
				t.Fatalf("error = %q, want %q", body.Error, http.StatusText(tt.wantCode))
			}
			if body.Path != "/api/v1/clients" {
				t.Fatalf("path = %q", body.Path)
			}
			if body.Timestamp.IsZero() {
				t.Fatalf("timestamp not set")
			}
			if body.FieldErrors != nil {
				t.Fatalf("unexpected fieldErrors: %v", body.FieldErrors)
			}
		})
	}
}

func TestErrorHandler_ValidationError(t *testing.T) {
	code, body := render(t, &domain.ValidationError{Fields: map[string]string{
		"name": "name is required",
	}})

	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
	if body.Message != "Validation failed" {
		t.Fatalf("message = %q", body.Message)
	}
	if body.FieldErrors["name"] != "name is required" {
		t.Fatalf("fieldErrors = %v", body.FieldErrors)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := render(t, echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed token"))

	if code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", code)
	}
	if body.Message != "missing or malformed token" {
		t.Fatalf("message = %q", body.Message)
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	code, body := render(t, errors.New("mongo: connection reset"))

	if code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", code)
	}
	// Internal details must not leak to clients.
	if body.Message != "Unexpected error" {
		t.Fatalf("message = %q", body.Message)
	}
}

func TestErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.NoContent(http.StatusNoContent); err != nil {
		t.Fatalf("commit response: %v", err)
	}
	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late failure"), c)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("committed response was overwritten: %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("committed response body was appended: %q", rec.Body.String())
	}
}
