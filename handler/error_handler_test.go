package handler_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pixkit/binder"
	"github.com/dmitrymomot/pixkit/handler"
	"github.com/dmitrymomot/pixkit/pkg/requestid"
)

func TestClassifyError(t *testing.T) {
	t.Parallel()

	verr := handler.NewValidationError()
	verr.Add("cpf", "CPF inválido. Verifique os dígitos verificadores.")

	tests := []struct {
		name     string
		err      error
		status   int
		code     string
		level    slog.Level
		hasField string
	}{
		{name: "validation", err: verr, status: http.StatusUnprocessableEntity, code: "validation_failed", level: slog.LevelWarn, hasField: "cpf"},
		{name: "wrapped validation", err: fmt.Errorf("register: %w", verr), status: http.StatusUnprocessableEntity, code: "validation_failed", level: slog.LevelWarn, hasField: "cpf"},
		{name: "http error", err: handler.NewHTTPError(http.StatusConflict, "email_in_use"), status: http.StatusConflict, code: "email_in_use", level: slog.LevelWarn},
		{name: "invalid json", err: fmt.Errorf("%w: eof", binder.ErrInvalidJSON), status: http.StatusBadRequest, code: "bad_request", level: slog.LevelWarn},
		{name: "media type", err: binder.ErrUnsupportedMediaType, status: http.StatusUnsupportedMediaType, code: "unsupported_media_type", level: slog.LevelWarn},
		{name: "too large", err: binder.ErrRequestTooLarge, status: http.StatusRequestEntityTooLarge, code: "request_entity_too_large", level: slog.LevelWarn},
		{name: "unknown", err: errors.New("connection refused"), status: http.StatusInternalServerError, code: "internal_server_error", level: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info := handler.ClassifyError(tt.err)
			assert.Equal(t, tt.status, info.StatusCode)
			assert.Equal(t, tt.code, info.Code)
			assert.Equal(t, tt.level, info.LogLevel)
			if tt.hasField != "" {
				assert.Contains(t, info.Details, tt.hasField)
			} else {
				assert.Empty(t, info.Details)
			}
		})
	}
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("logs and renders translated envelope", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		errorHandler := handler.NewErrorHandler(log, handler.WithMessageTranslator(func(_ context.Context, key string) string {
			if key == "cpf_in_use" {
				return "Este CPF já está vinculado a uma conta existente."
			}
			return ""
		}))

		req := httptest.NewRequest(http.MethodPost, "/users", nil)
		req = req.WithContext(requestid.WithContext(req.Context(), "req-123"))
		rec := httptest.NewRecorder()

		errorHandler(handler.NewContext(rec, req), handler.NewHTTPError(http.StatusConflict, "cpf_in_use"))

		assert.Equal(t, http.StatusConflict, rec.Code)
		got := decodeEnvelope(t, rec)
		require.NotNil(t, got.Error)
		assert.Equal(t, "cpf_in_use", got.Error.Code)
		assert.Equal(t, "Este CPF já está vinculado a uma conta existente.", got.Error.Message)

		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), `"request_id":"req-123"`)
		assert.Contains(t, buf.String(), `"status_code":409`)
	})

	t.Run("internal errors are not exposed", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		errorHandler := handler.NewErrorHandler(slog.New(slog.NewTextHandler(&buf, nil)))

		rec := httptest.NewRecorder()
		errorHandler(handler.NewContext(rec, httptest.NewRequest(http.MethodGet, "/", nil)), errors.New("pq: password authentication failed"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password authentication")
		assert.Contains(t, buf.String(), "password authentication")
		assert.Contains(t, buf.String(), "level=ERROR")
	})

	t.Run("validation details are kept", func(t *testing.T) {
		t.Parallel()
		errorHandler := handler.NewErrorHandler(slog.New(slog.DiscardHandler))

		verr := handler.NewValidationError()
		verr.Add("email", "E-mail inválido.")
		verr.Add("email", "E-mail obrigatório.")

		rec := httptest.NewRecorder()
		errorHandler(handler.NewContext(rec, httptest.NewRequest(http.MethodPost, "/users", nil)), verr)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		got := decodeEnvelope(t, rec)
		require.NotNil(t, got.Error)
		assert.Equal(t, []string{"E-mail inválido.", "E-mail obrigatório."}, got.Error.Details["email"])
	})
}
