package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/pixkit/binder"
	"github.com/dmitrymomot/pixkit/pkg/logger"
	"github.com/dmitrymomot/pixkit/pkg/requestid"
)

// MessageTranslator resolves an error key into a user-facing message.
// Returning an empty string keeps the default message.
type MessageTranslator func(ctx context.Context, key string) string

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string][]string
	LogLevel   slog.Level
}

type errorHandlerConfig struct {
	translate MessageTranslator
}

// ErrorHandlerOption configures NewErrorHandler.
type ErrorHandlerOption func(*errorHandlerConfig)

// WithMessageTranslator localizes the message of the JSON error envelope.
func WithMessageTranslator(fn MessageTranslator) ErrorHandlerOption {
	return func(c *errorHandlerConfig) {
		c.translate = fn
	}
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// ClassifyError maps err to a status code and an error key.
// Binding failures become 4xx; unknown errors become a generic 500.
func ClassifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrInternalServerError.Key,
	}

	var validationErr ValidationError
	var httpErr HTTPError
	switch {
	case errors.As(err, &validationErr):
		info.StatusCode = http.StatusUnprocessableEntity
		info.Code = "validation_failed"
		if len(validationErr) > 0 {
			info.Details = map[string][]string(validationErr)
		}
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Code = httpErr.Key
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		info.StatusCode = ErrUnsupportedMediaType.Code
		info.Code = ErrUnsupportedMediaType.Key
	case errors.Is(err, binder.ErrRequestTooLarge):
		info.StatusCode = ErrRequestEntityTooLarge.Code
		info.Code = ErrRequestEntityTooLarge.Key
	case errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrInvalidQuery),
		errors.Is(err, binder.ErrInvalidPath):
		info.StatusCode = ErrBadRequest.Code
		info.Code = ErrBadRequest.Key
	}

	info.Message = http.StatusText(info.StatusCode)
	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

// logError logs the error with request context
func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler creates the error handler that renders the JSON error
// envelope. Configure this once in the router and pass it to every Wrap call.
func NewErrorHandler(log *slog.Logger, opts ...ErrorHandlerOption) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	cfg := &errorHandlerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(ctx Context, err error) {
		info := ClassifyError(err)
		logError(log, ctx, err, info)

		if cfg.translate != nil {
			if msg := cfg.translate(ctx, info.Code); msg != "" {
				info.Message = msg
			}
		}

		resp := JSONError(&ErrorDetail{
			Code:    info.Code,
			Message: info.Message,
			Details: info.Details,
		}, WithJSONStatus(info.StatusCode))

		if renderErr := resp.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.Error("failed to render error response",
				logger.RequestID(requestid.FromContext(ctx)),
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}
