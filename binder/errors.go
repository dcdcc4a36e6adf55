package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidQuery         = errors.New("invalid query parameter")
	ErrInvalidPath          = errors.New("invalid path parameter")
	ErrRequestTooLarge      = errors.New("request body too large")

	// ErrBinderNotApplicable is returned when a binder does not handle the
	// request's content type. handler.Wrap skips such binders.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")
)
