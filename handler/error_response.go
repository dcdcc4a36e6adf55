package handler

import "net/http"

// errorResponse hands err back to Wrap so the configured ErrorHandler
// renders it.
type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response that delegates rendering of err to the
// ErrorHandler passed to Wrap.
//
// Example:
//
//	u, err := users.Register(ctx, input)
//	if err != nil {
//		return handler.Error(err)
//	}
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
