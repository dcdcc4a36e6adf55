package handler

import (
	"encoding/json"
	"net/http"
)

// JSONResponse is the envelope of every JSON body: data on success, error
// otherwise, meta for lists.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail is the error member of the envelope. Details holds
// per-field messages for validation failures.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON wraps v in the envelope with status 200. A JSONResponse is sent as is;
// errors and *ErrorDetail values are routed to JSONError.
func JSON(v any, opts ...JSONOption) Response {
	switch val := v.(type) {
	case *ErrorDetail, error:
		return JSONError(val, opts...)
	case JSONResponse:
		return newJSON(http.StatusOK, val, opts)
	default:
		return newJSON(http.StatusOK, JSONResponse{Data: v}, opts)
	}
}

// JSONError renders an error envelope. Errors are classified with
// ClassifyError, so unknown errors never leak their text; an *ErrorDetail
// is sent verbatim with status 500 unless overridden.
func JSONError(err any, opts ...JSONOption) Response {
	switch e := err.(type) {
	case *ErrorDetail:
		return newJSON(http.StatusInternalServerError, JSONResponse{Error: e}, opts)
	case error:
		info := ClassifyError(e)
		return newJSON(info.StatusCode, JSONResponse{Error: &ErrorDetail{
			Code:    info.Code,
			Message: info.Message,
			Details: info.Details,
		}}, opts)
	default:
		return newJSON(http.StatusInternalServerError, JSONResponse{Error: &ErrorDetail{
			Code:    ErrInternalServerError.Key,
			Message: http.StatusText(http.StatusInternalServerError),
		}}, opts)
	}
}

func newJSON(status int, body JSONResponse, opts []JSONOption) Response {
	r := &jsonResponse{status: status, body: body}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
