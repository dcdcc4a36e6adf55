package api

import (
	"github.com/dmitrymomot/pixkit/handler"
	"github.com/dmitrymomot/pixkit/pkg/cpf"
)

type checkCPFRequest struct {
	CPF string `path:"cpf"`
}

type checkCPFResponse struct {
	Valid     bool   `json:"valid"`
	Formatted string `json:"formatted,omitempty"`
}

// checkCPF reports whether the path value is a valid CPF. Invalid input is
// not an error: the answer is always 200 with valid=false.
func (a *API) checkCPF(_ handler.Context, req checkCPFRequest) handler.Response {
	normalized, err := cpf.Parse(req.CPF)
	if err != nil {
		return handler.JSON(checkCPFResponse{Valid: false})
	}
	return handler.JSON(checkCPFResponse{Valid: true, Formatted: cpf.Format(normalized)})
}
