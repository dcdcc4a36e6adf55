// Package handler provides type-safe HTTP request handling.
//
// A HandlerFunc receives a Context and a request struct populated by binders
// from package binder, and returns a Response. Wrap adapts it to
// http.HandlerFunc:
//
//	type LoginRequest struct {
//		Email    string `json:"email"`
//		Password string `json:"password"`
//	}
//
//	func login(ctx handler.Context, req LoginRequest) handler.Response {
//		u, err := users.Authenticate(ctx, req.Email, req.Password)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.JSON(u)
//	}
//
//	r.Post("/auth/login", handler.Wrap(login,
//		handler.WithBinder[handler.Context, LoginRequest](binder.BindJSON()),
//		handler.WithErrorHandler[handler.Context, LoginRequest](handler.NewErrorHandler(log)),
//	))
//
// Responses use the JSONResponse envelope. Errors are classified by
// ClassifyError: ValidationError becomes 422 with per-field details,
// HTTPError keeps its status and key, binder failures map to 400, 413 or 415,
// and anything else is a 500 whose internals are only logged.
package handler
