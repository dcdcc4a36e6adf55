package binder

import (
	"fmt"
	"net/http"
)

// Path creates a path parameter binder function using the provided extractor.
// The extractor is called for each `path:"name"` tagged field.
//
// Example with chi router:
//
//	type QRCodeRequest struct {
//		UserID string `path:"userID"`
//		ID     string `path:"id"`
//		Size   int    `query:"size"`
//	}
//
//	r.Get("/users/{userID}/transactions/{id}/qrcode.png", handler.Wrap(qrcode,
//		handler.WithBinders[handler.Context, QRCodeRequest](
//			binder.Path(chi.URLParam),
//			binder.BindQuery(),
//		),
//	))
func Path(extractor func(r *http.Request, fieldName string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		return bindFields(v, "path", ErrInvalidPath, func(name string) []string {
			if value := extractor(r, name); value != "" {
				return []string{value}
			}
			return nil
		})
	}
}
