package binder

import (
	"fmt"
	"net/http"
)

// BindForm creates a form binder for application/x-www-form-urlencoded and
// multipart/form-data bodies. Fields are matched by `form:"name"` tags.
// File parts are handled by File.
func BindForm() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mediaType, err := requireMediaType(r, "application/x-www-form-urlencoded")
		if err != nil {
			return err
		}

		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
		case "multipart/form-data":
			if err := parseMultipart(r); err != nil {
				return err
			}
		default:
			return ErrBinderNotApplicable
		}

		return bindFields(v, "form", ErrInvalidForm, func(name string) []string {
			return r.PostForm[name]
		})
	}
}
