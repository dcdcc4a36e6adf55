package binder

import (
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"reflect"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms.
const DefaultMaxMemory = 10 << 20 // 10 MB

var fileHeaderType = reflect.TypeFor[*multipart.FileHeader]()

// File creates a binder for `file:"name"` tagged fields of type
// *multipart.FileHeader or []*multipart.FileHeader.
// Requests that are not multipart/form-data return ErrBinderNotApplicable.
//
// Example:
//
//	type UploadRequest struct {
//		UserID  string                `path:"id"`
//		Picture *multipart.FileHeader `file:"profile_picture"`
//	}
func File() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "multipart/form-data" {
			return ErrBinderNotApplicable
		}

		if err := parseMultipart(r); err != nil {
			return err
		}

		rv, err := structValue(v, ErrInvalidForm)
		if err != nil {
			return err
		}
		rt := rv.Type()

		for i := range rv.NumField() {
			field := rv.Field(i)
			fieldType := rt.Field(i)
			if !field.CanSet() {
				continue
			}

			name, skip := parseFieldTag(fieldType, "file")
			if skip {
				continue
			}

			headers := r.MultipartForm.File[name]
			if len(headers) == 0 {
				continue
			}

			switch fieldType.Type {
			case fileHeaderType:
				field.Set(reflect.ValueOf(headers[0]))
			case reflect.SliceOf(fileHeaderType):
				field.Set(reflect.ValueOf(headers))
			default:
				return fmt.Errorf("%w: field %s: unsupported type %s", ErrInvalidForm, fieldType.Name, fieldType.Type)
			}
		}

		return nil
	}
}

func parseMultipart(r *http.Request) error {
	if r.MultipartForm != nil {
		return nil
	}
	if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("%w: %v", ErrRequestTooLarge, err)
		}
		return fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	return nil
}
