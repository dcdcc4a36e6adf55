// Package file stores user uploads such as profile pictures.
//
// Storage has two backends: LocalStorage keeps objects under a directory on
// disk and S3Storage puts them in an S3-compatible bucket. New selects one
// from Config.
//
// Uploads are checked before they reach a backend. Policy bounds the size and
// sniffs the content type from the file bytes rather than trusting the client
// supplied header or extension:
//
//	mimeType, err := file.ProfilePicturePolicy.Check(fh)
//	if err != nil {
//	    return err // ErrFileTooLarge or ErrMIMETypeNotAllowed
//	}
package file
