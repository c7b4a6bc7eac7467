// Package uploader sends profile images to an asset service and returns
// the public URL under which the image can be fetched.
package uploader

import (
	"context"
	"errors"
	"fmt"
)

// Uploader stores img remotely and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, img Image) (string, error)
}

// Error wraps any failure of an upload attempt.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return "image upload failed: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	var ue *Error
	if errors.As(err, &ue) {
		return err
	}
	return &Error{Err: err}
}

// Backend selects the Uploader implementation.
type Backend string

const (
	BackendHTTP Backend = "http"
	BackendS3   Backend = "s3"
)

// Settings configures New.
type Settings struct {
	Backend Backend

	S3Bucket        string
	S3Region        string
	S3BaseEndpoint  string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string
}

// New builds the uploader chosen by s.Backend. api is used by the HTTP backend.
func New(ctx context.Context, s Settings, api ImageAPI) (Uploader, error) {
	switch s.Backend {
	case BackendHTTP, "":
		return NewHTTPUploader(api), nil
	case BackendS3:
		return NewS3Uploader(ctx, s)
	default:
		return nil, fmt.Errorf("unknown upload backend: %s", s.Backend)
	}
}
