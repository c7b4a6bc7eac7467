package uploader

import (
	"context"

	"github.com/dmitrijs2005/finsync/internal/client/models"
)

// ImageAPI is the part of the API client the HTTP backend needs.
type ImageAPI interface {
	UploadImage(ctx context.Context, filename, contentType string, data []byte) (*models.UploadImageResponse, error)
}

// HTTPUploader posts the image to the backend's asset endpoint.
type HTTPUploader struct {
	api ImageAPI
}

func NewHTTPUploader(api ImageAPI) *HTTPUploader {
	return &HTTPUploader{api: api}
}

// Upload returns the imageUrl from the response; a response without one
// yields "".
func (u *HTTPUploader) Upload(ctx context.Context, img Image) (string, error) {
	resp, err := u.api.UploadImage(ctx, img.Filename, img.ContentType, img.Data)
	if err != nil {
		return "", wrap(err)
	}
	return resp.ImageURL, nil
}
