package uploader

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/finsync/internal/filex"
)

// MaxImageSize is the largest image LoadImage accepts.
const MaxImageSize = 5 << 20

// ErrNotImage is returned for files whose content is not an image.
var ErrNotImage = errors.New("file is not an image")

// Image is a selected, not yet uploaded, image file.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// LoadImage reads the file at path and sniffs its content type.
func LoadImage(path string) (*Image, error) {
	data, err := filex.ReadLimited(path, MaxImageSize)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	ct := http.DetectContentType(data)
	if !strings.HasPrefix(ct, "image/") {
		return nil, fmt.Errorf("%s: %w (%s)", filepath.Base(path), ErrNotImage, ct)
	}

	return &Image{Filename: filepath.Base(path), ContentType: ct, Data: data}, nil
}

// PreviewURL renders the image as a data: URL.
func (i Image) PreviewURL() string {
	return "data:" + i.ContentType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// Ext returns the file extension, derived from the name or the content type.
func (i Image) Ext() string {
	if ext := filepath.Ext(i.Filename); ext != "" {
		return strings.ToLower(ext)
	}
	switch i.ContentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
