package media

import (
	"context"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Storage is where uploaded images live. Two backends exist: local disk
// (default) and GridFS. Names are opaque to callers; PublicURL turns one into
// the path clients fetch it from.
type Storage interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) error
	Open(ctx context.Context, name string) (io.ReadCloser, int64, error)
	Delete(ctx context.Context, name string) error
}

var allowedImageTypes = map[string]bool{
	"image/jpeg":  true,
	"image/jpg":   true,
	"image/pjpeg": true,
	"image/png":   true,
	"image/avif":  true,
}

// AllowedImageType reports whether an upload's MIME type is accepted.
func AllowedImageType(contentType string) bool {
	return allowedImageTypes[strings.ToLower(contentType)]
}

var safeExtRegex = regexp.MustCompile(`^\.[A-Za-z0-9]+$`)

// NewStoredName generates the stored file name for an upload: a UUID plus the
// original extension when it looks sane.
func NewStoredName(originalName string) string {
	ext := filepath.Ext(originalName)
	if len(ext) > 8 {
		ext = ext[:8]
	}
	if !safeExtRegex.MatchString(ext) {
		ext = ""
	}
	return uuid.NewString() + ext
}

// PublicURL is the path a stored name is served from, optionally absolute
// when a public base URL is configured.
func PublicURL(baseURL, name string) string {
	path := "/uploads/" + name
	if baseURL == "" {
		return path
	}
	return baseURL + path
}

// ContentTypeFor maps a stored name's extension to the response content type.
func ContentTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".avif":
		return "image/avif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
