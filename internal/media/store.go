package media

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Entry describes a stored file for maintenance sweeps.
type Entry struct {
	Name    string
	ModTime time.Time
}

// FileStore persists uploaded files under a configured root.
type FileStore interface {
	Save(ctx context.Context, name string, data []byte) error
	// Delete reports whether the file existed.
	Delete(ctx context.Context, name string) (bool, error)
	Exists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]Entry, error)
	// URL returns the public reference for a stored file.
	URL(name string) string
}

// ErrUnsafeName rejects names that cannot be used as a single path segment.
var ErrUnsafeName = errors.New("unsafe file name")

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// AllowedExtension extracts the lowercased extension of filename and reports
// whether it belongs to the accepted image set.
func AllowedExtension(filename string) (string, bool) {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 || idx == len(filename)-1 {
		return "", false
	}
	ext := strings.ToLower(filename[idx+1:])
	return ext, allowedExtensions[ext]
}

// PictureFilename builds the stored name for a user's profile picture:
// user_<id>_<unixtime>.<ext>, unique per user and point in time.
func PictureFilename(userID int64, ext string, now time.Time) string {
	return Sanitize(fmt.Sprintf("user_%d_%d.%s", userID, now.Unix(), ext))
}

// Sanitize collapses anything outside [A-Za-z0-9._-] to an underscore so the
// result is safe as a single path segment.
func Sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, name)
}

// validateName ensures name is a sanitized, non-degenerate path segment.
func validateName(name string) error {
	if name == "" || name != Sanitize(name) {
		return ErrUnsafeName
	}
	if strings.Trim(name, ".") == "" {
		return ErrUnsafeName
	}
	return nil
}
