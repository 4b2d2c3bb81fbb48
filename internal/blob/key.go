// Package blob provides the media object stores behind admin uploads:
// filesystem and S3-compatible backends plus an in-memory one for tests.
package blob

import (
	"fmt"
	"strings"
	"time"
)

// keyPrefix scopes every upload under one public folder.
const keyPrefix = "public"

// Key builds the object key for an uploaded file. Keys embed the upload
// moment in unix milliseconds so repeated uploads of the same filename
// never collide or overwrite.
func Key(filename string, now time.Time) string {
	return fmt.Sprintf("%s/%d_%s", keyPrefix, now.UnixMilli(), sanitizeFilename(filename))
}

// NewKey is Key with the current time.
func NewKey(filename string) string {
	return Key(filename, time.Now())
}

// sanitizeFilename lowercases the name and collapses anything outside
// [a-z0-9._-] to a dash, so keys stay URL and path safe.
func sanitizeFilename(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "file"
	}

	var b strings.Builder
	b.Grow(len(name))
	lastDash := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
			}
			lastDash = true
		}
	}

	out := strings.ReplaceAll(b.String(), "-.", ".")
	out = strings.Trim(out, "-.")
	if out == "" {
		return "file"
	}
	return out
}
