package domain

import (
	"encoding/base64"
	"path/filepath"
	"strings"
	"time"
)

// supportedExtensions is the set of file extensions the catalog considers
// playable. Extensions are matched case-insensitively.
var supportedExtensions = map[string]struct{}{
	".mp4":  {},
	".avi":  {},
	".mov":  {},
	".wmv":  {},
	".flv":  {},
	".webm": {},
	".mkv":  {},
}

// mimeTypes maps supported extensions to the Content-Type served to the
// browser. Supported extensions without an entry fall back to video/mp4.
var mimeTypes = map[string]string{
	".mp4":  "video/mp4",
	".avi":  "video/x-msvideo",
	".mov":  "video/quicktime",
	".wmv":  "video/x-ms-wmv",
	".flv":  "video/x-flv",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
}

const defaultMimeType = "video/mp4"

// ClipRecord represents one playable clip discovered on disk. Records are
// rebuilt from the filesystem on every listing; nothing is cached or
// persisted between calls.
type ClipRecord struct {
	ID        string
	Filename  string
	Path      string
	SizeBytes uint64
	CreatedAt time.Time
	MimeType  string
}

// IsClipFile reports whether filename carries a supported video extension.
func IsClipFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := supportedExtensions[ext]
	return ok
}

// EncodeClipID derives the stable identifier for a clip from its filename:
// the standard base64 encoding of the name with every non-alphanumeric byte
// stripped. The result is URL-safe and a pure function of the filename, so
// repeated scans of the same file always yield the same id. Two distinct
// files can only collide if they share a name, which a single directory
// already forbids.
func EncodeClipID(filename string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(filename))

	var b strings.Builder
	b.Grow(len(encoded))
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// MimeTypeFor resolves the Content-Type for a clip filename.
func MimeTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if mime, ok := mimeTypes[ext]; ok {
		return mime
	}
	return defaultMimeType
}
