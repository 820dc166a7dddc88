package constants

import "strings"

// AllowedMimeTypes holds the document types accepted for claim uploads.
var AllowedMimeTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
	"image/tiff":      {},
}

// MaxUploadBytes caps a single uploaded document.
const MaxUploadBytes = 20 * 1024 * 1024

// MaxEvidenceImageBytes caps an evidence image attached inline to an
// adjuster-model request. Larger files are skipped, not resized; downscaling
// happens before storage, outside this service.
const MaxEvidenceImageBytes = 8 * 1024 * 1024

// IsAllowedMimeType reports whether mime is an accepted upload type.
func IsAllowedMimeType(mime string) bool {
	_, ok := AllowedMimeTypes[strings.ToLower(strings.TrimSpace(mime))]
	return ok
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
