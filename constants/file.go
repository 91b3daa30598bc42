package constants

import "strings"

// Source formats for the format field in exams.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
	TXT   = "TXT"
)

// FileTypes holds the allowed file types for the format field.
var FileTypes = []string{PDF, IMAGE, TXT}

// MaxUploadBytes caps exam uploads. Policy value, enforced at ingestion.
const MaxUploadBytes = 5 << 20 // 5 MiB

// AllowedMIMETypes is the upload allow-list. Anything else is rejected
// before storage, with no fallback sniffing.
var AllowedMIMETypes = map[string]struct{}{
	"application/pdf": {},
	"image/png":       {},
	"image/jpeg":      {},
	"image/jpg":       {},
	"text/plain":      {},
}

// MapMIMEToFormat maps a declared MIME type to a source format.
// Returns "" for unsupported types.
func MapMIMEToFormat(mime string) string {
	switch NormalizeMIME(mime) {
	case "application/pdf":
		return PDF
	case "image/png", "image/jpeg", "image/jpg":
		return IMAGE
	case "text/plain":
		return TXT
	default:
		return ""
	}
}

// NormalizeMIME lowercases and strips parameters ("text/plain; charset=utf-8").
func NormalizeMIME(mime string) string {
	mime = strings.TrimSpace(strings.ToLower(mime))
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	return mime
}

// IsAllowedMIME reports whether the declared MIME type may be ingested.
func IsAllowedMIME(mime string) bool {
	_, ok := AllowedMIMETypes[NormalizeMIME(mime)]
	return ok
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// InferMIMEFromName guesses a MIME type from the filename extension.
// Used only when the caller did not declare one.
func InferMIMEFromName(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	switch NormalizeExt(name[i:]) {
	case "pdf":
		return "application/pdf"
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "txt":
		return "text/plain"
	default:
		return ""
	}
}
