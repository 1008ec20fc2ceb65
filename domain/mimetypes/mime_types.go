package mimetypes

import (
	"mime"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown   MIME = "unknown"
	TextPlain MIME = "text/plain"
	TextHTML  MIME = "text/html"

	ApplicationJSON        MIME = "application/json"
	ApplicationOctetStream MIME = "application/octet-stream"
)

// Matches reports whether a detected media type (parameters allowed) is the expected one.
func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// Sniff reads the head of the file and returns its detected media type.
func Sniff(path string) (string, error) {
	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	return detected.String(), nil
}

// IsText reports whether a detected media type is readable text.
// JSON is checked separately since mimetype reports it as its own type.
func IsText(detected string) bool {
	if _, ok := Matches(detected, TextPlain); ok {
		return true
	}
	_, ok := Matches(detected, ApplicationJSON)
	return ok
}
