package utils

import (
	"encoding/base64"
	"strings"
)

// EncodeImage turns raw image bytes into their base64 transport form.
// The bytes themselves are never transcoded.
func EncodeImage(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// SplitDataURI takes an inline image like "data:image/png;base64,AAAA" apart.
// Returns ok=false for anything that is not a base64 data URI.
func SplitDataURI(uri string) (mime string, b64 string, ok bool) {
	rest, found := strings.CutPrefix(uri, "data:")
	if !found {
		return "", "", false
	}

	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return "", "", false
	}

	if !strings.HasSuffix(meta, ";base64") {
		return "", "", false
	}
	mime = strings.TrimSuffix(meta, ";base64")
	if mime == "" {
		mime = "application/octet-stream"
	}
	return mime, payload, true
}
