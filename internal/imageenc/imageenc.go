// Package imageenc turns uploaded image bytes into a self-contained text
// representation that can be stored as a plain value and used directly as
// an image source.
package imageenc

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// MaxImageBytes bounds a single encoded image. Values are stored inline in
// the key-value store, so oversized uploads are rejected up front.
const MaxImageBytes = 8 << 20

// ErrNotImage is returned when the payload does not look like an image
var ErrNotImage = errors.New("imageenc: payload is not an image")

// ErrTooLarge is returned when the payload exceeds MaxImageBytes
var ErrTooLarge = errors.New("imageenc: payload too large")

// EncodeFile encodes raw image bytes as a data URI. The MIME type is
// sniffed from the content, not taken from the filename.
func EncodeFile(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrNotImage
	}
	if len(data) > MaxImageBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
