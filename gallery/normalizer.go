package gallery

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/webp"
)

// Normalize decodes the payload as an image and re-encodes it as PNG, so
// everything downstream only ever sees one format. A payload that does not
// decode is rejected here no matter what its extension or declared type
// claimed.
func Normalize(content []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, &ValidationError{"Invalid image file: " + err.Error()}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}
