package gallery

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeJPEGToPNG(t *testing.T) {
	// A JPEG payload decodes fine and comes out as PNG; the extension and
	// declared-type checks are necessary but the decode is the real gate.
	normalized, err := Normalize(jpegBytes(t, 8, 8))
	require.NoError(t, err)

	_, format, err := image.Decode(bytes.NewReader(normalized))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
}

func TestNormalizeRejectsNonImage(t *testing.T) {
	_, err := Normalize([]byte("hello, not an image"))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Reason, "Invalid image file")
}

func TestNormalizeIdempotent(t *testing.T) {
	original := pngBytes(t, 6, 4)

	once, err := Normalize(original)
	require.NoError(t, err)
	twice, err := Normalize(once)
	require.NoError(t, err)

	imgOnce, _, err := image.Decode(bytes.NewReader(once))
	require.NoError(t, err)
	imgTwice, _, err := image.Decode(bytes.NewReader(twice))
	require.NoError(t, err)

	// Round-trips preserve pixel content, not necessarily bytes.
	require.Equal(t, imgOnce.Bounds(), imgTwice.Bounds())
	bounds := imgOnce.Bounds()
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			r1, g1, b1, a1 := imgOnce.At(x, y).RGBA()
			r2, g2, b2, a2 := imgTwice.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				t.Fatalf("pixel (%d,%d) changed after re-normalizing", x, y)
			}
		}
	}
}
