package imagery

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// cellAspect is the assumed terminal cell width:height ratio (roughly 1:2
// for common monospace fonts), used to convert a cols x rows cell budget
// into a pixel size that doesn't visually stretch the source image.
const cellAspect = 2

// Decode reads an album art blob (PNG/JPEG/GIF, whatever the daemon's
// albumart/readpicture commands returned) into an image.Image, decoding
// only the first frame of an animated GIF.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imagery: decode: %w", err)
	}

	return img, nil
}

// fitPixels resizes img to fill a cols x rows cell budget, preserving
// aspect ratio and cropping any excess rather than distorting it.
func fitPixels(img image.Image, cols, rows int) image.Image {
	w := cols
	h := rows * cellAspect

	if w <= 0 || h <= 0 {
		return img
	}

	return imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func base64Chunks(data []byte, size int) []string {
	b64 := base64.StdEncoding.EncodeToString(data)

	var chunks []string

	for len(b64) > 0 {
		n := size
		if n > len(b64) {
			n = len(b64)
		}

		chunks = append(chunks, b64[:n])
		b64 = b64[n:]
	}

	if len(chunks) == 0 {
		chunks = []string{""}
	}

	return chunks
}
