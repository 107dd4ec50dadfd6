package imagery

import (
	"encoding/base64"
	"fmt"
	"image"
)

// encodeITerm2 builds the iTerm2 inline-images proprietary escape sequence
// (OSC 1337), sized in cell units so the terminal itself handles the final
// pixel scaling.
func encodeITerm2(img image.Image, cols, rows int) (string, error) {
	fitted := fitPixels(img, cols, rows)

	png, err := encodePNG(fitted)
	if err != nil {
		return "", err
	}

	b64 := base64.StdEncoding.EncodeToString(png)

	return fmt.Sprintf("\x1b]1337;File=inline=1;width=%d;height=%d;preserveAspectRatio=0:%s\a",
		cols, rows, b64), nil
}
