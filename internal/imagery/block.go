package imagery

import (
	"fmt"
	"image"
	"strings"
)

// renderBlock draws img as two-pixel-per-cell Unicode half blocks: the
// upper-half-block character painted with the top pixel as foreground and
// the bottom pixel as background, the only backend that needs no terminal
// cooperation at all.
func renderBlock(img image.Image, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	fitted := fitPixels(img, cols, rows)
	bounds := fitted.Bounds()

	var sb strings.Builder

	for row := 0; row < rows; row++ {
		topY := bounds.Min.Y + row*cellAspect
		botY := topY + 1

		for col := 0; col < cols; col++ {
			x := bounds.Min.X + col

			tr, tg, tb, _ := fitted.At(x, topY).RGBA()

			var br, bg, bb uint32
			if botY < bounds.Max.Y {
				br, bg, bb, _ = fitted.At(x, botY).RGBA()
			} else {
				br, bg, bb = tr, tg, tb
			}

			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				tr>>8, tg>>8, tb>>8, br>>8, bg>>8, bb>>8)
		}

		sb.WriteString("\x1b[0m")

		if row < rows-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
