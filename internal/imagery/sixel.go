package imagery

import (
	"fmt"
	"image"
	"strings"
)

// sixelLevels quantizes each RGB channel to this many steps, giving a
// sixelLevels^3 color cube small enough to declare as a handful of sixel
// color registers without a full palette-selection pass.
const sixelLevels = 6

// encodeSixel renders img as a DEC Sixel graphics sequence: a fixed 6x6x6
// color cube (not a content-adaptive palette, trading fidelity for a
// simple, allocation-light encoder) and row bands of 6 pixels, one sixel
// character column at a time.
func encodeSixel(img image.Image, cols, rows int) (string, error) {
	fitted := fitPixels(img, cols, rows)
	bounds := fitted.Bounds()

	w := bounds.Dx()
	h := bounds.Dy()

	var sb strings.Builder

	sb.WriteString("\x1bPq")

	for _, reg := range sixelPalette() {
		fmt.Fprintf(&sb, "#%d;2;%d;%d;%d", reg.index, reg.r, reg.g, reg.b)
	}

	for bandTop := 0; bandTop < h; bandTop += 6 {
		bandColors := map[int][]byte{}

		for x := 0; x < w; x++ {
			for dy := 0; dy < 6; dy++ {
				y := bandTop + dy
				if y >= h {
					continue
				}

				idx := quantizeIndex(fitted.At(bounds.Min.X+x, bounds.Min.Y+y))

				if len(bandColors[idx]) <= x {
					grown := make([]byte, x+1)
					copy(grown, bandColors[idx])
					bandColors[idx] = grown
				}

				bandColors[idx][x] |= 1 << uint(dy)
			}
		}

		first := true

		for idx, mask := range bandColors {
			if !first {
				sb.WriteByte('$')
			}

			first = false

			fmt.Fprintf(&sb, "#%d", idx)

			for x := 0; x < w; x++ {
				var bits byte

				if x < len(mask) {
					bits = mask[x]
				}

				sb.WriteByte(0x3F + bits)
			}
		}

		sb.WriteByte('-')
	}

	sb.WriteString("\x1b\\")

	return sb.String(), nil
}

type sixelColor struct {
	index, r, g, b int
}

func sixelPalette() []sixelColor {
	var out []sixelColor

	for ri := 0; ri < sixelLevels; ri++ {
		for gi := 0; gi < sixelLevels; gi++ {
			for bi := 0; bi < sixelLevels; bi++ {
				idx := (ri*sixelLevels+gi)*sixelLevels + bi
				out = append(out, sixelColor{
					index: idx,
					r:     ri * 100 / (sixelLevels - 1),
					g:     gi * 100 / (sixelLevels - 1),
					b:     bi * 100 / (sixelLevels - 1),
				})
			}
		}
	}

	return out
}

func quantizeIndex(c interface{ RGBA() (r, g, b, a uint32) }) int {
	r, g, b, _ := c.RGBA()

	ri := int(r>>8) * (sixelLevels - 1) / 255
	gi := int(g>>8) * (sixelLevels - 1) / 255
	bi := int(b>>8) * (sixelLevels - 1) / 255

	return (ri*sixelLevels+gi)*sixelLevels + bi
}
