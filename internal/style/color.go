// ABOUTME: Color token model and parser for the theming pipeline
// ABOUTME: Parses named/indexed/RGB/hex tokens into one Color variant

// Package style implements the color and style model (resolve-with-fallback)
// used by the theming pipeline and the property formatter's styled output.
package style

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorKind tags which variant a Color holds.
type ColorKind int

const (
	// ColorNone means "unset"; resolve-with-fallback fills it from a default.
	ColorNone ColorKind = iota
	ColorReset
	ColorNamed
	ColorIndexed
	ColorRGB
)

// Named colors, matching the 16 ANSI base colors.
const (
	Black = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var namedColors = map[string]int{
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"bright-black":   BrightBlack,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,
	"gray":           BrightBlack,
	"grey":           BrightBlack,
}

// Color is a parsed color token. The zero value is ColorNone ("unset").
type Color struct {
	Kind    ColorKind
	Named   int
	Indexed uint8
	R, G, B uint8
}

// ParseError identifies the offending byte range of a rejected color token,
// per the parser's diagnostic contract.
type ParseError struct {
	Input      string
	Start, End int
	Reason     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid color %q at [%d:%d]: %s", e.Input, e.Start, e.End, e.Reason)
}

// ParseColor parses a single color token: "reset", a named color, "155"
// (256-indexed), "#rrggbb" or "rrggbb" (hex), or "rgb(r,g,b)".
func ParseColor(tok string) (Color, error) {
	raw := tok
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return Color{}, &ParseError{Input: raw, Start: 0, End: 0, Reason: "empty color token"}
	}

	lower := strings.ToLower(tok)
	if lower == "reset" || lower == "none" {
		return Color{Kind: ColorReset}, nil
	}

	if n, ok := namedColors[lower]; ok {
		return Color{Kind: ColorNamed, Named: n}, nil
	}

	if hex := strings.TrimPrefix(tok, "#"); len(hex) == 6 && isHex(hex) {
		r, g, b := hex[0:2], hex[2:4], hex[4:6]
		rv, _ := strconv.ParseUint(r, 16, 8)
		gv, _ := strconv.ParseUint(g, 16, 8)
		bv, _ := strconv.ParseUint(b, 16, 8)

		return Color{Kind: ColorRGB, R: uint8(rv), G: uint8(gv), B: uint8(bv)}, nil
	}

	if strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")") {
		inner := tok[4 : len(tok)-1]
		parts := strings.Split(inner, ",")
		if len(parts) != 3 {
			return Color{}, &ParseError{Input: raw, Start: 0, End: len(raw), Reason: "rgb() needs three components"}
		}

		vals := [3]uint8{}
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 || n > 255 {
				return Color{}, &ParseError{Input: raw, Start: 0, End: len(raw), Reason: "rgb() component out of range"}
			}

			vals[i] = uint8(n)
		}

		return Color{Kind: ColorRGB, R: vals[0], G: vals[1], B: vals[2]}, nil
	}

	if n, err := strconv.Atoi(tok); err == nil {
		if n < 0 || n > 255 {
			return Color{}, &ParseError{Input: raw, Start: 0, End: len(raw), Reason: "indexed color must be 0-255"}
		}

		return Color{Kind: ColorIndexed, Indexed: uint8(n)}, nil
	}

	return Color{}, &ParseError{Input: raw, Start: 0, End: len(raw), Reason: "unrecognized color token"}
}

func isHex(s string) bool {
	for _, r := range s {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F') {
			return false
		}
	}

	return true
}

// Hex renders an RGB color as "#rrggbb"; other kinds return "".
func (c Color) Hex() string {
	if c.Kind != ColorRGB {
		return ""
	}

	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsSet reports whether c carries an actual color (not the zero/unset value).
func (c Color) IsSet() bool {
	return c.Kind != ColorNone
}
