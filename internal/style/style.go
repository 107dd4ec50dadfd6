// ABOUTME: Style composition with fallback and lowering to lipgloss styles

package style

import "github.com/charmbracelet/lipgloss"

// Modifier is a bitset of text modifiers, matching the "bdiurx" mini-syntax
// used in the formatting DSL's inline style literal ({mods: bdiurx}).
type Modifier uint8

const (
	ModBold Modifier = 1 << iota
	ModDim
	ModItalic
	ModUnderlined
	ModReversed
	ModCrossedOut
)

// ParseModifiers turns a string of single-letter flags into a Modifier set.
// Unknown letters are ignored rather than rejected: the DSL parser is the
// place that enforces a strict alphabet, this helper is reused by the
// config loader which is more permissive about stray characters.
func ParseModifiers(s string) Modifier {
	var m Modifier

	for _, r := range s {
		switch r {
		case 'b':
			m |= ModBold
		case 'd':
			m |= ModDim
		case 'i':
			m |= ModItalic
		case 'u':
			m |= ModUnderlined
		case 'r':
			m |= ModReversed
		case 'x':
			m |= ModCrossedOut
		}
	}

	return m
}

// Spec is the optional, possibly-partial style attached to a config node or
// a property-tree node: any field may be unset, to be filled by a default.
type Spec struct {
	Fg        Color
	Bg        Color
	Modifiers Modifier
}

// ResolveWithFallback fills unset fields of s from (defaultFg, defaultBg);
// the modifier bits are left as they are. This is C1's one operation.
func (s Spec) ResolveWithFallback(defaultFg, defaultBg Color) Spec {
	out := s
	if !out.Fg.IsSet() {
		out.Fg = defaultFg
	}

	if !out.Bg.IsSet() {
		out.Bg = defaultBg
	}

	return out
}

// Merge unions two specs: set fields of override win, and modifiers combine.
func (s Spec) Merge(override Spec) Spec {
	out := s
	if override.Fg.IsSet() {
		out.Fg = override.Fg
	}

	if override.Bg.IsSet() {
		out.Bg = override.Bg
	}

	out.Modifiers |= override.Modifiers

	return out
}

// Lipgloss lowers a resolved Spec to a concrete lipgloss.Style.
func (s Spec) Lipgloss() lipgloss.Style {
	out := lipgloss.NewStyle()

	if fg := lipglossColor(s.Fg); fg != "" {
		out = out.Foreground(lipgloss.Color(fg))
	}

	if bg := lipglossColor(s.Bg); bg != "" {
		out = out.Background(lipgloss.Color(bg))
	}

	out = out.
		Bold(s.Modifiers&ModBold != 0).
		Faint(s.Modifiers&ModDim != 0).
		Italic(s.Modifiers&ModItalic != 0).
		Underline(s.Modifiers&ModUnderlined != 0).
		Reverse(s.Modifiers&ModReversed != 0).
		Strikethrough(s.Modifiers&ModCrossedOut != 0)

	return out
}

func lipglossColor(c Color) string {
	switch c.Kind {
	case ColorRGB:
		return c.Hex()
	case ColorIndexed:
		return itoa(int(c.Indexed))
	case ColorNamed:
		return itoa(c.Named)
	case ColorReset, ColorNone:
		return ""
	default:
		return ""
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	neg := n < 0
	if neg {
		n = -n
	}

	var buf [8]byte

	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}

	if neg {
		i--
		buf[i] = '-'
	}

	return string(buf[i:])
}
