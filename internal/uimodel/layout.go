// ABOUTME: Depth-first layout: turns a tab's nested split tree and a
// ABOUTME: terminal-sized Area into per-pane-reference Areas

package uimodel

import "mpctui/internal/config"

// Leaf pairs a resolved pane reference with its computed Area.
type Leaf struct {
	Ref  string
	Area Area
}

// Compute walks root depth-first, dividing area along each split's
// direction, giving each child SizePercent percent of the parent (a split
// whose children total under 100 leaves the remainder unused at the
// trailing edge, one summing to exactly 100 tiles the parent exactly, and
// one summing to more than 100 is renormalized against that sum).
func Compute(root config.SizedPaneOrSplit, area Area) []Leaf {
	var leaves []Leaf

	walk(root, area, &leaves)

	return leaves
}

func walk(n config.SizedPaneOrSplit, area Area, out *[]Leaf) {
	if n.Split == nil {
		*out = append(*out, Leaf{Ref: n.PaneRef, Area: area})

		return
	}

	children := n.Split.Children

	total := 0
	for _, c := range children {
		total += c.SizePercent
	}

	if total == 0 {
		return
	}

	denom := total
	if denom < 100 {
		denom = 100
	}

	offset := 0

	switch n.Split.Direction {
	case config.Horizontal:
		for _, c := range children {
			w := c.SizePercent * area.W / denom
			childArea := Area{X: area.X + offset, Y: area.Y, W: w, H: area.H}
			walk(c, childArea, out)
			offset += w
		}
	default: // Vertical
		for _, c := range children {
			h := c.SizePercent * area.H / denom
			childArea := Area{X: area.X, Y: area.Y + offset, W: area.W, H: h}
			walk(c, childArea, out)
			offset += h
		}
	}
}
