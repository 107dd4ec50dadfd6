// ABOUTME: Canvas compositor: stitches each pane's rendered block into its
// ABOUTME: computed Area, and overlays the modal stack on top

package uimodel

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// canvas is a fixed-size grid of cells used to composite panes (and, atop
// them, modals) at absolute positions, since lipgloss's own
// Join{Horizontal,Vertical} only compose along a single axis at a time and
// our layout tree can nest both.
type canvas struct {
	w, h  int
	cells [][]rune
}

func newCanvas(w, h int) *canvas {
	cells := make([][]rune, h)
	for y := range cells {
		row := make([]rune, w)
		for x := range row {
			row[x] = ' '
		}

		cells[y] = row
	}

	return &canvas{w: w, h: h, cells: cells}
}

// blit writes block's lines at (x, y), clipping anything outside the
// canvas. It advances by the on-screen display width of each rune so
// wide (e.g. CJK) characters don't desync the grid.
func (c *canvas) blit(x, y int, block string) {
	for dy, line := range strings.Split(block, "\n") {
		row := y + dy
		if row < 0 || row >= c.h {
			continue
		}

		col := x

		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				w = 1
			}

			if col >= 0 && col < c.w {
				c.cells[row][col] = r

				for i := 1; i < w && col+i < c.w; i++ {
					c.cells[row][col+i] = 0
				}
			}

			col += w
		}
	}
}

func (c *canvas) String() string {
	var sb strings.Builder

	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}

		for _, r := range row {
			if r == 0 {
				continue
			}

			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// renderTab composites the active tab's panes onto a width x height canvas.
func renderTab(c *Ctx, width, height int) string {
	canv := newCanvas(width, height)

	area := Area{X: 0, Y: 0, W: width, H: height}

	if c.ActiveTab < 0 || c.ActiveTab >= len(c.Tabs) {
		return canv.String()
	}

	for _, leaf := range c.ActiveTabLayout(area) {
		p, ok := c.Tabs[c.ActiveTab].Panes[leaf.Ref]
		if !ok {
			continue
		}

		canv.blit(leaf.Area.X, leaf.Area.Y, p.Render())
	}

	return canv.String()
}

// overlay draws top centered over base, both already rendered to their own
// dimensions; used to place a modal above the tab content.
func overlay(base, top string) string {
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")

	h := len(baseLines)
	w := 0

	for _, l := range baseLines {
		if lw := runewidth.StringWidth(l); lw > w {
			w = lw
		}
	}

	canv := newCanvas(w, h)
	canv.blit(0, 0, base)

	topH := len(topLines)
	topW := 0

	for _, l := range topLines {
		if lw := runewidth.StringWidth(l); lw > topW {
			topW = lw
		}
	}

	x := (w - topW) / 2
	y := (h - topH) / 2

	canv.blit(x, y, top)

	return canv.String()
}
