package imagery

import "math"

// Alignment controls where a placed image rect sits within the available
// cell area along the axis it doesn't fill.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Placement is the result of CreateAlignedArea: the pixel size actually
// used, the cell rect that would hold it at full size, and the same rect
// clamped to the caller's available area (the two differ whenever the
// image's aspect ratio can't be honoured within the available rows at full
// width).
type Placement struct {
	UsedPxW, UsedPxH int

	Cols, Rows               int // unclamped, aspect-correct cell size
	ClampedCols, ClampedRows int // Cols/Rows bounded by availCols/availRows

	OffsetCols int // left edge of the unclamped rect within availCols, per align
}

// CreateAlignedArea scales an image to fill the available width in pixels
// (availCols*cellW), honouring aspect ratio, then bounds the result by
// (maxW, maxH) in pixels. The resulting cell rect is reported both at its
// natural (possibly taller-than-available) size and clamped to fit
// availRows, since a tall image at the full available width can exceed the
// vertical budget.
func CreateAlignedArea(imgW, imgH, availCols, availRows, cellW, cellH, maxW, maxH int, align Alignment) Placement {
	if imgW <= 0 || imgH <= 0 || availCols <= 0 || availRows <= 0 || cellW <= 0 || cellH <= 0 {
		return Placement{}
	}

	availPxW := availCols * cellW

	scale := float64(availPxW) / float64(imgW)
	usedW := availPxW
	usedH := int(math.Round(float64(imgH) * scale))

	if maxW > 0 && usedW > maxW {
		scale = float64(maxW) / float64(imgW)
		usedW = maxW
		usedH = int(math.Round(float64(imgH) * scale))
	}

	if maxH > 0 && usedH > maxH {
		scale = float64(maxH) / float64(imgH)
		usedH = maxH
		usedW = int(math.Round(float64(imgW) * scale))
	}

	cols := ceilDiv(usedW, cellW)
	rows := ceilDiv(usedH, cellH)

	clampedCols := cols
	if clampedCols > availCols {
		clampedCols = availCols
	}

	clampedRows := rows
	if clampedRows > availRows {
		clampedRows = availRows
	}

	offset := 0

	switch align {
	case AlignCenter:
		offset = (availCols - cols) / 2
	case AlignRight:
		offset = availCols - cols
	}

	if offset < 0 {
		offset = 0
	}

	return Placement{
		UsedPxW: usedW, UsedPxH: usedH,
		Cols: cols, Rows: rows,
		ClampedCols: clampedCols, ClampedRows: clampedRows,
		OffsetCols: offset,
	}
}

func ceilDiv(a, b int) int {
	if b == 0 {
		return 0
	}

	return (a + b - 1) / b
}
