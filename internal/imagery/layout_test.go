package imagery

import "testing"

func TestCreateAlignedAreaScenarioE(t *testing.T) {
	p := CreateAlignedArea(800, 600, 40, 10, 10, 20, 1200, 1200, AlignCenter)

	if p.UsedPxW != 400 || p.UsedPxH != 300 {
		t.Fatalf("used px = (%d,%d), want (400,300)", p.UsedPxW, p.UsedPxH)
	}

	if p.Cols != 40 || p.Rows != 15 {
		t.Fatalf("unclamped cell rect = (%d,%d), want (40,15)", p.Cols, p.Rows)
	}

	if p.ClampedCols != 40 || p.ClampedRows != 10 {
		t.Fatalf("clamped cell rect = (%d,%d), want (40,10)", p.ClampedCols, p.ClampedRows)
	}

	if p.OffsetCols != 0 {
		t.Fatalf("offset = %d, want 0", p.OffsetCols)
	}
}

func TestCreateAlignedAreaWellFitPreservesAspect(t *testing.T) {
	// A square image in a wide, generously tall area: width-driven scale
	// should leave enough row budget that the natural rect is never
	// clamped, and its aspect ratio should match the source image.
	p := CreateAlignedArea(100, 100, 20, 40, 1, 1, 0, 0, AlignLeft)

	if p.Cols != p.Rows {
		t.Fatalf("square image should yield a square cell rect, got %dx%d", p.Cols, p.Rows)
	}

	if p.Cols != p.ClampedCols || p.Rows != p.ClampedRows {
		t.Fatalf("well-fit placement should not be clamped: (%d,%d) vs clamped (%d,%d)",
			p.Cols, p.Rows, p.ClampedCols, p.ClampedRows)
	}
}

func TestCreateAlignedAreaDegenerateInputsYieldZero(t *testing.T) {
	p := CreateAlignedArea(0, 600, 40, 10, 10, 20, 0, 0, AlignLeft)
	if p.Cols != 0 || p.Rows != 0 {
		t.Fatalf("degenerate image width should yield zero rect, got %dx%d", p.Cols, p.Rows)
	}
}

func TestCreateAlignedAreaRightAlignment(t *testing.T) {
	p := CreateAlignedArea(100, 100, 20, 20, 1, 1, 0, 0, AlignRight)
	if p.OffsetCols != 0 {
		// image exactly fills the available width at this scale (cellW=1),
		// so right-aligned offset is still 0.
		t.Fatalf("offset = %d, want 0 for a width-filling placement", p.OffsetCols)
	}
}
