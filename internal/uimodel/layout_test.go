package uimodel

import "mpctui/internal/config"

import "testing"

func TestComputeVerticalSplitDividesHeight(t *testing.T) {
	root := config.SizedPaneOrSplit{
		SizePercent: 100,
		Split: &config.Split{
			Direction: config.Vertical,
			Children: []config.SizedPaneOrSplit{
				{SizePercent: 10, PaneRef: "header"},
				{SizePercent: 80, PaneRef: "queue"},
				{SizePercent: 10, PaneRef: "progress_bar"},
			},
		},
	}

	leaves := Compute(root, Area{X: 0, Y: 0, W: 100, H: 100})

	if len(leaves) != 3 {
		t.Fatalf("expected 3 leaves, got %d", len(leaves))
	}

	if leaves[0].Area.H != 10 || leaves[0].Area.Y != 0 {
		t.Fatalf("unexpected header area: %+v", leaves[0].Area)
	}

	if leaves[1].Area.H != 80 || leaves[1].Area.Y != 10 {
		t.Fatalf("unexpected queue area: %+v", leaves[1].Area)
	}

	if leaves[2].Area.H != 10 || leaves[2].Area.Y != 90 {
		t.Fatalf("unexpected progress bar area: %+v", leaves[2].Area)
	}
}

func TestComputeHorizontalSplitDividesWidth(t *testing.T) {
	root := config.SizedPaneOrSplit{
		SizePercent: 100,
		Split: &config.Split{
			Direction: config.Horizontal,
			Children: []config.SizedPaneOrSplit{
				{SizePercent: 30, PaneRef: "browser"},
				{SizePercent: 70, PaneRef: "album_art"},
			},
		},
	}

	leaves := Compute(root, Area{X: 0, Y: 0, W: 100, H: 40})

	if leaves[0].Area.W != 30 || leaves[1].Area.W != 70 || leaves[1].Area.X != 30 {
		t.Fatalf("unexpected widths: %+v %+v", leaves[0].Area, leaves[1].Area)
	}
}

func TestComputeNestedSplits(t *testing.T) {
	root := config.SizedPaneOrSplit{
		SizePercent: 100,
		Split: &config.Split{
			Direction: config.Vertical,
			Children: []config.SizedPaneOrSplit{
				{SizePercent: 20, PaneRef: "header"},
				{
					SizePercent: 80,
					Split: &config.Split{
						Direction: config.Horizontal,
						Children: []config.SizedPaneOrSplit{
							{SizePercent: 50, PaneRef: "browser"},
							{SizePercent: 50, PaneRef: "album_art"},
						},
					},
				},
			},
		},
	}

	leaves := Compute(root, Area{X: 0, Y: 0, W: 100, H: 100})

	if len(leaves) != 3 {
		t.Fatalf("expected 3 leaves, got %d", len(leaves))
	}

	browser := leaves[1]
	if browser.Area.Y != 20 || browser.Area.H != 80 || browser.Area.W != 50 {
		t.Fatalf("unexpected nested browser area: %+v", browser.Area)
	}
}
