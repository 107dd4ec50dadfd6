package panes

import (
	"testing"
	"time"
)

func TestParseLRCOrdersAndOffsetsLines(t *testing.T) {
	content := "[offset:-500]\n[00:10.00]second\n[00:00.00]first\n[00:00.00]first again\n"

	lines := parseLRC(content, 0)

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	if lines[0].Text != "first" || lines[1].Text != "first again" {
		t.Fatalf("unexpected order: %+v", lines[:2])
	}

	// file offset of -500ms shifts every timestamp earlier.
	if lines[0].At != -500*time.Millisecond {
		t.Fatalf("offset not applied: got %v", lines[0].At)
	}
}

func TestParseLRCMultipleTimestampsPerLine(t *testing.T) {
	lines := parseLRC("[00:01.00][00:05.00]repeated hook\n", 0)

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (one per timestamp)", len(lines))
	}
}

func TestActiveLineBeforeFirstTimestamp(t *testing.T) {
	lines := []lrcLine{{At: 2 * time.Second, Text: "a"}, {At: 5 * time.Second, Text: "b"}}

	if got := activeLine(lines, time.Second); got != -1 {
		t.Fatalf("got %d, want -1", got)
	}

	if got := activeLine(lines, 3*time.Second); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}

	if got := activeLine(lines, 10*time.Second); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}
