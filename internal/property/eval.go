// ABOUTME: Property-tree evaluator: resolves a tree against (Song, Status)

package property

import (
	"fmt"
	"strings"
	"time"

	"mpctui/internal/mpd"
	"mpctui/internal/style"
)

// Fragment is one piece of styled output text.
type Fragment struct {
	Text  string
	Style style.Spec
}

// Result is the outcome of evaluating a node: either a (possibly empty)
// sequence of fragments, or None (Ok == false), which callers use to decide
// whether to fall back to a node's Default subtree.
type Result struct {
	Frags []Fragment
	OK    bool
}

// String concatenates a Result's fragment text, ignoring styles; used for
// the plain-string arity (comparisons, titles, clipboard payloads).
func (r Result) String() string {
	if !r.OK {
		return ""
	}

	var sb strings.Builder
	for _, f := range r.Frags {
		sb.WriteString(f.Text)
	}

	return sb.String()
}

func none() Result { return Result{OK: false} }

func one(text string, st style.Spec) Result {
	return Result{OK: true, Frags: []Fragment{{Text: text, Style: st}}}
}

// StickerLookup resolves a sticker value for the current song.
type StickerLookup func(song *mpd.Song, key string) (string, bool)

// Context carries the evaluation environment beyond (Song, Status): sticker
// lookup and a monotonic frame counter used to animate the ScanStatus
// widget without reading the wall clock.
type Context struct {
	Stickers StickerLookup
	Frame    int
	VolStep  int
}

var scanGlyphs = []rune{'|', '/', '-', '\\'}

// Eval evaluates node against (song, status, ctx), applying fallback to
// Default whenever the node itself resolves to None.
func Eval(n Node, song *mpd.Song, status mpd.Status, ctx Context) Result {
	res := evalNode(n, song, status, ctx)
	if !res.OK && n.Default != nil {
		return Eval(*n.Default, song, status, ctx)
	}

	if res.OK && n.HasStyle {
		res = applyStyle(res, n.Style)
	}

	return res
}

func applyStyle(r Result, s style.Spec) Result {
	out := Result{OK: true, Frags: make([]Fragment, len(r.Frags))}
	for i, f := range r.Frags {
		out.Frags[i] = Fragment{Text: f.Text, Style: f.Style.Merge(s)}
	}

	return out
}

func evalNode(n Node, song *mpd.Song, status mpd.Status, ctx Context) Result {
	switch n.Kind {
	case NodeText:
		return one(n.Text, style.Spec{})

	case NodeSticker:
		if song == nil || ctx.Stickers == nil {
			return none()
		}

		v, ok := ctx.Stickers(song, n.StickerName)
		if !ok {
			return none()
		}

		return one(v, style.Spec{})

	case NodeProperty:
		return evalLeaf(n.Leaf, song, status, ctx)

	case NodeGroup:
		var frags []Fragment

		for _, child := range n.Children {
			cr := Eval(child, song, status, ctx)
			if !cr.OK {
				return none()
			}

			frags = append(frags, cr.Frags...)
		}

		return Result{OK: true, Frags: frags}

	case NodeTruncate:
		if n.Content == nil {
			return none()
		}

		cr := Eval(*n.Content, song, status, ctx)
		if !cr.OK {
			return none()
		}

		return Result{OK: true, Frags: truncateFragments(cr.Frags, n.Length, n.FromStart)}

	case NodeReplace:
		if n.Content == nil {
			return none()
		}

		cr := Eval(*n.Content, song, status, ctx)
		if !cr.OK {
			return none()
		}

		key := cr.String()
		if repl, ok := n.Replacements[key]; ok {
			return Eval(repl, song, status, ctx)
		}

		return cr

	default:
		return none()
	}
}

// truncateFragments walks fragments from the requested end, retaining at
// most `length` runes of text total while preserving per-fragment styles on
// the retained prefix/suffix (§4.1's Truncate semantics).
func truncateFragments(frags []Fragment, length int, fromStart bool) []Fragment {
	total := 0
	for _, f := range frags {
		total += len([]rune(f.Text))
	}

	if length >= total {
		return frags
	}

	if length <= 0 {
		return nil
	}

	ordered := frags
	if fromStart {
		// "from_start" truncates keeping the tail, so walk from the back.
		ordered = reverseFragments(frags)
	}

	budget := length

	var out []Fragment

	for _, f := range ordered {
		runes := []rune(f.Text)
		if budget <= 0 {
			break
		}

		if len(runes) <= budget {
			out = append(out, f)
			budget -= len(runes)

			continue
		}

		var kept string
		if fromStart {
			kept = string(runes[len(runes)-budget:])
		} else {
			kept = string(runes[:budget])
		}

		out = append(out, Fragment{Text: kept, Style: f.Style})
		budget = 0
	}

	if fromStart {
		out = reverseFragments(out)
	}

	return out
}

func reverseFragments(in []Fragment) []Fragment {
	out := make([]Fragment, len(in))
	for i, f := range in {
		out[len(in)-1-i] = f
	}

	return out
}

func evalLeaf(l Leaf, song *mpd.Song, status mpd.Status, ctx Context) Result {
	switch l.Kind {
	case LeafSong:
		return evalSongLeaf(l, song)
	case LeafStatus:
		return evalStatusLeaf(l, status)
	case LeafWidget:
		return evalWidgetLeaf(l, status, ctx)
	default:
		return none()
	}
}

func evalSongLeaf(l Leaf, song *mpd.Song) Result {
	if song == nil {
		return none()
	}

	switch l.Song {
	case SongFile:
		return one(song.File, style.Spec{})
	case SongDuration:
		if !song.HasDur {
			return none()
		}

		return one(song.Duration.String(), style.Spec{})
	case SongAdded:
		if !song.HasAdded {
			return none()
		}

		return one(song.Added.Format(time.RFC3339), style.Spec{})
	case SongModified:
		if !song.HasModified {
			return none()
		}

		return one(song.LastModified.Format(time.RFC3339), style.Spec{})
	default:
		v, ok := song.Tag(string(l.Song))
		if !ok {
			return none()
		}

		return one(v, style.Spec{})
	}
}

func evalStatusLeaf(l Leaf, s mpd.Status) Result {
	switch l.Status {
	case StatusState:
		switch s.State {
		case mpd.StatePlaying:
			return one("playing", style.Spec{})
		case mpd.StatePaused:
			return one("paused", style.Spec{})
		default:
			return one("stopped", style.Spec{})
		}
	case StatusElapsed:
		return one(s.Elapsed.String(), style.Spec{})
	case StatusDuration:
		if !s.HasDuration {
			return none()
		}

		return one(s.Duration.String(), style.Spec{})
	case StatusBitrate:
		if !s.HasBitrate {
			return none()
		}

		return one(fmt.Sprintf("%d", s.Bitrate), style.Spec{})
	case StatusCrossfade:
		if !s.HasCrossfade {
			return none()
		}

		return one(s.Crossfade.String(), style.Spec{})
	case StatusSampleRate:
		if !s.HasSampleRate {
			return none()
		}

		return one(fmt.Sprintf("%d", s.SampleRate), style.Spec{})
	case StatusBits:
		if !s.HasBits {
			return none()
		}

		return one(fmt.Sprintf("%d", s.Bits), style.Spec{})
	case StatusChannels:
		if !s.HasChannels {
			return none()
		}

		return one(fmt.Sprintf("%d", s.Channels), style.Spec{})
	case StatusVolume:
		return one(fmt.Sprintf("%d", s.Volume), style.Spec{})
	case StatusRepeat:
		return one(fmt.Sprintf("%t", s.Repeat), style.Spec{})
	case StatusRandom:
		return one(fmt.Sprintf("%t", s.Random), style.Spec{})
	case StatusSingle:
		return one(triStateString(s.Single), style.Spec{})
	case StatusConsume:
		return one(triStateString(s.Consume), style.Spec{})
	case StatusPartition:
		return one(s.Partition, style.Spec{})
	default:
		return none()
	}
}

func evalWidgetLeaf(l Leaf, s mpd.Status, ctx Context) Result {
	switch l.Widget {
	case WidgetVolume:
		return one(volumeBar(s.Volume), style.Spec{})
	case WidgetStates:
		return statesWidget(s)
	case WidgetScanStatus:
		if !s.UpdatingDB {
			return none()
		}

		glyph := scanGlyphs[ctx.Frame%len(scanGlyphs)]

		return one(string(glyph), style.Spec{})
	default:
		return none()
	}
}

func triStateString(t mpd.TriState) string {
	switch t {
	case mpd.TriOn:
		return "on"
	case mpd.TriOneShot:
		return "oneshot"
	default:
		return "off"
	}
}

func volumeBar(vol int) string {
	const width = 10

	if vol < 0 {
		vol = 0
	}

	if vol > 100 {
		vol = 100
	}

	filled := (vol * width) / 100

	return strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
}

func statesWidget(s mpd.Status) Result {
	labels := []struct {
		name   string
		active bool
	}{
		{"repeat", s.Repeat},
		{"random", s.Random},
		{"consume", s.Consume != mpd.TriOff},
		{"single", s.Single != mpd.TriOff},
	}

	var frags []Fragment

	for i, l := range labels {
		if i > 0 {
			frags = append(frags, Fragment{Text: " "})
		}

		st := style.Spec{Modifiers: style.ModDim}
		if l.active {
			st = style.Spec{Modifiers: style.ModBold}
		}

		frags = append(frags, Fragment{Text: l.name, Style: st})
	}

	return Result{OK: true, Frags: frags}
}
