// ABOUTME: Recursive property-tree node types (C2's data model)

// Package property evaluates a tree of typed property nodes against a
// song/status context into either a plain string or a sequence of styled
// fragments (§4.1).
package property

import "mpctui/internal/style"

// LeafKind tags which typed leaf a Property node reads from.
type LeafKind int

const (
	LeafSong LeafKind = iota
	LeafStatus
	LeafWidget
)

// SongField names the song tags/metadata a song leaf may read.
type SongField string

const (
	SongFile     SongField = "file"
	SongTitle    SongField = "title"
	SongArtist   SongField = "artist"
	SongAlbum    SongField = "album"
	SongTrack    SongField = "track"
	SongDisc     SongField = "disc"
	SongGenre    SongField = "genre"
	SongDuration SongField = "duration"
	SongAdded    SongField = "added"
	SongModified SongField = "modified"
)

// StatusField names the Status fields a status leaf may read.
type StatusField string

const (
	StatusState       StatusField = "state"
	StatusElapsed     StatusField = "elapsed"
	StatusDuration    StatusField = "duration"
	StatusBitrate     StatusField = "bitrate"
	StatusCrossfade   StatusField = "crossfade"
	StatusSampleRate  StatusField = "samplerate"
	StatusBits        StatusField = "bits"
	StatusChannels    StatusField = "channels"
	StatusVolume      StatusField = "volume"
	StatusRepeat      StatusField = "repeat"
	StatusRandom      StatusField = "random"
	StatusSingle      StatusField = "single"
	StatusConsume     StatusField = "consume"
	StatusPartition   StatusField = "partition"
)

// WidgetField names a synthesised widget leaf.
type WidgetField string

const (
	WidgetVolume     WidgetField = "volume"
	WidgetStates     WidgetField = "states"
	WidgetScanStatus WidgetField = "scan_status"
)

// Leaf is one typed property reference plus its parsed arguments (e.g. a
// Truncate's "length" argument is a transform argument, not a leaf
// argument, but leaves like a hypothetical time format take their own).
type Leaf struct {
	Kind   LeafKind
	Song   SongField
	Status StatusField
	Widget WidgetField
	// Args holds DSL call arguments, e.g. $volume(width: 10).
	Args map[string]string
}

// NodeKind tags a property tree node's variant.
type NodeKind int

const (
	NodeText NodeKind = iota
	NodeSticker
	NodeProperty
	NodeGroup
	NodeTruncate
	NodeReplace
)

// Node is one property-tree node. Not every field applies to every Kind;
// see the NodeKind constants for which fields are meaningful.
type Node struct {
	Kind NodeKind

	// NodeText
	Text string

	// NodeSticker
	StickerName string

	// NodeProperty
	Leaf Leaf

	// NodeGroup
	Children []Node

	// NodeTruncate
	Content   *Node
	Length    int
	FromStart bool

	// NodeReplace
	Replacements map[string]Node

	// Common to every node: an optional style and an optional fallback
	// subtree, evaluated when this node resolves to None.
	Style   style.Spec
	HasStyle bool
	Default *Node
}

// Text returns a leaf Text node with no style/default, the common case for
// DSL string literals.
func Text(s string) Node {
	return Node{Kind: NodeText, Text: s}
}

// WithDefault attaches a fallback subtree, as parsed from a `|` in the DSL.
func (n Node) WithDefault(def Node) Node {
	n.Default = &def

	return n
}

// WithStyle attaches an inline style, as parsed from a `{...}` literal.
func (n Node) WithStyle(s style.Spec) Node {
	n.HasStyle = true
	n.Style = s

	return n
}
