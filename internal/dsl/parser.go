// ABOUTME: Recursive-descent parser for the embedded formatting mini-language
// ABOUTME: Parses $name/%name/[...] templates into property.Node trees

// Package dsl parses the embedded `$name{…}` / `%name{…}` / `[ … ]` format
// language (C4) used throughout song-format and theme templates, producing
// property.Node trees for the evaluator in internal/property.
package dsl

import (
	"fmt"
	"strconv"
	"strings"

	"mpctui/internal/property"
	"mpctui/internal/style"
)

// maxDepth bounds recursion, per §4.1 ("Recursion depth is bounded (≈ 100
// levels)").
const maxDepth = 100

// ParseError carries a byte-offset diagnostic, as the specification
// requires of every DSL/config/theme parse error.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("format dsl: %s (at byte %d)", e.Msg, e.Pos)
}

type parser struct {
	src   string
	pos   int
	depth int
}

// Parse parses a full template string into a property tree. The template is
// treated as an implicit top-level group: a sequence of text/property/
// transform items concatenated in order.
func Parse(src string) (property.Node, error) {
	p := &parser{src: src}

	items, err := p.parseSequence(func(c byte) bool { return false })
	if err != nil {
		return property.Node{}, err
	}

	p.skipWS()

	if p.pos != len(p.src) {
		return property.Node{}, &ParseError{Pos: p.pos, Msg: "unexpected trailing input"}
	}

	if len(items) == 1 {
		return items[0], nil
	}

	return property.Node{Kind: property.NodeGroup, Children: items}, nil
}

// parseSequence parses items until EOF or a byte for which stop returns
// true (without consuming the stopping byte).
func (p *parser) parseSequence(stop func(byte) bool) ([]property.Node, error) {
	var items []property.Node

	for {
		p.skipWS()

		if p.pos >= len(p.src) || stop(p.src[p.pos]) {
			return items, nil
		}

		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}
}

// parseItem parses one primary (with optional trailing {style}) followed by
// an optional `|` fallback chain.
func (p *parser) parseItem() (property.Node, error) {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > maxDepth {
		return property.Node{}, &ParseError{Pos: p.pos, Msg: "max recursion depth exceeded"}
	}

	node, err := p.parsePrimary()
	if err != nil {
		return property.Node{}, err
	}

	node, err = p.maybeAttachStyle(node)
	if err != nil {
		return property.Node{}, err
	}

	p.skipWS()

	if p.peek() == '|' {
		p.pos++

		fallback, err := p.parseItem()
		if err != nil {
			return property.Node{}, err
		}

		node = node.WithDefault(fallback)
	}

	return node, nil
}

func (p *parser) parsePrimary() (property.Node, error) {
	switch p.peek() {
	case '"', '\'':
		return p.parseStringLiteral()
	case '[':
		return p.parseGroup()
	case '$':
		return p.parseDollar()
	case '%':
		return p.parseTransform()
	case 0:
		return property.Node{}, &ParseError{Pos: p.pos, Msg: "unexpected end of input"}
	default:
		return property.Node{}, &ParseError{Pos: p.pos, Msg: fmt.Sprintf("unexpected character %q", p.src[p.pos])}
	}
}

func (p *parser) parseGroup() (property.Node, error) {
	start := p.pos
	p.pos++ // consume '['

	items, err := p.parseSequence(func(c byte) bool { return c == ']' })
	if err != nil {
		return property.Node{}, err
	}

	if p.peek() != ']' {
		return property.Node{}, &ParseError{Pos: start, Msg: "unterminated group, expected ']'"}
	}

	p.pos++ // consume ']'

	return property.Node{Kind: property.NodeGroup, Children: items}, nil
}

func (p *parser) parseStringLiteral() (property.Node, error) {
	quote := p.src[p.pos]
	start := p.pos
	p.pos++

	var sb strings.Builder

	for {
		if p.pos >= len(p.src) {
			return property.Node{}, &ParseError{Pos: start, Msg: "unterminated string literal"}
		}

		c := p.src[p.pos]

		if c == '\\' && p.pos+1 < len(p.src) {
			sb.WriteByte(unescape(p.src[p.pos+1]))
			p.pos += 2

			continue
		}

		if c == quote {
			p.pos++

			break
		}

		sb.WriteByte(c)
		p.pos++
	}

	return property.Text(sb.String()), nil
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	default:
		return c
	}
}

// parseDollar parses `$name` or `$name(arg: value, ...)`.
func (p *parser) parseDollar() (property.Node, error) {
	start := p.pos
	p.pos++ // consume '$'

	name := p.parseIdent()
	if name == "" {
		return property.Node{}, &ParseError{Pos: start, Msg: "expected property name after '$'"}
	}

	var args map[string]string

	if p.peek() == '(' {
		var err error

		args, err = p.parseArgList()
		if err != nil {
			return property.Node{}, err
		}
	}

	if name == "sticker" {
		key := args["name"]

		return property.Node{Kind: property.NodeSticker, StickerName: key}, nil
	}

	leaf, ok := lookupLeaf(name)
	if !ok {
		return property.Node{}, &ParseError{Pos: start, Msg: fmt.Sprintf("unknown property %q", name)}
	}

	leaf.Args = args

	return property.Node{Kind: property.NodeProperty, Leaf: leaf}, nil
}

// parseTransform parses `%name(args)`: truncate or replace.
func (p *parser) parseTransform() (property.Node, error) {
	start := p.pos
	p.pos++ // consume '%'

	name := p.parseIdent()

	if p.peek() != '(' {
		return property.Node{}, &ParseError{Pos: p.pos, Msg: "expected '(' after transform name"}
	}

	switch name {
	case "truncate":
		return p.parseTruncateArgs(start)
	case "replace":
		return p.parseReplaceArgs(start)
	default:
		return property.Node{}, &ParseError{Pos: start, Msg: fmt.Sprintf("unknown transform %q", name)}
	}
}

func (p *parser) parseTruncateArgs(start int) (property.Node, error) {
	p.pos++ // consume '('

	var content *property.Node

	length := 0
	fromStart := false

	for {
		p.skipWS()

		if p.peek() == ')' {
			p.pos++

			break
		}

		key, err := p.parseArgKey()
		if err != nil {
			return property.Node{}, err
		}

		switch key {
		case "content":
			node, err := p.parseItem()
			if err != nil {
				return property.Node{}, err
			}

			content = &node
		case "length":
			p.skipWS()

			n, err := p.parseNumber()
			if err != nil {
				return property.Node{}, err
			}

			length = n
		case "from_start":
			p.skipWS()

			v := p.parseIdent()
			fromStart = v == "true"
		default:
			return property.Node{}, &ParseError{Pos: p.pos, Msg: fmt.Sprintf("unknown truncate argument %q", key)}
		}

		p.skipWS()

		if p.peek() == ',' {
			p.pos++
		}
	}

	if content == nil {
		return property.Node{}, &ParseError{Pos: start, Msg: "truncate requires a content argument"}
	}

	return property.Node{Kind: property.NodeTruncate, Content: content, Length: length, FromStart: fromStart}, nil
}

func (p *parser) parseReplaceArgs(start int) (property.Node, error) {
	p.pos++ // consume '('

	var content *property.Node

	replacements := map[string]property.Node{}

	for {
		p.skipWS()

		if p.peek() == ')' {
			p.pos++

			break
		}

		key, err := p.parseArgKey()
		if err != nil {
			return property.Node{}, err
		}

		switch key {
		case "content":
			node, err := p.parseItem()
			if err != nil {
				return property.Node{}, err
			}

			content = &node
		case "replacements":
			p.skipWS()

			if p.peek() != '{' {
				return property.Node{}, &ParseError{Pos: p.pos, Msg: "expected '{' for replacements map"}
			}

			p.pos++

			for {
				p.skipWS()

				if p.peek() == '}' {
					p.pos++

					break
				}

				rk, err := p.parseStringKeyOrIdent()
				if err != nil {
					return property.Node{}, err
				}

				p.skipWS()

				if p.peek() != ':' {
					return property.Node{}, &ParseError{Pos: p.pos, Msg: "expected ':' in replacements entry"}
				}

				p.pos++
				p.skipWS()

				val, err := p.parseItem()
				if err != nil {
					return property.Node{}, err
				}

				replacements[rk] = val

				p.skipWS()

				if p.peek() == ',' {
					p.pos++
				}
			}
		default:
			return property.Node{}, &ParseError{Pos: p.pos, Msg: fmt.Sprintf("unknown replace argument %q", key)}
		}

		p.skipWS()

		if p.peek() == ',' {
			p.pos++
		}
	}

	if content == nil {
		return property.Node{}, &ParseError{Pos: start, Msg: "replace requires a content argument"}
	}

	return property.Node{Kind: property.NodeReplace, Content: content, Replacements: replacements}, nil
}

// maybeAttachStyle parses a trailing `{fg: ..., bg: ..., mods: ...}` literal
// and attaches it to node, if present.
func (p *parser) maybeAttachStyle(node property.Node) (property.Node, error) {
	if p.peek() != '{' {
		return node, nil
	}

	start := p.pos
	p.pos++

	var spec style.Spec

	for {
		p.skipWS()

		if p.peek() == '}' {
			p.pos++

			break
		}

		key, err := p.parseArgKey()
		if err != nil {
			return property.Node{}, err
		}

		p.skipWS()

		val, err := p.parseStyleValue()
		if err != nil {
			return property.Node{}, err
		}

		switch key {
		case "fg":
			c, err := style.ParseColor(val)
			if err != nil {
				return property.Node{}, &ParseError{Pos: start, Msg: err.Error()}
			}

			spec.Fg = c
		case "bg":
			c, err := style.ParseColor(val)
			if err != nil {
				return property.Node{}, &ParseError{Pos: start, Msg: err.Error()}
			}

			spec.Bg = c
		case "mods":
			spec.Modifiers = style.ParseModifiers(val)
		default:
			return property.Node{}, &ParseError{Pos: p.pos, Msg: fmt.Sprintf("unknown style attribute %q", key)}
		}

		p.skipWS()

		if p.peek() == ',' {
			p.pos++
		}
	}

	return node.WithStyle(spec), nil
}

func (p *parser) parseStyleValue() (string, error) {
	if p.peek() == '"' || p.peek() == '\'' {
		n, err := p.parseStringLiteral()
		if err != nil {
			return "", err
		}

		return n.Text, nil
	}

	return p.parseIdentOrToken(), nil
}

func (p *parser) parseArgKey() (string, error) {
	p.skipWS()

	key := p.parseIdent()
	if key == "" {
		return "", &ParseError{Pos: p.pos, Msg: "expected argument name"}
	}

	p.skipWS()

	if p.peek() != ':' {
		return "", &ParseError{Pos: p.pos, Msg: "expected ':' after argument name"}
	}

	p.pos++

	return key, nil
}

func (p *parser) parseStringKeyOrIdent() (string, error) {
	if p.peek() == '"' || p.peek() == '\'' {
		n, err := p.parseStringLiteral()
		if err != nil {
			return "", err
		}

		return n.Text, nil
	}

	id := p.parseIdent()
	if id == "" {
		return "", &ParseError{Pos: p.pos, Msg: "expected map key"}
	}

	return id, nil
}

// parseArgList parses a `(key: value, key: value)` list into a string map;
// used for property call arguments.
func (p *parser) parseArgList() (map[string]string, error) {
	args := map[string]string{}
	p.pos++ // consume '('

	for {
		p.skipWS()

		if p.peek() == ')' {
			p.pos++

			break
		}

		key, err := p.parseArgKey()
		if err != nil {
			return nil, err
		}

		p.skipWS()

		val, err := p.parseStyleValue()
		if err != nil {
			return nil, err
		}

		args[key] = val

		p.skipWS()

		if p.peek() == ',' {
			p.pos++
		}
	}

	return args, nil
}

func (p *parser) parseIdent() string {
	start := p.pos
	for p.pos < len(p.src) && isIdentRune(p.src[p.pos]) {
		p.pos++
	}

	return p.src[start:p.pos]
}

func (p *parser) parseIdentOrToken() string {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != ',' && p.src[p.pos] != ')' && p.src[p.pos] != '}' {
		p.pos++
	}

	return strings.TrimSpace(p.src[start:p.pos])
}

func (p *parser) parseNumber() (int, error) {
	start := p.pos
	for p.pos < len(p.src) && (p.src[p.pos] >= '0' && p.src[p.pos] <= '9' || p.src[p.pos] == '-') {
		p.pos++
	}

	if start == p.pos {
		return 0, &ParseError{Pos: p.pos, Msg: "expected a number"}
	}

	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return 0, &ParseError{Pos: start, Msg: "invalid number"}
	}

	return n, nil
}

func isIdentRune(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}

	return p.src[p.pos]
}

func (p *parser) skipWS() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

var songLeaves = map[string]property.SongField{
	"file":     property.SongFile,
	"title":    property.SongTitle,
	"artist":   property.SongArtist,
	"album":    property.SongAlbum,
	"track":    property.SongTrack,
	"disc":     property.SongDisc,
	"genre":    property.SongGenre,
	"duration": property.SongDuration,
	"added":    property.SongAdded,
	"modified": property.SongModified,
}

var statusLeaves = map[string]property.StatusField{
	"state":       property.StatusState,
	"elapsed":     property.StatusElapsed,
	"total_time":  property.StatusDuration,
	"bitrate":     property.StatusBitrate,
	"crossfade":   property.StatusCrossfade,
	"samplerate":  property.StatusSampleRate,
	"bits":        property.StatusBits,
	"channels":    property.StatusChannels,
	"volume":      property.StatusVolume,
	"repeat":      property.StatusRepeat,
	"random":      property.StatusRandom,
	"single":      property.StatusSingle,
	"consume":     property.StatusConsume,
	"partition":   property.StatusPartition,
}

var widgetLeaves = map[string]property.WidgetField{
	"volume_bar":  property.WidgetVolume,
	"states":      property.WidgetStates,
	"scan_status": property.WidgetScanStatus,
}

func lookupLeaf(name string) (property.Leaf, bool) {
	if f, ok := songLeaves[name]; ok {
		return property.Leaf{Kind: property.LeafSong, Song: f}, true
	}

	if f, ok := statusLeaves[name]; ok {
		return property.Leaf{Kind: property.LeafStatus, Status: f}, true
	}

	if f, ok := widgetLeaves[name]; ok {
		return property.Leaf{Kind: property.LeafWidget, Widget: f}, true
	}

	return property.Leaf{}, false
}
