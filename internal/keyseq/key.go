// ABOUTME: Key and key-sequence data types, with a parser/printer pair
// ABOUTME: that are mutual inverses on the set of bindable keys (§8 P1)

// Package keyseq implements the key/key-sequence data model and the live
// sequencer state machine (C5) that resolves a buffered prefix of keys
// against layered binding maps.
package keyseq

import (
	"fmt"
	"strings"
)

// Mod is a bitset of modifiers; structural equality and hashing treat it as
// order-independent because it's already a flat set of bits.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModControl
	ModAlt
)

// namedKeys is the closed set of non-printable/synthesized key names the
// parser and printer agree on. Order here also defines parse precedence for
// ambiguous literal text but since names are unique that never matters.
var namedKeys = []string{
	"Tab", "BackTab", "Enter", "Esc", "Backspace", "Delete", "Insert",
	"Up", "Down", "Left", "Right",
	"PageUp", "PageDown", "Home", "End",
	"Space",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
}

var namedKeySet = func() map[string]bool {
	m := make(map[string]bool, len(namedKeys))
	for _, n := range namedKeys {
		m[n] = true
	}

	return m
}()

// Key is a base code (a printable rune, or one of namedKeys) plus a
// modifier set. Exactly one of Rune/Named is meaningful: Named != "" means
// this is a synthesized/named key, otherwise Rune holds the printable char.
type Key struct {
	Rune  rune
	Named string
	Mods  Mod
}

// Equal reports structural equality: same base code, same modifier set.
func (k Key) Equal(other Key) bool {
	return k.Rune == other.Rune && k.Named == other.Named && k.Mods == other.Mods
}

// String prints a key in "mod+mod+base" form, e.g. "ctrl+a", "shift+tab" is
// never produced (BackTab is its own name, per §3's Key data model) but
// "ctrl+alt+enter" is valid.
func (k Key) String() string {
	var parts []string

	if k.Mods&ModControl != 0 {
		parts = append(parts, "ctrl")
	}

	if k.Mods&ModAlt != 0 {
		parts = append(parts, "alt")
	}

	if k.Mods&ModShift != 0 {
		parts = append(parts, "shift")
	}

	if k.Named != "" {
		parts = append(parts, strings.ToLower(k.Named))
	} else {
		parts = append(parts, string(k.Rune))
	}

	return strings.Join(parts, "+")
}

// ParseKey parses one key expression produced by String back into a Key;
// the two functions are mutual inverses (§8 property 1).
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, "+")
	if len(parts) == 0 {
		return Key{}, fmt.Errorf("keyseq: empty key expression")
	}

	var mods Mod

	base := parts[len(parts)-1]
	modParts := parts[:len(parts)-1]

	// A trailing "+" is the plus key itself ("+", "ctrl++"), not a separator.
	if base == "" && len(parts) >= 2 && parts[len(parts)-2] == "" {
		base = "+"
		modParts = parts[:len(parts)-2]
	}

	for _, p := range modParts {
		switch p {
		case "ctrl":
			mods |= ModControl
		case "alt":
			mods |= ModAlt
		case "shift":
			mods |= ModShift
		default:
			return Key{}, fmt.Errorf("keyseq: unknown modifier %q", p)
		}
	}

	for _, name := range namedKeys {
		if strings.EqualFold(base, name) {
			return Key{Named: name, Mods: mods}, nil
		}
	}

	runes := []rune(base)
	if len(runes) != 1 {
		return Key{}, fmt.Errorf("keyseq: invalid base key %q", base)
	}

	return Key{Rune: runes[0], Mods: mods}, nil
}

// Sequence is a non-empty ordered list of Key.
type Sequence []Key

// Equal reports whether two sequences have the same length and are
// pairwise equal.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}

	for i := range s {
		if !s[i].Equal(other[i]) {
			return false
		}
	}

	return true
}

// String joins each key's String() with a space, e.g. "g g".
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, k := range s {
		parts[i] = k.String()
	}

	return strings.Join(parts, " ")
}

// ParseSequence parses a space-separated sequence of key expressions.
func ParseSequence(s string) (Sequence, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("keyseq: empty sequence")
	}

	seq := make(Sequence, 0, len(fields))

	for _, f := range fields {
		k, err := ParseKey(f)
		if err != nil {
			return nil, err
		}

		seq = append(seq, k)
	}

	return seq, nil
}

// IsPrefixOf reports whether s is a (not-necessarily-proper) prefix of
// other.
func (s Sequence) IsPrefixOf(other Sequence) bool {
	if len(s) > len(other) {
		return false
	}

	for i := range s {
		if !s[i].Equal(other[i]) {
			return false
		}
	}

	return true
}
