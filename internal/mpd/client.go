// ABOUTME: Narrow client interface over the daemon protocol plus the
// ABOUTME: github.com/fhs/gompd/v2-backed implementation (§6 external interface)

package mpd

import (
	"fmt"
	"strconv"
	"time"

	gompd "github.com/fhs/gompd/v2/mpd"
)

// Client is the subset of daemon commands the rest of the system needs,
// kept narrow and mockable so panes and the event loop never import gompd
// directly.
type Client interface {
	Status() (Status, error)
	CurrentSong() (*Song, bool, error)

	Play(pos int) error
	PlayID(id int) error
	Pause(paused bool) error
	Stop() error
	Next() error
	Previous() error
	SeekCur(offset time.Duration, relative bool) error

	SetVolume(vol int) error
	SetRepeat(on bool) error
	SetRandom(on bool) error
	SetSingle(state TriState) error
	SetConsume(state TriState) error

	Update(uri string) (int, error)
	Rescan(uri string) (int, error)

	PlaylistInfo() ([]Song, error)
	Add(uri string) error
	AddID(uri string, pos int) (int, error)
	DeleteID(id int) error
	Clear() error
	Move(id, pos int) error

	ListPlaylists() ([]string, error)
	PlaylistContents(name string) ([]Song, error)
	PlaylistAdd(name, uri string) error
	PlaylistRemove(name string, pos int) error
	PlaylistSave(name string) error
	PlaylistDelete(name string) error

	ListAllInfo(uri string) ([]Song, error)
	Find(args ...string) ([]Song, error)
	ListTags(tag string, args ...string) ([]string, error)

	AlbumArt(uri string) ([]byte, error)
	ReadPicture(uri string) ([]byte, error)

	StickerGet(typ, uri, name string) (string, error)
	StickerSet(typ, uri, name, value string) error
	StickerDelete(typ, uri, name string) error

	Outputs() ([]Output, error)
	EnableOutput(id int) error
	DisableOutput(id int) error

	Decoders() ([]Decoder, error)

	Close() error
}

// Output describes one audio output device as reported by "outputs".
type Output struct {
	ID      int
	Name    string
	Enabled bool
	Plugin  string
}

// Decoder describes one decoder plugin as reported by "decoders".
type Decoder struct {
	Plugin       string
	Suffixes     []string
	MIMETypes    []string
}

// gompdClient adapts gompd's *mpd.Client to the Client interface, mapping
// its stringly-typed attribute maps into our typed Song/Status structs.
type gompdClient struct {
	conn *gompd.Client
}

// Dial connects to the daemon at address (host:port), authenticating with
// password if non-empty.
func Dial(address, password string) (Client, error) {
	var (
		conn *gompd.Client
		err  error
	)

	if password != "" {
		conn, err = gompd.DialAuthenticated("tcp", address, password)
	} else {
		conn, err = gompd.Dial("tcp", address)
	}

	if err != nil {
		return nil, fmt.Errorf("mpd: dial %s: %w", address, err)
	}

	return &gompdClient{conn: conn}, nil
}

func (c *gompdClient) Close() error { return c.conn.Close() }

func (c *gompdClient) Status() (Status, error) {
	attrs, err := c.conn.Status()
	if err != nil {
		return Status{}, err
	}

	return statusFromAttrs(attrs), nil
}

func (c *gompdClient) CurrentSong() (*Song, bool, error) {
	attrs, err := c.conn.CurrentSong()
	if err != nil {
		return nil, false, err
	}

	if len(attrs) == 0 {
		return nil, false, nil
	}

	s := songFromAttrs(attrs)

	return &s, true, nil
}

func (c *gompdClient) Play(pos int) error   { return c.conn.Play(pos) }
func (c *gompdClient) PlayID(id int) error  { return c.conn.PlayID(id) }
func (c *gompdClient) Pause(p bool) error   { return c.conn.Pause(p) }
func (c *gompdClient) Stop() error          { return c.conn.Stop() }
func (c *gompdClient) Next() error          { return c.conn.Next() }
func (c *gompdClient) Previous() error      { return c.conn.Previous() }

func (c *gompdClient) SeekCur(offset time.Duration, relative bool) error {
	secs := offset.Seconds()

	arg := strconv.FormatFloat(secs, 'f', 3, 64)
	if relative && secs >= 0 {
		arg = "+" + arg
	}

	return c.conn.Command("seekcur %s", arg).OK()
}

func (c *gompdClient) SetVolume(vol int) error { return c.conn.SetVolume(vol) }
func (c *gompdClient) SetRepeat(on bool) error { return c.conn.Repeat(on) }
func (c *gompdClient) SetRandom(on bool) error { return c.conn.Random(on) }

func (c *gompdClient) SetSingle(state TriState) error {
	return c.conn.Command("single %s", triStateArg(state)).OK()
}

func (c *gompdClient) SetConsume(state TriState) error {
	return c.conn.Command("consume %s", triStateArg(state)).OK()
}

func triStateArg(s TriState) string {
	switch s {
	case TriOn:
		return "1"
	case TriOneShot:
		return "oneshot"
	default:
		return "0"
	}
}

func (c *gompdClient) Update(uri string) (int, error)  { return c.conn.Update(uri) }
func (c *gompdClient) Rescan(uri string) (int, error)  { return c.conn.Rescan(uri) }

func (c *gompdClient) PlaylistInfo() ([]Song, error) {
	attrs, err := c.conn.PlaylistInfo(-1, -1)
	if err != nil {
		return nil, err
	}

	return songsFromAttrs(attrs), nil
}

func (c *gompdClient) Add(uri string) error { return c.conn.Add(uri) }

func (c *gompdClient) AddID(uri string, pos int) (int, error) {
	return c.conn.AddID(uri, pos)
}

func (c *gompdClient) DeleteID(id int) error { return c.conn.DeleteID(id) }
func (c *gompdClient) Clear() error          { return c.conn.Clear() }
func (c *gompdClient) Move(id, pos int) error {
	return c.conn.Command("moveid %d %d", id, pos).OK()
}

func (c *gompdClient) ListPlaylists() ([]string, error) {
	lists, err := c.conn.ListPlaylists()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(lists))
	for _, l := range lists {
		names = append(names, l["playlist"])
	}

	return names, nil
}

func (c *gompdClient) PlaylistContents(name string) ([]Song, error) {
	attrs, err := c.conn.PlaylistContents(name)
	if err != nil {
		return nil, err
	}

	return songsFromAttrs(attrs), nil
}

func (c *gompdClient) PlaylistAdd(name, uri string) error {
	return c.conn.PlaylistAdd(name, uri)
}

func (c *gompdClient) PlaylistRemove(name string, pos int) error {
	return c.conn.Command("playlistdelete %s %d", name, pos).OK()
}

func (c *gompdClient) PlaylistSave(name string) error {
	return c.conn.Command("save %s", name).OK()
}

func (c *gompdClient) PlaylistDelete(name string) error {
	return c.conn.PlaylistRemove(name)
}

func (c *gompdClient) ListAllInfo(uri string) ([]Song, error) {
	attrs, err := c.conn.ListAllInfo(uri)
	if err != nil {
		return nil, err
	}

	return songsFromAttrs(attrs), nil
}

func (c *gompdClient) Find(args ...string) ([]Song, error) {
	attrs, err := c.conn.Find(args...)
	if err != nil {
		return nil, err
	}

	return songsFromAttrs(attrs), nil
}

func (c *gompdClient) ListTags(tag string, args ...string) ([]string, error) {
	cmdArgs := append([]string{"list", tag}, args...)

	attrs, err := c.conn.Command(join(cmdArgs)).Attrs()
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		if v, ok := a[tag]; ok {
			out = append(out, v)
		}
	}

	return out, nil
}

func join(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}

		out += `"` + p + `"`
	}

	return out
}

func (c *gompdClient) AlbumArt(uri string) ([]byte, error) {
	return fetchBinary(func(offset int) ([]byte, int, error) {
		return c.conn.AlbumArt(uri, offset)
	})
}

func (c *gompdClient) ReadPicture(uri string) ([]byte, error) {
	return fetchBinary(func(offset int) ([]byte, int, error) {
		return c.conn.ReadPicture(uri, offset)
	})
}

// fetchBinary loops gompd's offset-paged binary transfer (used by both
// albumart and readpicture) until the full blob is assembled.
func fetchBinary(fetch func(offset int) (chunk []byte, total int, err error)) ([]byte, error) {
	var buf []byte

	offset := 0

	for {
		chunk, total, err := fetch(offset)
		if err != nil {
			return nil, err
		}

		buf = append(buf, chunk...)
		offset += len(chunk)

		if len(chunk) == 0 || offset >= total {
			break
		}
	}

	return buf, nil
}

func (c *gompdClient) StickerGet(typ, uri, name string) (string, error) {
	return c.conn.StickerGet(typ, uri, name)
}

func (c *gompdClient) StickerSet(typ, uri, name, value string) error {
	return c.conn.StickerSet(typ, uri, name, value)
}

func (c *gompdClient) StickerDelete(typ, uri, name string) error {
	return c.conn.StickerDelete(typ, uri, name)
}

func (c *gompdClient) Outputs() ([]Output, error) {
	attrs, err := c.conn.ListOutputs()
	if err != nil {
		return nil, err
	}

	outs := make([]Output, 0, len(attrs))

	for _, a := range attrs {
		id, _ := strconv.Atoi(a["outputid"])
		outs = append(outs, Output{
			ID:      id,
			Name:    a["outputname"],
			Enabled: a["outputenabled"] == "1",
			Plugin:  a["plugin"],
		})
	}

	return outs, nil
}

func (c *gompdClient) EnableOutput(id int) error  { return c.conn.EnableOutput(id) }
func (c *gompdClient) DisableOutput(id int) error { return c.conn.DisableOutput(id) }

func (c *gompdClient) Decoders() ([]Decoder, error) {
	attrs, err := c.conn.Command("decoders").Attrs()
	if err != nil {
		return nil, err
	}

	var decoders []Decoder

	var cur *Decoder

	for _, a := range attrs {
		if plugin, ok := a["plugin"]; ok {
			decoders = append(decoders, Decoder{Plugin: plugin})
			cur = &decoders[len(decoders)-1]
		}

		if cur == nil {
			continue
		}

		if suffix, ok := a["suffix"]; ok {
			cur.Suffixes = append(cur.Suffixes, suffix)
		}

		if mime, ok := a["mime_type"]; ok {
			cur.MIMETypes = append(cur.MIMETypes, mime)
		}
	}

	return decoders, nil
}
