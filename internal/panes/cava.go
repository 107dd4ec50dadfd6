package panes

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	tm "mpctui/internal/mpd"
	"mpctui/internal/uimodel"
)

var barGlyphs = []rune(" ▁▂▃▄▅▆▇█")

// Cava renders bar levels read from an external `cava` process's raw ASCII
// output FIFO (one line of space-separated integers 0..8 per frame, cava's
// "ascii" output method). cava itself is a separate process this pane only
// consumes a pipe from — there's no Go client library for it in the
// retrieved stack, so this stays on the standard library by necessity
// rather than by a dropped-dependency choice.
type Cava struct {
	uimodel.BasePane

	mu     sync.Mutex
	levels []int
}

// NewCava starts tailing fifoPath in the background if non-empty. An empty
// path yields a pane that renders a flat "disabled" placeholder.
func NewCava(fifoPath string) *Cava {
	c := &Cava{}

	if fifoPath != "" {
		go c.tail(fifoPath)
	}

	return c
}

func (c *Cava) tail(path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("cava: could not open fifo")

		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())

		levels := make([]int, 0, len(fields))

		for _, field := range fields {
			n, err := strconv.Atoi(field)
			if err != nil {
				continue
			}

			levels = append(levels, n)
		}

		c.mu.Lock()
		c.levels = levels
		c.mu.Unlock()
	}
}

func (c *Cava) Render() string {
	c.mu.Lock()
	levels := append([]int(nil), c.levels...)
	c.mu.Unlock()

	if len(levels) == 0 {
		return lipgloss.NewStyle().Width(c.Area.W).Faint(true).Render("cava: no data")
	}

	var sb strings.Builder

	for _, lvl := range levels {
		if lvl < 0 {
			lvl = 0
		}

		if lvl >= len(barGlyphs) {
			lvl = len(barGlyphs) - 1
		}

		sb.WriteRune(barGlyphs[lvl])
	}

	return lipgloss.NewStyle().Width(c.Area.W).Render(sb.String())
}

func (c *Cava) OnEvent(sub tm.Subsystem) {}
