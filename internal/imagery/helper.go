package imagery

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// HelperBackend drives an external ueberzug-style drawing helper process
// over its stdin, for terminals with none of the inline graphics protocols
// but an X11/Wayland overlay helper available. No Go client library for
// ueberzug's JSON-line protocol exists anywhere in the retrieved pack, so
// this talks to the helper process directly over a pipe.
type HelperBackend struct {
	mu  sync.Mutex
	cmd *exec.Cmd
	in  *bufio.Writer
}

// StartHelper launches binary (e.g. "ueberzug") in layer mode, returning a
// backend that can Draw/Clear images by identifier. The caller must Close
// it on shutdown.
func StartHelper(binary string, args ...string) (*HelperBackend, error) {
	cmd := exec.Command(binary, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("imagery: helper stdin pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("imagery: start helper %s: %w", binary, err)
	}

	return &HelperBackend{cmd: cmd, in: bufio.NewWriter(stdin)}, nil
}

// Draw sends an "add" command placing path at the given cell rect.
func (h *HelperBackend) Draw(id, path string, x, y, w, h2 int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	line := fmt.Sprintf(
		`{"action":"add","identifier":%q,"path":%q,"x":%d,"y":%d,"width":%d,"height":%d}`+"\n",
		id, path, x, y, w, h2)

	if _, err := h.in.WriteString(line); err != nil {
		return err
	}

	return h.in.Flush()
}

// Clear removes a previously drawn image by identifier.
func (h *HelperBackend) Clear(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	line := fmt.Sprintf(`{"action":"remove","identifier":%q}`+"\n", id)

	if _, err := h.in.WriteString(line); err != nil {
		return err
	}

	return h.in.Flush()
}

// Close terminates the helper process.
func (h *HelperBackend) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.in.Flush(); err != nil {
		log.Warn().Err(err).Msg("imagery: flush helper stdin on close")
	}

	return h.cmd.Process.Kill()
}

// tmuxPassthrough wraps seq in tmux's DCS passthrough escape when running
// inside tmux, since tmux otherwise swallows APC/OSC image sequences
// before they reach the outer terminal.
func tmuxPassthrough(seq string) string {
	if os.Getenv("TMUX") == "" {
		return seq
	}

	escaped := strings.ReplaceAll(seq, "\x1b", "\x1b\x1b")

	return "\x1bPtmux;" + escaped + "\x1b\\"
}
