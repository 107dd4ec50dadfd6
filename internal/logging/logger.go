// Package logging configures the process-wide zerolog logger used by every
// other package via the zerolog/log global, matching the teacher's
// single-sink logging convention rather than threading a *Logger through
// every constructor.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options configures the global logger.
type Options struct {
	// Path, if non-empty, directs output to a file; when empty, records go
	// only to Tail. Nothing is written to stdout/stderr — the TUI owns the
	// terminal while it's running.
	Path string
	// Debug enables debug-level output; otherwise info and above.
	Debug bool
}

// Tail is the process-wide in-memory ring buffer the logs pane reads from,
// independent of where the file sink points.
var Tail = NewRing(500)

// Init installs the global zerolog.Logger per opts, returning a closer the
// caller should defer if a file was opened. Every log record is always
// also written to Tail, regardless of opts.Path, so the in-app logs pane
// works even when running with no --log flag.
func Init(opts Options) (io.Closer, error) {
	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	var (
		fileWriter io.Writer = io.Discard
		closer     io.Closer = nopCloser{}
	)

	if opts.Path != "" {
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}

		fileWriter = f
		closer = f
	}

	log.Logger = zerolog.New(io.MultiWriter(fileWriter, Tail)).With().Timestamp().Logger()

	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
