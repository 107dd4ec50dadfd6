package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher watches a config file's directory for writes and re-parses the
// file on change, broadcasting either the newly validated Config or the
// error that kept the previous config in force. Directory-level watching
// (rather than watching the file directly) survives editors that replace
// the file via rename-over rather than in-place write.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	Changes chan Config
	Errors  chan error
	done    chan struct{}
}

// NewWatcher starts watching path's containing directory. Call Close when
// done.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()

		return nil, err
	}

	w := &Watcher{
		path:    path,
		fsw:     fsw,
		Changes: make(chan Config, 1),
		Errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}

	go w.run()

	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}

			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			cfg, err := Load(w.path)
			if err != nil {
				log.Warn().Err(err).Str("path", w.path).Msg("config reload failed, keeping previous config")
				w.Errors <- err

				continue
			}

			w.Changes <- cfg
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}

			log.Warn().Err(err).Msg("config watcher error")
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)

	return w.fsw.Close()
}
