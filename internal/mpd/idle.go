package mpd

import (
	"fmt"
	"time"

	gompd "github.com/fhs/gompd/v2/mpd"
)

// Subsystem names one of the daemon's idle-notification groups.
type Subsystem string

const (
	SubsystemPlayer     Subsystem = "player"
	SubsystemMixer      Subsystem = "mixer"
	SubsystemOptions    Subsystem = "options"
	SubsystemPlaylist   Subsystem = "playlist"
	SubsystemStoredPl   Subsystem = "stored_playlist"
	SubsystemDatabase   Subsystem = "database"
	SubsystemUpdate     Subsystem = "update"
	SubsystemOutput     Subsystem = "output"
	SubsystemSticker    Subsystem = "sticker"
	SubsystemSubscribe  Subsystem = "subscription"
)

// IdleWatcher is a long-lived second connection that blocks in "idle" and
// pushes the changed subsystem names as they're reported, per §5's model
// of a dedicated idle connection distinct from the command connection
// (so a blocking idle call never stalls a command the UI issues).
type IdleWatcher struct {
	w        *gompd.Watcher
	Events   <-chan Subsystem
	Errors   <-chan error
	events   chan Subsystem
	errors   chan error
	done     chan struct{}
}

// DialIdleWatcher opens a dedicated idle connection to address.
func DialIdleWatcher(address, password string) (*IdleWatcher, error) {
	w, err := gompd.NewWatcher("tcp", address, password)
	if err != nil {
		return nil, fmt.Errorf("mpd: idle watcher dial %s: %w", address, err)
	}

	iw := &IdleWatcher{
		w:      w,
		events: make(chan Subsystem, 16),
		errors: make(chan error, 1),
		done:   make(chan struct{}),
	}
	iw.Events = iw.events
	iw.Errors = iw.errors

	go iw.pump()

	return iw, nil
}

func (iw *IdleWatcher) pump() {
	for {
		select {
		case name, ok := <-iw.w.Event:
			if !ok {
				return
			}

			select {
			case iw.events <- Subsystem(name):
			case <-iw.done:
				return
			}
		case err, ok := <-iw.w.Error:
			if !ok {
				return
			}

			select {
			case iw.errors <- err:
			case <-iw.done:
				return
			}
		case <-iw.done:
			return
		}
	}
}

// Close stops the watcher and closes its connection.
func (iw *IdleWatcher) Close() error {
	close(iw.done)

	return iw.w.Close()
}

// KeepAlive redials address in a loop whenever the watcher reports a
// connection error, with exponential backoff capped at 30s, replacing the
// channels the caller reads from transparently. It runs until stop is
// closed. Per §7's "external collaborator may vanish and come back"
// stance: the UI should keep reading from Events/Errors across a daemon
// restart without tearing down and rebuilding its own subscription.
func KeepAlive(address, password string, stop <-chan struct{}, onReconnect func(err error)) (events <-chan Subsystem, errs <-chan error) {
	eventsOut := make(chan Subsystem, 16)
	errsOut := make(chan error, 1)

	go func() {
		backoff := 500 * time.Millisecond

		const maxBackoff = 30 * time.Second

		for {
			iw, err := DialIdleWatcher(address, password)
			if err != nil {
				if onReconnect != nil {
					onReconnect(err)
				}

				select {
				case <-time.After(backoff):
				case <-stop:
					return
				}

				if backoff *= 2; backoff > maxBackoff {
					backoff = maxBackoff
				}

				continue
			}

			backoff = 500 * time.Millisecond

			lost := false

			for !lost {
				select {
				case ev := <-iw.Events:
					eventsOut <- ev
				case err := <-iw.Errors:
					errsOut <- err
					lost = true
				case <-stop:
					iw.Close()

					return
				}
			}

			iw.Close()
		}
	}()

	return eventsOut, errsOut
}
