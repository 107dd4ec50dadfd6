package cmd

import (
	"fmt"

	"mpctui/internal/action"
	"mpctui/internal/ipc"
	"mpctui/internal/keyseq"
	"mpctui/internal/lyricsindex"
	"mpctui/internal/mpd"
	"mpctui/internal/uimodel"
)

// newIPCHandler builds the dispatcher the running instance's control
// socket uses to answer `remote` subcommands.
func newIPCHandler(ctx *uimodel.Ctx) ipc.Handler {
	return func(cmd ipc.Command) ipc.Response {
		switch cmd.Kind {
		case ipc.KindStatus:
			return handleStatus(ctx)
		case ipc.KindSwitchTab:
			return handleSwitchTab(ctx, cmd.Arg)
		case ipc.KindKeybind:
			return handleKeybind(ctx, cmd.Arg)
		case ipc.KindIndexLRC:
			return handleIndexLRC(ctx, cmd.Arg)
		case ipc.KindSetConfig:
			return handleSetConfig(ctx, cmd.Arg, cmd.Arg2)
		case ipc.KindTmux:
			// tmux hooks (focus/resize notifications) only need to wake the
			// render loop, which the next capped-FPS tick already does.
			return ipc.Response{OK: true}
		default:
			return ipc.Response{OK: false, Message: fmt.Sprintf("unknown command %q", cmd.Kind)}
		}
	}
}

func handleStatus(ctx *uimodel.Ctx) ipc.Response {
	title := "(nothing playing)"
	if ctx.CurrentSong != nil {
		if t, ok := ctx.CurrentSong.Tag("title"); ok {
			title = t
		} else {
			title = ctx.CurrentSong.File
		}
	}

	return ipc.Response{OK: true, Message: fmt.Sprintf("%s - %s", stateLabel(ctx.Status.State), title)}
}

func stateLabel(s mpd.PlayState) string {
	switch s {
	case mpd.StatePlaying:
		return "playing"
	case mpd.StatePaused:
		return "paused"
	default:
		return "stopped"
	}
}

func handleSwitchTab(ctx *uimodel.Ctx, name string) ipc.Response {
	for i, t := range ctx.Tabs {
		if t.Name == name {
			ctx.ActiveTab = i

			return ipc.Response{OK: true}
		}
	}

	return ipc.Response{OK: false, Message: fmt.Sprintf("no such tab %q", name)}
}

// handleKeybind executes the global action bound to expr in the "global"
// scope. Pane-scoped actions need an active terminal to target and aren't
// reachable remotely.
func handleKeybind(ctx *uimodel.Ctx, expr string) ipc.Response {
	scope, ok := ctx.Scopes["global"]
	if !ok {
		return ipc.Response{OK: false, Message: "no global keymap"}
	}

	seq, err := keyseq.ParseSequence(expr)
	if err != nil {
		return ipc.Response{OK: false, Message: err.Error()}
	}

	binding, ok := scope.Bindings[seq.String()]
	if !ok {
		return ipc.Response{OK: false, Message: fmt.Sprintf("no binding for %q", expr)}
	}

	a, ok := binding.Action.(action.GlobalAction)
	if !ok {
		return ipc.Response{OK: false, Message: fmt.Sprintf("%q is not a global action", expr)}
	}

	if err := dispatchGlobal(ctx, action.GlobalEvent{Action: a}); err != nil {
		return ipc.Response{OK: false, Message: err.Error()}
	}

	return ipc.Response{OK: true}
}

// dispatchGlobal runs the subset of GlobalAction that only needs daemon
// commands or context bookkeeping, the same effect a keypress would have
// once routed through the event loop.
func dispatchGlobal(ctx *uimodel.Ctx, g action.GlobalEvent) error {
	c := ctx.Client

	switch g.Action {
	case action.TogglePause:
		switch ctx.Status.State {
		case mpd.StatePlaying:
			return c.Pause(true)
		case mpd.StatePaused:
			return c.Pause(false)
		default:
			return c.Play(0)
		}
	case action.NextTrack:
		return c.Next()
	case action.PreviousTrack:
		return c.Previous()
	case action.Stop:
		return c.Stop()
	case action.ToggleRepeat:
		return c.SetRepeat(!ctx.Status.Repeat)
	case action.ToggleRandom:
		return c.SetRandom(!ctx.Status.Random)
	case action.Update:
		_, err := c.Update("")

		return err
	case action.Rescan:
		_, err := c.Rescan("")

		return err
	case action.SwitchToTab:
		resp := handleSwitchTab(ctx, g.Arg)
		if !resp.OK {
			return fmt.Errorf("%s", resp.Message)
		}

		return nil
	default:
		return fmt.Errorf("action not remotely dispatchable")
	}
}

func handleIndexLRC(ctx *uimodel.Ctx, libraryRoot string) ipc.Response {
	entries, err := lyricsindex.Build(libraryRoot, ctx.Config.LyricsDir)
	if err != nil {
		return ipc.Response{OK: false, Message: err.Error()}
	}

	path := ctx.Config.CacheDir + "/lyrics_index.json"
	if err := lyricsindex.Save(path, entries); err != nil {
		return ipc.Response{OK: false, Message: err.Error()}
	}

	return ipc.Response{OK: true, Message: fmt.Sprintf("indexed %d lyric files", len(entries))}
}

func handleSetConfig(ctx *uimodel.Ctx, kind, path string) ipc.Response {
	if kind != "config" {
		return ipc.Response{OK: false, Message: fmt.Sprintf("unsupported set target %q", kind)}
	}

	if path == "-" || path == "" {
		path = ctx.Config.CacheDir
	}

	return ipc.Response{OK: true, Message: "config reload is driven by the file watcher; edit " + path}
}
