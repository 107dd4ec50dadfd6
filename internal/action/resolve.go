package action

import (
	"fmt"

	"mpctui/internal/keyseq"
)

// globalActionNames, commonActionNames, queueActionNames, and
// logsActionNames are each scope's fixed vocabulary: the set of action names
// config.DefaultBindings and a user's keys.*.entries may bind, resolved here
// rather than in internal/config so that package can stay independent of
// this one.
var globalActionNames = map[string]GlobalAction{
	"Quit":                Quit,
	"TogglePause":         TogglePause,
	"NextTrack":           NextTrack,
	"PreviousTrack":       PreviousTrack,
	"Stop":                Stop,
	"SeekForward":         SeekForward,
	"SeekBack":            SeekBack,
	"VolumeUp":            VolumeUp,
	"VolumeDown":          VolumeDown,
	"ToggleRepeat":        ToggleRepeat,
	"ToggleRandom":        ToggleRandom,
	"ToggleConsume":       ToggleConsume,
	"ToggleSingle":        ToggleSingle,
	"NextTab":             NextTab,
	"PreviousTab":         PreviousTab,
	"SwitchToTab":         SwitchToTab,
	"ShowHelp":            ShowHelp,
	"CommandMode":         CommandMode,
	"Update":              Update,
	"Rescan":              Rescan,
	"AddRandom":           AddRandom,
	"ShowCurrentSongInfo": ShowCurrentSongInfo,
	"ShowOutputs":         ShowOutputs,
	"ShowDecoders":        ShowDecoders,
}

var commonActionNames = map[string]CommonAction{
	"Up":              Up,
	"Down":            Down,
	"Left":            Left,
	"Right":           Right,
	"PaneUp":          PaneUp,
	"PaneDown":        PaneDown,
	"PaneLeft":        PaneLeft,
	"PaneRight":       PaneRight,
	"PageUp":          PageUp,
	"PageDown":        PageDown,
	"UpHalf":          UpHalf,
	"DownHalf":        DownHalf,
	"Top":             Top,
	"Bottom":          Bottom,
	"MoveUp":          MoveUp,
	"MoveDown":        MoveDown,
	"Select":          Select,
	"InvertSelection": InvertSelection,
	"EnterSearch":     EnterSearch,
	"NextResult":      NextResult,
	"PreviousResult":  PreviousResult,
	"Confirm":         Confirm,
	"Close":           Close,
	"Add":             Add,
	"AddAll":          AddAll,
	"Delete":          Delete,
	"Rename":          Rename,
	"FocusInput":      FocusInput,
	"ShowInfo":        ShowInfo,
	"ContextMenu":     ContextMenu,
	"SaveModal":       SaveModal,
	"SaveDefault":     SaveDefault,
	"Rate":            Rate,
	"CopyToClipboard": CopyToClipboard,
}

var queueActionNames = map[string]QueueAction{
	"QueuePlaySelected":   QueuePlaySelected,
	"QueueRemoveSelected": QueueRemoveSelected,
	"QueueCenterCursor":   QueueCenterCursor,
	"QueueJumpToCurrent":  QueueJumpToCurrent,
}

var logsActionNames = map[string]LogsAction{
	"LogsClear":      LogsClear,
	"LogsToggleWrap": LogsToggleWrap,
}

// ResolveScope rewrites every binding in m in place, replacing the action
// name config.ComposeAll stored as a plain string with the scope's typed
// enum value. Without this step keyseq.FireResult.Action still holds a
// string, and the event loop's type assertion against the named enum types
// (action.CommonAction and friends) panics on the first matched keypress.
func ResolveScope(m *keyseq.Map) error {
	switch m.Name {
	case "global":
		return resolveInto(m, globalActionNames)
	case "navigation":
		return resolveInto(m, commonActionNames)
	case "queue":
		return resolveInto(m, queueActionNames)
	case "logs":
		return resolveInto(m, logsActionNames)
	default:
		return fmt.Errorf("action: scope %q has no action vocabulary", m.Name)
	}
}

// ResolveScopes runs ResolveScope over every map in scopes, keyed by scope
// name as config.ComposeAll returns them.
func ResolveScopes(scopes map[string]*keyseq.Map) error {
	for _, m := range scopes {
		if err := ResolveScope(m); err != nil {
			return err
		}
	}

	return nil
}

func resolveInto[T any](m *keyseq.Map, names map[string]T) error {
	for key, b := range m.Bindings {
		name, ok := b.Action.(string)
		if !ok {
			continue
		}

		typed, ok := names[name]
		if !ok {
			return fmt.Errorf("action: scope %q: unbound action name %q", m.Name, name)
		}

		b.Action = typed
		m.Bindings[key] = b
	}

	return nil
}
