// Package ipc implements the local control socket: a running instance
// listens on a unix socket, and the `remote` CLI subcommands dial it to
// forward a command without starting a second instance.
package ipc

import (
	"encoding/json"
	"fmt"
)

// Kind identifies a remote command.
type Kind string

const (
	KindStatus     Kind = "status"
	KindKeybind    Kind = "keybind"
	KindSwitchTab  Kind = "switchtab"
	KindIndexLRC   Kind = "indexlrc"
	KindSetConfig  Kind = "set"
	KindTmux       Kind = "tmux"
)

// Command is one frame sent from a `remote` client to the daemon.
type Command struct {
	Kind Kind   `json:"kind"`
	Arg  string `json:"arg,omitempty"`
	// Arg2 carries the second positional argument for commands that take
	// one, e.g. `set config|theme PATH`.
	Arg2 string `json:"arg2,omitempty"`
}

// Response is returned for every Command, success or failure.
type Response struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// Exit codes per the CLI surface: 0 success, 1 generic failure, 2 CLI
// parse error, 3 daemon unavailable.
const (
	ExitOK             = 0
	ExitFailure        = 1
	ExitParseError     = 2
	ExitDaemonDown     = 3
)

func encodeCommand(c Command) ([]byte, error) {
	return json.Marshal(c)
}

func decodeCommand(b []byte) (Command, error) {
	var c Command

	if err := json.Unmarshal(b, &c); err != nil {
		return Command{}, fmt.Errorf("ipc: decode command: %w", err)
	}

	return c, nil
}

func encodeResponse(r Response) ([]byte, error) {
	return json.Marshal(r)
}

func decodeResponse(b []byte) (Response, error) {
	var r Response

	if err := json.Unmarshal(b, &r); err != nil {
		return Response{}, fmt.Errorf("ipc: decode response: %w", err)
	}

	return r, nil
}
