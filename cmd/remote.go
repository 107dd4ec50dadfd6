package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mpctui/internal/ipc"
)

// remoteCmd forwards a command to an already-running instance over its
// control socket instead of starting a second one.
var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Send a command to a running mpctui instance",
}

func init() {
	remoteCmd.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Show the playback state and current song title (no transient status message)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return sendRemote(ipc.Command{Kind: ipc.KindStatus})
			},
		},
		&cobra.Command{
			Use:   "keybind KEYEXPR",
			Short: "Fire the global action bound to KEYEXPR",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return sendRemote(ipc.Command{Kind: ipc.KindKeybind, Arg: args[0]})
			},
		},
		&cobra.Command{
			Use:   "switchtab NAME",
			Short: "Switch the running instance to tab NAME",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return sendRemote(ipc.Command{Kind: ipc.KindSwitchTab, Arg: args[0]})
			},
		},
		&cobra.Command{
			Use:   "indexlrc PATH",
			Short: "Rebuild the lyrics index from the library at PATH",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return sendRemote(ipc.Command{Kind: ipc.KindIndexLRC, Arg: args[0]})
			},
		},
		&cobra.Command{
			Use:   "set config|theme -|PATH",
			Short: "Report how the running instance reloads config; switches no source and rejects theme",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return sendRemote(ipc.Command{Kind: ipc.KindSetConfig, Arg: args[0], Arg2: args[1]})
			},
		},
		&cobra.Command{
			Use:   "tmux HOOK",
			Short: "Forward a tmux hook notification (focus, resize)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return sendRemote(ipc.Command{Kind: ipc.KindTmux, Arg: args[0]})
			},
		},
	)
}

// sendRemote dials the control socket, forwards cmd, prints the response,
// and maps the result onto the documented exit codes. The caller's Execute
// path already os.Exit(1)s on a returned error, so a daemon-unavailable or
// command-failure result calls os.Exit directly here to get its own code.
func sendRemote(cmd ipc.Command) error {
	resp, err := ipc.Send(ipc.SocketPath(), cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mpctui remote: %v\n", err)
		os.Exit(ipc.ExitDaemonDown)
	}

	if resp.Message != "" {
		fmt.Println(resp.Message)
	}

	if !resp.OK {
		os.Exit(ipc.ExitFailure)
	}

	return nil
}
