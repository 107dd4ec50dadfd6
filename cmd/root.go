package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"mpctui/internal/action"
	"mpctui/internal/config"
	"mpctui/internal/ipc"
	"mpctui/internal/logging"
	"mpctui/internal/modals"
	"mpctui/internal/mpd"
	"mpctui/internal/panes"
	"mpctui/internal/uimodel"
)

// Version information, set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

var (
	flagConfig   string
	flagAddress  string
	flagPassword string
	flagLog      string
)

// rootCmd is the default action: connect to the daemon and run the
// terminal UI. Every other verb is a subcommand.
var rootCmd = &cobra.Command{
	Use:     "mpctui",
	Short:   "A terminal client for the Music Player Daemon",
	Long:    `mpctui is a terminal user interface for MPD: queue, library browser, playlists, search, album art, and lyrics, all driven by a single configurable keymap.`,
	Version: fmt.Sprintf("%s (%s)", version, commit),
	RunE:    runTUI,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ipc.ExitFailure)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path (default: $XDG_CONFIG_HOME/mpctui/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagAddress, "address", "", "MPD address host:port (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "", "MPD password (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "info", "log level: info or debug")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(remoteCmd)
}

func configFilePath() string {
	if flagConfig != "" {
		return flagConfig
	}

	return config.DefaultPath()
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configFilePath())
	if err != nil {
		return config.Config{}, err
	}

	if flagAddress != "" {
		cfg.Address = flagAddress
	}

	if flagPassword != "" {
		cfg.Password = flagPassword
	}

	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("mpctui: load config: %w", err)
	}

	closer, err := logging.Init(logging.Options{
		Path:  filepath.Join(cfg.CacheDir, "mpctui.log"),
		Debug: flagLog == "debug",
	})
	if err != nil {
		return fmt.Errorf("mpctui: init logging: %w", err)
	}
	defer closer.Close()

	client, err := mpd.Dial(cfg.Address, cfg.Password)
	if err != nil {
		return fmt.Errorf("mpctui: connect to daemon: %w", err)
	}

	registry := uimodel.NewRegistry()
	panes.RegisterBuiltins(registry)

	ctx, err := uimodel.NewCtx(&cfg, client, registry)
	if err != nil {
		client.Close()

		return fmt.Errorf("mpctui: build context: %w", err)
	}
	defer ctx.Close()

	ctx.Modals = &modals.Factory{Stack: ctx.ModalStack, Client: client, Scopes: ctx.Scopes}

	sock, err := ipc.Serve(ipc.SocketPath(), newIPCHandler(ctx))
	if err != nil {
		log.Warn().Err(err).Msg("control socket unavailable, remote subcommands won't reach this instance")
	} else {
		defer sock.Close()
	}

	watcher, err := config.NewWatcher(configFilePath())
	if err != nil {
		log.Warn().Err(err).Msg("config file watch unavailable, config changes need a restart")
	} else {
		defer watcher.Close()
	}

	model := uimodel.NewModel(ctx, cfg.Address, cfg.Password)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if watcher != nil {
		go relayConfigReloads(watcher, ctx)
	}

	_, err = program.Run()

	return err
}

// relayConfigReloads applies every config.Watcher change directly onto the
// live Ctx.Config snapshot. Every pane and modal holds ctx by pointer, so
// the swap is visible on the next render with no broadcast message needed.
// Already-composed key sequencer maps are not rebuilt; rebinding keys still
// requires a restart.
func relayConfigReloads(w *config.Watcher, ctx *uimodel.Ctx) {
	for {
		select {
		case cfg, ok := <-w.Changes:
			if !ok {
				return
			}

			*ctx.Config = cfg

			scopes, err := config.ComposeAll(cfg.Keys)
			if err != nil {
				log.Warn().Err(err).Msg("config reload: compose keybindings failed, keeping previous bindings")

				continue
			}

			if err := action.ResolveScopes(scopes); err != nil {
				log.Warn().Err(err).Msg("config reload: unknown action name, keeping previous bindings")

				continue
			}

			ctx.Scopes = scopes

			log.Info().Msg("config reloaded")

		case err, ok := <-w.Errors:
			if !ok {
				return
			}

			log.Warn().Err(err).Msg("config reload failed, keeping previous config")
		}
	}
}
