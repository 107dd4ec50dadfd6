package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"mpctui/internal/config"
)

// configCmd prints the built-in default configuration as TOML, a starting
// point for a user's own config file.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := toml.NewEncoder(os.Stdout).Encode(config.Default()); err != nil {
			return fmt.Errorf("cmd: encode default config: %w", err)
		}

		return nil
	},
}
