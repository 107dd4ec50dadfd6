package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"mpctui/internal/config"
)

// themeCmd prints the built-in default theme as TOML.
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Print the default theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := toml.NewEncoder(os.Stdout).Encode(config.DefaultTheme()); err != nil {
			return fmt.Errorf("cmd: encode default theme: %w", err)
		}

		return nil
	},
}
