// Package pathutil expands `~` and `$VAR`/`${VAR}` references in
// user-authored config paths. Kept on the standard library: this is a
// handful of lines of string substitution with no parsing ambiguity, and
// none of the retrieved third-party stacks (toml, cobra, fsnotify, the
// bubbletea family) ship a path-expansion helper of their own.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand replaces a leading "~" with the user's home directory and expands
// any $VAR / ${VAR} environment references, then cleans the result. Paths
// that don't start with ~ and carry no $ are returned unchanged (aside from
// Clean).
func Expand(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}

	path = os.Expand(path, func(name string) string {
		return os.Getenv(name)
	})

	return filepath.Clean(path)
}
