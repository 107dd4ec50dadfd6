package config

import "fmt"

// Validate checks every cross-reference named in the layout, theme, and
// formatting sections: pane descriptors resolve, border sets are complete,
// and song-format column widths don't overcommit the row.
func Validate(cfg Config) error {
	if err := validatePanes(cfg.Tabs, cfg.Panes); err != nil {
		return err
	}

	if err := validateTheme(cfg.Theme); err != nil {
		return err
	}

	if err := validateSongFormat(cfg.SongFormat); err != nil {
		return err
	}

	if cfg.VolumeStep <= 0 || cfg.VolumeStep > 100 {
		return fmt.Errorf("config: volume_step must be in 1..100, got %d", cfg.VolumeStep)
	}

	return nil
}

func validateSongFormat(cols []Column) error {
	total := 0
	for _, c := range cols {
		if c.Template == "" {
			return fmt.Errorf("config: song_format column has empty template")
		}

		if c.WidthPercent < 0 {
			return fmt.Errorf("config: song_format column width_percent must be ≥0, got %d", c.WidthPercent)
		}

		total += c.WidthPercent
	}

	if total > 100 {
		return fmt.Errorf("config: song_format column widths sum to %d, must be ≤100", total)
	}

	return nil
}
