package config

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Cycling: CyclingConfig{
			ScrollThresholdPx:   120,
			SwipeThresholdPx:    100,
			PreviewItemWidthPx:  240,
			VisiblePreviewItems: 7,
			ThrottleFPS:         20,
			ReverseScroll:       false,
		},
	}
}

// defaultSettings maps viper keys to default values so partial config files
// inherit the rest.
func defaultSettings() map[string]any {
	d := Defaults()
	return map[string]any{
		"logging.level":                 d.Logging.Level,
		"logging.format":                d.Logging.Format,
		"cycling.scroll_threshold_px":   d.Cycling.ScrollThresholdPx,
		"cycling.swipe_threshold_px":    d.Cycling.SwipeThresholdPx,
		"cycling.preview_item_width_px": d.Cycling.PreviewItemWidthPx,
		"cycling.visible_preview_items": d.Cycling.VisiblePreviewItems,
		"cycling.throttle_fps":          d.Cycling.ThrottleFPS,
		"cycling.reverse_scroll":        d.Cycling.ReverseScroll,
		"telemetry.database_path":       "",
		"preferences.path":              "",
	}
}
