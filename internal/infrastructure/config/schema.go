// Package config loads the shell-cycling configuration: TOML file in the
// XDG config dir, environment overrides with the LUMEN_ prefix, and change
// notification for live reload.
package config

// Config represents the complete configuration for the cycling subsystem.
type Config struct {
	// Logging controls log level and output format.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging"`
	// Cycling holds the interactive tuning knobs for the switcher.
	Cycling CyclingConfig `mapstructure:"cycling" yaml:"cycling" toml:"cycling"`
	// Telemetry controls desk-switch sample persistence.
	Telemetry TelemetryConfig `mapstructure:"telemetry" yaml:"telemetry" toml:"telemetry"`
	// Preferences locates the per-user preference file.
	Preferences PreferencesConfig `mapstructure:"preferences" yaml:"preferences" toml:"preferences"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level" toml:"level"`
	// Format is "console" or "json".
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
}

// CyclingConfig holds the switcher's interactive tuning knobs.
type CyclingConfig struct {
	// ScrollThresholdPx is the per-gesture horizontal distance in pixels
	// after which the selection snaps to the scrolled position.
	ScrollThresholdPx float64 `mapstructure:"scroll_threshold_px" yaml:"scroll_threshold_px" toml:"scroll_threshold_px"`
	// SwipeThresholdPx is the vertical swipe distance in pixels that hands
	// off to overview mode.
	SwipeThresholdPx float64 `mapstructure:"swipe_threshold_px" yaml:"swipe_threshold_px" toml:"swipe_threshold_px"`
	// PreviewItemWidthPx is the width of one preview item, used to convert
	// touch-drag pixels into item units.
	PreviewItemWidthPx float64 `mapstructure:"preview_item_width_px" yaml:"preview_item_width_px" toml:"preview_item_width_px"`
	// VisiblePreviewItems is the preview strip viewport capacity.
	VisiblePreviewItems int `mapstructure:"visible_preview_items" yaml:"visible_preview_items" toml:"visible_preview_items"`
	// ThrottleFPS is the frame rate previews are throttled to while the
	// switcher is up.
	ThrottleFPS int `mapstructure:"throttle_fps" yaml:"throttle_fps" toml:"throttle_fps"`
	// ReverseScroll mirrors the user's natural-scrolling preference.
	ReverseScroll bool `mapstructure:"reverse_scroll" yaml:"reverse_scroll" toml:"reverse_scroll"`
}

// TelemetryConfig controls sample persistence.
type TelemetryConfig struct {
	// DatabasePath overrides the default sqlite location under the XDG
	// data dir.
	DatabasePath string `mapstructure:"database_path" yaml:"database_path" toml:"database_path"`
}

// PreferencesConfig locates per-user preference storage.
type PreferencesConfig struct {
	// Path overrides the default prefs.toml location under the XDG config
	// dir.
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}
