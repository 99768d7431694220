package config

import "fmt"

// Validate rejects configurations the switcher cannot run with.
func Validate(cfg *Config) error {
	if cfg.Cycling.ScrollThresholdPx <= 0 {
		return fmt.Errorf("cycling.scroll_threshold_px must be positive, got %v", cfg.Cycling.ScrollThresholdPx)
	}
	if cfg.Cycling.SwipeThresholdPx <= 0 {
		return fmt.Errorf("cycling.swipe_threshold_px must be positive, got %v", cfg.Cycling.SwipeThresholdPx)
	}
	if cfg.Cycling.PreviewItemWidthPx <= 0 {
		return fmt.Errorf("cycling.preview_item_width_px must be positive, got %v", cfg.Cycling.PreviewItemWidthPx)
	}
	if cfg.Cycling.VisiblePreviewItems < 1 {
		return fmt.Errorf("cycling.visible_preview_items must be at least 1, got %d", cfg.Cycling.VisiblePreviewItems)
	}
	if cfg.Cycling.ThrottleFPS < 1 {
		return fmt.Errorf("cycling.throttle_fps must be at least 1, got %d", cfg.Cycling.ThrottleFPS)
	}
	switch cfg.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", cfg.Logging.Format)
	}
	return nil
}
