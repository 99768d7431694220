package config

import (
	"github.com/fsnotify/fsnotify"

	"github.com/lumen-shell/lumen/internal/logging"
)

// Watch starts watching the config file for changes and reloads
// automatically.
func (m *Manager) Watch() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")

		m.mu.Lock()
		cfg := &Config{}
		if err := m.viper.Unmarshal(cfg); err != nil {
			log.Warn().Err(err).Msg("failed to reload config")
			m.mu.Unlock()
			return
		}
		if err := Validate(cfg); err != nil {
			log.Warn().Err(err).Msg("rejecting invalid config reload")
			m.mu.Unlock()
			return
		}
		m.config = cfg
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})

	m.watching = true
}
