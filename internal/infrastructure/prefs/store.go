// Package prefs persists per-user cycling preferences and notifies the
// controller when another writer changes them.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/lumen-shell/lumen/internal/application/port"
	"github.com/lumen-shell/lumen/internal/infrastructure/config"
	"github.com/lumen-shell/lumen/internal/logging"
)

const (
	perDeskKey   = "alt_tab_per_active_desk"
	prefsDirPerm = 0o750
)

// Store is a viper-backed preference file with fsnotify change
// notification. It implements port.PreferenceStore.
type Store struct {
	viper *viper.Viper
	path  string

	mu        sync.RWMutex
	perDesk   bool
	callbacks []func(bool)
	watching  bool
}

var _ port.PreferenceStore = (*Store)(nil)

// NewStore opens (or creates) the preference file. An empty path falls back
// to prefs.toml in the shell's XDG config dir.
func NewStore(ctx context.Context, path string) (*Store, error) {
	log := logging.FromContext(ctx)

	if path == "" {
		dir, err := config.GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("determine prefs directory: %w", err)
		}
		path = filepath.Join(dir, "prefs.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), prefsDirPerm); err != nil {
		return nil, fmt.Errorf("create prefs directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetDefault(perDeskKey, false)

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read prefs file: %w", err)
		}
		if err := v.WriteConfigAs(path); err != nil {
			return nil, fmt.Errorf("create prefs file: %w", err)
		}
	}

	s := &Store{
		viper:   v,
		path:    path,
		perDesk: v.GetBool(perDeskKey),
	}

	log.Debug().Str("path", path).Bool("per_desk", s.perDesk).Msg("preference store opened")
	return s, nil
}

// AltTabPerActiveDesk returns the stored per-desk default.
func (s *Store) AltTabPerActiveDesk(_ context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.perDesk
}

// SetAltTabPerActiveDesk persists the per-desk default.
func (s *Store) SetAltTabPerActiveDesk(ctx context.Context, perDesk bool) error {
	s.mu.Lock()
	s.perDesk = perDesk
	s.viper.Set(perDeskKey, perDesk)
	err := s.viper.WriteConfigAs(s.path)
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("write prefs file: %w", err)
	}
	logging.FromContext(ctx).Debug().Bool("per_desk", perDesk).Msg("preference saved")
	return nil
}

// OnChange registers a callback fired when the stored value changes
// externally. Watch must be called for callbacks to fire.
func (s *Store) OnChange(fn func(perDesk bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = append(s.callbacks, fn)
}

// Watch starts watching the preference file. Self-initiated writes do not
// fire callbacks; the in-memory value already matches.
func (s *Store) Watch(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watching {
		return
	}
	s.watching = true

	log := logging.FromContext(ctx)
	s.viper.WatchConfig()
	s.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("prefs change detected")

		s.mu.Lock()
		value := s.viper.GetBool(perDeskKey)
		if value == s.perDesk {
			s.mu.Unlock()
			return
		}
		s.perDesk = value
		callbacks := make([]func(bool), len(s.callbacks))
		copy(callbacks, s.callbacks)
		s.mu.Unlock()

		for _, fn := range callbacks {
			fn(value)
		}
	})
}
