// Package settings persists player preferences (audio on/off and volumes)
// through gdata. Without a gdata manager the settings live in memory only.
package settings

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application name, which picks the data directory.
const AppName = "credit_balloons"

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Settings are the persisted player preferences.
type Settings struct {
	AudioEnabled bool    `yaml:"audioEnabled"`
	MusicVolume  float64 `yaml:"musicVolume"` // 0.0 to 1.0
	SoundVolume  float64 `yaml:"soundVolume"` // 0.0 to 1.0
}

// Default returns the settings for a first run. Audio starts off, as
// browsers and terminals both expect a deliberate opt-in.
func Default() Settings {
	return Settings{
		AudioEnabled: false,
		MusicVolume:  0.35,
		SoundVolume:  0.8,
	}
}

// Manager loads and saves Settings.
type Manager struct {
	gdata    *gdata.Manager // nil means memory only
	settings Settings
	logger   *log.Logger
}

// Open creates a manager backed by gdata under appName. If the data
// directory cannot be opened the manager still works, without persistence,
// and the error is returned for logging.
func Open(appName string, logger *log.Logger) (*Manager, error) {
	gm, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		m := NewManager(nil, logger)
		return m, fmt.Errorf("settings: open %s: %w", appName, err)
	}
	return NewManager(gm, logger), nil
}

// NewManager wraps an existing gdata manager, which may be nil. Saved
// settings are loaded immediately; a broken file falls back to defaults.
func NewManager(gm *gdata.Manager, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Manager{
		gdata:    gm,
		settings: Default(),
		logger:   logger,
	}
	if err := m.Load(); err != nil {
		logger.Warn("failed to load settings, using defaults", "err", err)
	}
	return m
}

// Persistent reports whether saves reach disk.
func (m *Manager) Persistent() bool {
	return m.gdata != nil
}

// Load replaces the current settings with the saved ones.
func (m *Manager) Load() error {
	if m.gdata == nil {
		m.settings = Default()
		return nil
	}

	if !m.gdata.ObjectPropExists(settingsObject, settingsProperty) {
		m.settings = Default()
		return nil
	}

	data, err := m.gdata.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.settings = Default()
		return fmt.Errorf("settings: load: %w", err)
	}

	loaded := Default()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		m.settings = Default()
		return fmt.Errorf("settings: unmarshal: %w", err)
	}

	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	m.settings = loaded
	return nil
}

// Save writes the current settings. A memory-only manager saves nothing
// and reports no error.
func (m *Manager) Save() error {
	if m.gdata == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}
	if err := m.gdata.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}

	m.logger.Debug("settings saved", "audio", m.settings.AudioEnabled)
	return nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings {
	return m.settings
}

// SetAudioEnabled changes the audio preference in memory.
func (m *Manager) SetAudioEnabled(on bool) {
	m.settings.AudioEnabled = on
}

// SetMusicVolume changes the music level in memory, clamped to [0, 1].
func (m *Manager) SetMusicVolume(v float64) {
	m.settings.MusicVolume = clampVolume(v)
}

// SetSoundVolume changes the effects level in memory, clamped to [0, 1].
func (m *Manager) SetSoundVolume(v float64) {
	m.settings.SoundVolume = clampVolume(v)
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
