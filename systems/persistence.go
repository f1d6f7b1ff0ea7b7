package systems

import (
	"encoding/json"

	cfg "github.com/automoto/dodgefall/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume float64 `json:"sfxVolume"`
	Muted     bool    `json:"muted"`
}

// SettingsFrom captures the persistable part of an audio configuration.
func SettingsFrom(c cfg.AudioConfig) *SavedSettings {
	return &SavedSettings{SFXVolume: c.SFXVolume, Muted: c.Muted}
}

// Apply copies the saved values onto c. Out of range volumes are clamped.
func (s *SavedSettings) Apply(c *cfg.AudioConfig) {
	if s == nil {
		return
	}
	c.SFXVolume = clampFloat(s.SFXVolume, 0, 1)
	c.Muted = s.Muted
}

// SettingsStore persists settings in the platform's per-user data
// directory. A nil store is valid and never saves anything.
type SettingsStore struct {
	m      *gdata.Manager
	logger *log.Logger
}

// OpenSettings opens the settings store for appName.
func OpenSettings(appName string, logger *log.Logger) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, err
	}
	return &SettingsStore{m: m, logger: logger}, nil
}

// Load returns the saved settings, or nil when nothing was saved yet.
func (s *SettingsStore) Load() (*SavedSettings, error) {
	if s == nil || s.m == nil {
		return nil, nil
	}

	data, err := s.m.LoadItem(settingsKey)
	if err != nil {
		return nil, err
	}
	return decodeSettings(data)
}

// Save writes settings to disk. Failures are logged and returned.
func (s *SettingsStore) Save(saved *SavedSettings) error {
	if s == nil || s.m == nil {
		return nil
	}

	data, err := json.Marshal(saved)
	if err != nil {
		return err
	}
	if err := s.m.SaveItem(settingsKey, data); err != nil {
		s.logger.Warn("could not save settings", "err", err)
		return err
	}
	return nil
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var saved SavedSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}
