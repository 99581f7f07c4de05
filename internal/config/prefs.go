package config

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Prefs are operator view preferences that survive restarts. Painted cells
// are never stored here.
type Prefs struct {
	ShowLabels  bool `yaml:"showLabels"`
	ColoredMode bool `yaml:"coloredMode"`
	ActiveZone  int  `yaml:"activeZone"`
}

const (
	prefsObject   = "prefs"
	prefsProperty = "view"
)

// PrefsStore loads and saves Prefs through gdata. A nil manager keeps the
// preferences in memory only.
type PrefsStore struct {
	manager *gdata.Manager
	prefs   Prefs
}

// OpenPrefs opens the platform data store for appName. On failure the store
// falls back to memory-only mode and the error is logged.
func OpenPrefs(appName string, defaults Prefs) *PrefsStore {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Prefs] Warning: data store unavailable: %v (preferences will not persist)", err)
		m = nil
	}
	return NewPrefsStore(m, defaults)
}

// NewPrefsStore creates a store and loads any saved preferences over defaults.
func NewPrefsStore(m *gdata.Manager, defaults Prefs) *PrefsStore {
	ps := &PrefsStore{manager: m, prefs: defaults}
	if err := ps.Load(); err != nil {
		log.Printf("[Prefs] Warning: failed to load preferences: %v (using defaults)", err)
	}
	return ps
}

// Load replaces the in-memory preferences with the saved copy, if any.
func (ps *PrefsStore) Load() error {
	if ps.manager == nil || !ps.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}
	data, err := ps.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	loaded := ps.prefs
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	ps.prefs = loaded
	return nil
}

// Save writes the preferences. In memory-only mode it does nothing.
func (ps *PrefsStore) Save() error {
	if ps.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(ps.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := ps.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// Get returns the current preferences.
func (ps *PrefsStore) Get() Prefs {
	return ps.prefs
}

// Update applies fn to the preferences and saves them.
func (ps *PrefsStore) Update(fn func(*Prefs)) error {
	fn(&ps.prefs)
	return ps.Save()
}
