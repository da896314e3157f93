// Copyright © 2026 Layline contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: JSON configuration store for layline tools.
// Usage: cmd binaries load a config file once; components read sections
// through typed getters.

package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
)

// Config stores configuration sections as JSON-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

var (
	mu     sync.RWMutex
	store  Config = make(Config)
	loaded string
)

// Load reads a JSON config file into the global store, replacing any
// previous content. A missing file is not an error; the store just stays
// at defaults.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Config: No config at %s, using defaults", path)
			mu.Lock()
			store = make(Config)
			loaded = path
			mu.Unlock()
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	mu.Lock()
	store = cfg
	loaded = path
	mu.Unlock()
	return nil
}

// Save persists the current store to the path it was loaded from.
func Save() error {
	mu.RLock()
	path := loaded
	data, err := json.MarshalIndent(store, "", "  ")
	mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if path == "" {
		return fmt.Errorf("no config path; call Load first")
	}
	return os.WriteFile(path, data, 0644)
}

// GetSection returns a named section, or an empty one if absent.
func GetSection(name string) Section {
	mu.RLock()
	defer mu.RUnlock()

	if raw, ok := store[name]; ok {
		if m, ok := raw.(map[string]interface{}); ok {
			return Section(m)
		}
	}
	return make(Section)
}

// SetSection replaces a named section.
func SetSection(name string, s Section) {
	mu.Lock()
	defer mu.Unlock()
	store[name] = map[string]interface{}(s)
}

// GetString reads a string key with a fallback default.
func (s Section) GetString(key, def string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return def
}

// GetBool reads a boolean key with a fallback default.
func (s Section) GetBool(key string, def bool) bool {
	if v, ok := s[key].(bool); ok {
		return v
	}
	return def
}

// GetInt reads an integer key with a fallback default. JSON numbers decode
// as float64, so both forms are accepted.
func (s Section) GetInt(key string, def int) int {
	switch v := s[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}
