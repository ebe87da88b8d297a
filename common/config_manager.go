// common/config_manager.go
// Package common implements shared functionality used across the HelloWorld application.
// This file contains configuration management functionality.

package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// GlobalConfig holds the application settings persisted in settings.conf.
type GlobalConfig struct {
	Language  string `json:"Language"`
	Selection int    `json:"Selection"`
}

// Cfg is the on-disk layout of settings.conf.
type Cfg struct {
	Global GlobalConfig `json:"global"`
}

// DefaultCfg returns the configuration written for a fresh install.
func DefaultCfg() Cfg {
	return Cfg{
		Global: GlobalConfig{
			Language:  "",
			Selection: SelectionWorld,
		},
	}
}

// ConfigManager handles loading, saving, and managing application configuration.
// It provides thread-safe access to the global settings.
type ConfigManager struct {
	configPath string
	cfg        Cfg
	mutex      sync.Mutex
}

// NewConfigManager creates a configuration manager for configPath holding
// the default configuration. Call Load to read the file.
func NewConfigManager(configPath string) (*ConfigManager, error) {
	if IsEmptyString(configPath) {
		return nil, errors.New("ConfigManager: configuration path cannot be empty")
	}
	return &ConfigManager{
		configPath: configPath,
		cfg:        DefaultCfg(),
	}, nil
}

// Path returns the configuration file path.
func (mgr *ConfigManager) Path() string {
	return mgr.configPath
}

// Load reads the configuration file. A missing or empty file keeps the
// defaults and is not an error. A malformed file keeps the defaults and
// returns the parse error.
func (mgr *ConfigManager) Load() error {
	mgr.mutex.Lock()
	defer mgr.mutex.Unlock()

	data, err := os.ReadFile(mgr.configPath)
	if os.IsNotExist(err) {
		CaptureEarlyLog(SeverityInfo, "Configuration file '%s' does not exist yet, using defaults", mgr.configPath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("ConfigManager.Load: failed to read %s: %w", mgr.configPath, err)
	}
	if len(data) == 0 {
		return nil
	}

	cfg := DefaultCfg()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("ConfigManager.Load: failed to unmarshal config data from %s: %w", mgr.configPath, err)
	}

	mgr.cfg = cfg
	return nil
}

// GetGlobalConfig returns a copy of the current global configuration.
func (mgr *ConfigManager) GetGlobalConfig() GlobalConfig {
	mgr.mutex.Lock()
	defer mgr.mutex.Unlock()

	return mgr.cfg.Global
}

// SaveGlobalConfig updates the global configuration and persists it to disk.
func (mgr *ConfigManager) SaveGlobalConfig(config GlobalConfig) error {
	mgr.mutex.Lock()
	defer mgr.mutex.Unlock()

	mgr.cfg.Global = config
	return mgr.save()
}

// SetLanguage stores the language code.
func (mgr *ConfigManager) SetLanguage(lang string) error {
	mgr.mutex.Lock()
	defer mgr.mutex.Unlock()

	if mgr.cfg.Global.Language == lang {
		return nil
	}
	mgr.cfg.Global.Language = lang
	return mgr.save()
}

// SetSelection stores the value shared by the radio buttons.
func (mgr *ConfigManager) SetSelection(value int) error {
	mgr.mutex.Lock()
	defer mgr.mutex.Unlock()

	if mgr.cfg.Global.Selection == value {
		return nil
	}
	mgr.cfg.Global.Selection = value
	return mgr.save()
}

// save writes the configuration. Caller holds mutex.
func (mgr *ConfigManager) save() error {
	data, err := json.MarshalIndent(mgr.cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("ConfigManager.save: failed to marshal config data: %w", err)
	}

	dir := filepath.Dir(mgr.configPath)
	if err := EnsureDirectoryExists(dir); err != nil {
		return fmt.Errorf("ConfigManager.save: %w", err)
	}

	if err := os.WriteFile(mgr.configPath, data, 0644); err != nil {
		return fmt.Errorf("ConfigManager.save: failed to write config file %s: %w", mgr.configPath, err)
	}
	return nil
}

// CreateConfigFile creates a configuration file with default settings.
func CreateConfigFile(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := EnsureDirectoryExists(dir); err != nil {
		return fmt.Errorf("CreateConfigFile: failed to ensure directory %s exists: %w", dir, err)
	}

	data, err := json.MarshalIndent(DefaultCfg(), "", "  ")
	if err != nil {
		return fmt.Errorf("CreateConfigFile: failed to marshal default config data: %w", err)
	}

	if err = os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("CreateConfigFile: failed to write default config file %s: %w", configPath, err)
	}
	return nil
}
