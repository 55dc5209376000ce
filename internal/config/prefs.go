package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "sepgen"
	configFile = "config.yaml"

	// CurrentVersion is the preferences schema version this build reads.
	CurrentVersion = 1
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// Preferences holds operator defaults that persist between sessions. The
// Defaults map is applied to a fresh form before the wizard opens, keyed by
// field tag, so site-wide values (PBX address, timezone, VLAN) only have to
// be typed once.
type Preferences struct {
	Version    int               `yaml:"version"`
	OutputDir  string            `yaml:"output_dir,omitempty"`
	ListenAddr string            `yaml:"listen_addr,omitempty"`
	Defaults   map[string]string `yaml:"defaults,omitempty"`
}

// NewPreferences returns preferences with built-in defaults.
func NewPreferences() *Preferences {
	return &Preferences{
		Version:  CurrentVersion,
		Defaults: make(map[string]string),
	}
}

// GetConfigDir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/sepgen or $HOME/.config/sepgen
//   - macOS: $HOME/.config/sepgen (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\sepgen
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the preferences file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

func ensureConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

// Load reads the preferences from disk. A missing file is not an error; it
// returns fresh defaults so first runs work without setup.
func Load() (*Preferences, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return NewPreferences(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var prefs Preferences
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if prefs.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", prefs.Version, CurrentVersion)
	}
	if prefs.Defaults == nil {
		prefs.Defaults = make(map[string]string)
	}

	return &prefs, nil
}

// Save writes the preferences to disk.
// Performs an atomic write to prevent corruption on crash.
func (p *Preferences) Save() error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := ensureConfigDir(); err != nil {
		return fmt.Errorf("failed to ensure config directory exists: %w", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# sepgen preferences
# Site-wide defaults applied to every new provisioning form.
#
# Security Note: SIP and SSH passwords are NEVER stored in this file.
# They are entered per phone in the wizard.
#
# Location: ` + configPath + `

`)
	data = append(header, data...)

	tmpPath := configPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
