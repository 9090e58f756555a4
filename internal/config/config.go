package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	SettingsFileName    = "config.yaml"
	CredentialsFileName = "credentials.json"
	TokenFileName       = "token.json"
	HistoryDBFileName   = "history.db"
)

// DefaultPageSize is the number of results requested per Drive API page.
const DefaultPageSize = 100

var (
	customConfigDir       string
	customCredentialsPath string
)

// Settings holds user-tunable options loaded from config.yaml.
type Settings struct {
	// PageSize is the Drive API page size (default 100, max 1000).
	PageSize int `yaml:"page_size"`
	// Credentials overrides the path to the OAuth client secret file.
	Credentials string `yaml:"credentials"`
	// HistoryDB overrides the path to the deletion history database.
	HistoryDB string `yaml:"history_db"`
	// DisableHistory turns off the deletion history log entirely.
	DisableHistory bool `yaml:"disable_history"`
}

// SetCustomConfigDir overrides the configuration directory (--config-dir flag).
func SetCustomConfigDir(dir string) {
	customConfigDir = dir
}

// SetCustomCredentialsPath overrides the credentials.json location (--credentials flag).
func SetCustomCredentialsPath(path string) {
	customCredentialsPath = path
}

// GetConfigDir returns the tool's configuration directory, creating it if needed.
func GetConfigDir() (string, error) {
	if customConfigDir != "" {
		if err := os.MkdirAll(customConfigDir, 0700); err != nil {
			return "", fmt.Errorf("failed to create config directory: %w", err)
		}

		return customConfigDir, nil
	}

	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine user config directory: %w", err)
	}

	configDir := filepath.Join(userConfigDir, "gdrive-eraser")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// LoadSettings loads config.yaml from the search paths, falling back to
// defaults when no file exists.
func LoadSettings() (*Settings, error) {
	settings := DefaultSettings()

	for _, path := range settingsSearchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
		}

		break
	}

	if settings.PageSize <= 0 {
		settings.PageSize = DefaultPageSize
	} else if settings.PageSize > 1000 {
		settings.PageSize = 1000
	}

	return settings, nil
}

// SaveSettings writes settings to config.yaml in the config directory.
func SaveSettings(settings *Settings) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	path := filepath.Join(configDir, SettingsFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}

	return nil
}

// DefaultSettings returns the default settings.
func DefaultSettings() *Settings {
	return &Settings{
		PageSize: DefaultPageSize,
	}
}

// GetCredentialsPath returns the path of the OAuth client secret file.
// Resolution order: --credentials flag, config.yaml override, config
// directory, current directory. The file is not required to exist; the
// caller decides how to report a missing file.
func GetCredentialsPath() string {
	if customCredentialsPath != "" {
		return customCredentialsPath
	}

	if settings, err := LoadSettings(); err == nil && settings.Credentials != "" {
		return settings.Credentials
	}

	if configDir, err := GetConfigDir(); err == nil {
		path := filepath.Join(configDir, CredentialsFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return CredentialsFileName
}

// GetTokenPath returns the path of the persisted OAuth token.
func GetTokenPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, TokenFileName), nil
}

// GetHistoryDBPath returns the path of the deletion history database.
func GetHistoryDBPath() (string, error) {
	if settings, err := LoadSettings(); err == nil && settings.HistoryDB != "" {
		return settings.HistoryDB, nil
	}

	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, HistoryDBFileName), nil
}

// settingsSearchPaths returns the list of paths to search for config.yaml.
func settingsSearchPaths() []string {
	var paths []string

	if customConfigDir != "" {
		paths = append(paths, filepath.Join(customConfigDir, SettingsFileName))
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(userConfigDir, "gdrive-eraser", SettingsFileName))
	}

	paths = append(paths, SettingsFileName)

	return paths
}
