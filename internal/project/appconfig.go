package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/RoomForge/internal/model"
)

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.roomforge/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".roomforge")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	return writeJSON(path, config)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	var config model.AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	// Ensure RecentScenes is never nil
	if config.RecentScenes == nil {
		config.RecentScenes = []string{}
	}
	return config, nil
}

// maxRecentScenes caps the recent-scenes list.
const maxRecentScenes = 10

// AddRecentScene prepends a scene path to the recent list, removing any
// earlier occurrence and trimming the list to its cap.
func AddRecentScene(config *model.AppConfig, path string) {
	recent := []string{path}
	for _, p := range config.RecentScenes {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentScenes {
		recent = recent[:maxRecentScenes]
	}
	config.RecentScenes = recent
}
