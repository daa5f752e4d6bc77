package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/piwi3910/RoomForge/internal/model"
)

// backupVersion is written into every backup file and checked on import.
const backupVersion = "1.0.0"

// BackupData bundles everything RoomForge persists outside individual scene
// files: the application config and the user-defined room templates.
type BackupData struct {
	Version   string          `json:"version"`
	CreatedAt string          `json:"created_at"`
	Config    model.AppConfig `json:"config"`
	Templates TemplateStore   `json:"templates"`
}

// ExportAllData writes a single-file backup of the config and user
// templates to the given path.
func ExportAllData(path string, config model.AppConfig, templates TemplateStore) error {
	backup := BackupData{
		Version:   backupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Templates: templates,
	}
	if err := writeJSON(path, backup); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup file back. Applying the contained config and
// templates is up to the caller; a file without a version field is rejected
// as not being a backup at all.
func ImportAllData(path string) (BackupData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	if backup.Config.RecentScenes == nil {
		backup.Config.RecentScenes = []string{}
	}
	if backup.Templates.Templates == nil {
		backup.Templates.Templates = []RoomTemplate{}
	}
	return backup, nil
}
