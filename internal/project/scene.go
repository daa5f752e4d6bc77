// Package project handles on-disk persistence: scene files, application
// configuration, room templates, and full-data backup. Everything is plain
// indented JSON under ~/.roomforge/ or a caller-chosen path.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/RoomForge/internal/lighting"
	"github.com/piwi3910/RoomForge/internal/model"
)

// SceneDocument is the on-disk form of a scene: the scene itself plus the
// advisory render blocks derived from it. Lighting and Camera are optional
// so documents written before layout stay valid.
type SceneDocument struct {
	model.Scene
	Lighting *lighting.Setup  `json:"lighting,omitempty"`
	Camera   *lighting.Camera `json:"camera,omitempty"`
}

// writeJSON marshals v as indented JSON and writes it to path, creating
// parent directories as needed.
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SaveScene writes a scene document to the given path as JSON.
func SaveScene(path string, doc SceneDocument) error {
	if err := writeJSON(path, doc); err != nil {
		return fmt.Errorf("failed to write scene file: %w", err)
	}
	return nil
}

// LoadScene reads a scene document from the given path.
func LoadScene(path string) (SceneDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneDocument{}, fmt.Errorf("failed to read scene file: %w", err)
	}
	var doc SceneDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return SceneDocument{}, fmt.Errorf("failed to parse scene file: %w", err)
	}
	if doc.Objects == nil {
		doc.Objects = []model.SceneObject{}
	}
	return doc, nil
}
