package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/RoomForge/internal/catalog"
	"github.com/piwi3910/RoomForge/internal/model"
)

// RoomTemplate is a reusable starting point for a scene: a mood plus the
// object names to pull from the asset catalog.
type RoomTemplate struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Mood        string   `json:"mood,omitempty"`
	ObjectNames []string `json:"object_names"`
}

// TemplateStore holds user-defined templates for persistence.
type TemplateStore struct {
	Templates []RoomTemplate `json:"templates"`
}

// Add appends a template, replacing any existing template of the same name.
func (s *TemplateStore) Add(t RoomTemplate) {
	for i, existing := range s.Templates {
		if existing.Name == t.Name {
			s.Templates[i] = t
			return
		}
	}
	s.Templates = append(s.Templates, t)
}

// BuiltInTemplates returns the stock room templates.
func BuiltInTemplates() []RoomTemplate {
	return []RoomTemplate{
		{
			Name:        "Cozy Bedroom",
			Description: "Bed, desk and warm accents",
			Mood:        "warm cozy",
			ObjectNames: []string{"bed", "desk", "chair", "lamp", "rug", "plant"},
		},
		{
			Name:        "Home Office",
			Description: "Work corner with storage",
			Mood:        "cool modern",
			ObjectNames: []string{"desk", "office chair", "bookshelf", "lamp", "plant"},
		},
		{
			Name:        "Reading Nook",
			Description: "Soft light and books",
			Mood:        "soft",
			ObjectNames: []string{"chair", "bookshelf", "floor lamp", "rug", "books", "table"},
		},
	}
}

// Instantiate builds a fresh scene from a template, resolving its object
// names through the asset library. Unresolvable names surface as warnings.
func (t RoomTemplate) Instantiate(lib catalog.Library) (model.Scene, []string) {
	objects, warnings := lib.Resolve(t.ObjectNames)

	scene := model.NewScene()
	scene.Name = t.Name
	scene.Mood = t.Mood
	scene.Objects = objects
	return scene, warnings
}

// DefaultTemplatePath returns the default file path for the template store.
// This is located at ~/.roomforge/templates.json.
func DefaultTemplatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".roomforge")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "templates.json"), nil
}

// SaveTemplates writes the template store to a JSON file.
func SaveTemplates(path string, store TemplateStore) error {
	return writeJSON(path, store)
}

// LoadTemplates reads a template store from a JSON file.
// If the file does not exist, returns an empty store.
func LoadTemplates(path string) (TemplateStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return TemplateStore{Templates: []RoomTemplate{}}, nil
		}
		return TemplateStore{}, err
	}
	var store TemplateStore
	if err := json.Unmarshal(data, &store); err != nil {
		return TemplateStore{}, err
	}
	if store.Templates == nil {
		store.Templates = []RoomTemplate{}
	}
	return store, nil
}
