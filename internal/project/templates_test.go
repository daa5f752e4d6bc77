package project

import (
	"path/filepath"
	"testing"

	"github.com/piwi3910/RoomForge/internal/catalog"
)

func TestSaveAndLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.json")

	var store TemplateStore
	store.Add(RoomTemplate{
		Name:        "Studio",
		Mood:        "neutral",
		ObjectNames: []string{"bed", "desk"},
	})

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates error: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}

	if len(loaded.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(loaded.Templates))
	}
	if loaded.Templates[0].Name != "Studio" {
		t.Errorf("expected 'Studio', got %q", loaded.Templates[0].Name)
	}
}

func TestLoadTemplates_MissingFileReturnsEmptyStore(t *testing.T) {
	loaded, err := LoadTemplates(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}
	if loaded.Templates == nil {
		t.Error("Templates should never be nil")
	}
	if len(loaded.Templates) != 0 {
		t.Errorf("expected empty store, got %d templates", len(loaded.Templates))
	}
}

func TestTemplateStore_AddReplacesSameName(t *testing.T) {
	var store TemplateStore
	store.Add(RoomTemplate{Name: "Studio", Mood: "warm"})
	store.Add(RoomTemplate{Name: "Studio", Mood: "cool"})

	if len(store.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(store.Templates))
	}
	if store.Templates[0].Mood != "cool" {
		t.Errorf("expected replacement to win, got mood %q", store.Templates[0].Mood)
	}
}

func TestBuiltInTemplates_AllResolve(t *testing.T) {
	lib := catalog.Default()

	for _, tmpl := range BuiltInTemplates() {
		scene, warnings := tmpl.Instantiate(lib)

		if len(warnings) != 0 {
			t.Errorf("template %q has unresolvable objects: %v", tmpl.Name, warnings)
		}
		if len(scene.Objects) != len(tmpl.ObjectNames) {
			t.Errorf("template %q resolved %d of %d objects", tmpl.Name, len(scene.Objects), len(tmpl.ObjectNames))
		}
		if scene.Name != tmpl.Name {
			t.Errorf("scene name %q does not match template %q", scene.Name, tmpl.Name)
		}
		if scene.Mood != tmpl.Mood {
			t.Errorf("scene mood %q does not match template %q", scene.Mood, tmpl.Mood)
		}
	}
}
