package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/RoomForge/internal/lighting"
	"github.com/piwi3910/RoomForge/internal/model"
)

func TestSaveAndLoadScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenes", "bedroom.json")

	scene := model.NewScene()
	scene.Name = "Bedroom"
	scene.Mood = "warm"
	scene.Objects = []model.SceneObject{
		model.NewSceneObject("bed", model.Footprint{Width: 2, Depth: 1.6, Height: 0.8}),
	}
	scene.Objects[0].Position = model.Vector3{X: -1.5, Y: 1.5}
	scene.Objects[0].Placed = true

	if err := SaveScene(path, SceneDocument{Scene: scene}); err != nil {
		t.Fatalf("SaveScene error: %v", err)
	}

	loaded, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene error: %v", err)
	}
	if loaded.Name != "Bedroom" {
		t.Errorf("expected name 'Bedroom', got %q", loaded.Name)
	}
	if len(loaded.Objects) != 1 {
		t.Fatalf("expected 1 object, got %d", len(loaded.Objects))
	}
	if loaded.Objects[0].Position.X != -1.5 {
		t.Errorf("expected position X -1.5, got %v", loaded.Objects[0].Position.X)
	}
	if !loaded.Objects[0].Placed {
		t.Error("expected object to stay placed after round trip")
	}
	if loaded.Settings.MinSpacing != model.DefaultSettings().MinSpacing {
		t.Errorf("settings lost in round trip")
	}
	if loaded.Lighting != nil || loaded.Camera != nil {
		t.Error("render blocks should stay absent when not written")
	}
}

func TestSaveAndLoadScene_RenderBlocks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")

	scene := model.NewScene()
	scene.Mood = "cozy"
	rig := lighting.Default().ForMood(scene.Mood)
	camera := lighting.FrameScene(nil, scene.Mood)

	doc := SceneDocument{Scene: scene, Lighting: &rig, Camera: &camera}
	if err := SaveScene(path, doc); err != nil {
		t.Fatalf("SaveScene error: %v", err)
	}

	loaded, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene error: %v", err)
	}
	if loaded.Lighting == nil {
		t.Fatal("lighting block lost in round trip")
	}
	if len(loaded.Lighting.Lights) != len(rig.Lights) {
		t.Errorf("expected %d lights, got %d", len(rig.Lights), len(loaded.Lighting.Lights))
	}
	if loaded.Lighting.HDRI != rig.HDRI {
		t.Errorf("expected HDRI %q, got %q", rig.HDRI, loaded.Lighting.HDRI)
	}
	if loaded.Camera == nil {
		t.Fatal("camera block lost in round trip")
	}
	if loaded.Camera.FocalLength != camera.FocalLength {
		t.Errorf("expected focal length %v, got %v", camera.FocalLength, loaded.Camera.FocalLength)
	}
	if loaded.Camera.Position.Z != 1.6 {
		t.Errorf("expected eye-level camera, got Z %v", loaded.Camera.Position.Z)
	}
}

func TestLoadScene_MissingFile(t *testing.T) {
	if _, err := LoadScene(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadScene_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte("nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScene(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadScene_NilObjectsBecomesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(`{"name":"Empty"}`), 0644); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene error: %v", err)
	}
	if loaded.Objects == nil {
		t.Error("Objects should never be nil")
	}
}
