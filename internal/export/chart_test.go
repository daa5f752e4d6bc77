package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/RoomForge/internal/model"
)

func TestRenderFloorPlanChart(t *testing.T) {
	var buf bytes.Buffer

	scene := buildTestScene()
	if err := RenderFloorPlanChart(&buf, scene, model.DefaultRoom()); err != nil {
		t.Fatalf("RenderFloorPlanChart returned error: %v", err)
	}

	html := buf.String()
	for _, want := range []string{"Test Bedroom", "bed", "desk"} {
		if !strings.Contains(html, want) {
			t.Errorf("chart HTML missing %q", want)
		}
	}
}

func TestRenderFloorPlanChart_NoPlacedObjects(t *testing.T) {
	var buf bytes.Buffer

	err := RenderFloorPlanChart(&buf, model.NewScene(), model.DefaultRoom())
	if err == nil {
		t.Fatal("expected error for scene without placed objects, got nil")
	}
}

func TestExportChart_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.html")

	if err := ExportChart(path, buildTestScene(), model.DefaultRoom()); err != nil {
		t.Fatalf("ExportChart returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("chart file is empty")
	}
}
