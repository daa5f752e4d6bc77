package export

import (
	"fmt"

	"github.com/piwi3910/RoomForge/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

// DXF layer names.
const (
	layerRoom      = "ROOM"
	layerFurniture = "FURNITURE"
	layerLabels    = "LABELS"
)

// dxfTextHeight is the label text height in drawing units (meters).
const dxfTextHeight = 0.15

// ExportDXF writes a top-down DXF drawing of the layout: the room outline
// on its own layer, one rectangle per placed object, and a text label at
// each object's center. Units are meters, matching scene coordinates.
func ExportDXF(path string, objects []model.SceneObject, room model.Room) error {
	d := dxf.NewDrawing()

	if _, err := d.AddLayer(layerRoom, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add room layer: %w", err)
	}
	b := room.Bounds
	if err := drawRect(d, b.Min.X, b.Min.Y, b.Max.X, b.Max.Y); err != nil {
		return fmt.Errorf("failed to draw room outline: %w", err)
	}

	if _, err := d.AddLayer(layerFurniture, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add furniture layer: %w", err)
	}
	for _, o := range objects {
		if !o.Placed {
			continue
		}
		ob := o.Bounds()
		if err := drawRect(d, ob.Min.X, ob.Min.Y, ob.Max.X, ob.Max.Y); err != nil {
			return fmt.Errorf("failed to draw object %q: %w", o.Name, err)
		}
	}

	if _, err := d.AddLayer(layerLabels, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add label layer: %w", err)
	}
	for _, o := range objects {
		if !o.Placed {
			continue
		}
		if _, err := d.Text(o.Name, o.Position.X, o.Position.Y, 0, dxfTextHeight); err != nil {
			return fmt.Errorf("failed to label object %q: %w", o.Name, err)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF file: %w", err)
	}
	return nil
}

// drawRect draws an axis-aligned rectangle as four lines on the current layer.
func drawRect(d *drawing.Drawing, minX, minY, maxX, maxY float64) error {
	lines := [4][4]float64{
		{minX, minY, maxX, minY},
		{maxX, minY, maxX, maxY},
		{maxX, maxY, minX, maxY},
		{minX, maxY, minX, minY},
	}
	for _, l := range lines {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return err
		}
	}
	return nil
}
