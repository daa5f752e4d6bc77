package export

import (
	"fmt"

	"github.com/piwi3910/RoomForge/internal/model"
	"github.com/piwi3910/RoomForge/internal/validate"
	"github.com/xuri/excelize/v2"
)

// ExportXLSX writes the object schedule as an Excel workbook: an Objects
// sheet with one row per object and a Summary sheet with run statistics.
func ExportXLSX(path string, scene model.Scene, report *validate.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	const objectsSheet = "Objects"
	if err := f.SetSheetName("Sheet1", objectsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []string{"Name", "Zone", "X (m)", "Y (m)", "Z (m)", "Yaw", "Width (m)", "Depth (m)", "Height (m)", "Material", "Fallback"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(objectsSheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(objectsSheet, "A1", "K1", headerStyle); err != nil {
		return err
	}

	for row, o := range scene.Objects {
		material := ""
		if o.Material != nil {
			material = o.Material.Name
		}
		values := []interface{}{
			o.Name, o.ZoneName,
			o.Position.X, o.Position.Y, o.Position.Z,
			o.Rotation.Z,
			o.Footprint.Width, o.Footprint.Depth, o.Footprint.Height,
			material, o.Degenerate,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(objectsSheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(objectsSheet, "A", "B", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(objectsSheet, "J", "J", 18); err != nil {
		return err
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to add summary sheet: %w", err)
	}

	degenerate, residual := 0, 0
	var diagnostics []string
	if scene.Result != nil {
		degenerate = scene.Result.DegenerateCount
		residual = scene.Result.ResidualOverlaps
		diagnostics = scene.Result.Diagnostics
	}

	summaryRows := [][2]interface{}{
		{"Scene", scene.Name},
		{"Mood", scene.Mood},
		{"Objects", len(scene.Objects)},
		{"Fallback placements", degenerate},
		{"Residual overlaps", residual},
		{"Min spacing (m)", scene.Settings.MinSpacing},
		{"Grid step (m)", scene.Settings.GridStep},
		{"Resolver passes", scene.Settings.ResolverPasses},
	}
	if report != nil {
		summaryRows = append(summaryRows,
			[2]interface{}{"Validation score", report.Score},
			[2]interface{}{"Validation passed", report.Passed},
		)
	}

	for i, kv := range summaryRows {
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+1), kv[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+1), kv[1]); err != nil {
			return err
		}
	}

	if len(diagnostics) > 0 {
		start := len(summaryRows) + 2
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", start), "Diagnostics"); err != nil {
			return err
		}
		if err := f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", start), fmt.Sprintf("A%d", start), headerStyle); err != nil {
			return err
		}
		for i, d := range diagnostics {
			if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", start+1+i), d); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(summarySheet, "A", "A", 24); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
