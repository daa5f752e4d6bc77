// Package export renders finished layouts to shareable formats: a PDF
// floor plan, QR-coded object labels, a DXF drawing, an Excel schedule,
// and an interactive HTML chart.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/RoomForge/internal/model"
	"github.com/piwi3910/RoomForge/internal/validate"
)

// objectColor represents an RGB color for a drawn object.
type objectColor struct {
	R, G, B int
}

var objectColors = []objectColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document for a laid-out scene: a top-down
// floor plan page followed by a summary page. A validation report is
// optional and adds a score section to the summary.
func ExportPDF(path string, scene model.Scene, room model.Room, report *validate.Report) error {
	if len(scene.Objects) == 0 {
		return fmt.Errorf("no objects to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderFloorPlanPage(pdf, scene, room)

	pdf.AddPage()
	renderSummaryPage(pdf, scene, report)

	return pdf.OutputFileAndClose(path)
}

// renderFloorPlanPage draws the top-down room view on the current page.
// Room +Y points to the top of the page.
func renderFloorPlanPage(pdf *fpdf.Fpdf, scene model.Scene, room model.Room) {
	b := room.Bounds
	roomW := b.Max.X - b.Min.X
	roomD := b.Max.Y - b.Min.Y

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Floor Plan: %s (%.1f x %.1f m)", scene.Name, roomW, roomD)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	placed, degenerate := 0, 0
	for _, o := range scene.Objects {
		if o.Placed {
			placed++
		}
		if o.Degenerate {
			degenerate++
		}
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Objects: %d | Placed: %d | Fallback placements: %d | Mood: %s",
		len(scene.Objects), placed, degenerate, scene.Mood)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Calculate drawing area and scale
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scale := math.Min(drawWidth/roomW, drawHeight/roomD)
	canvasW := roomW * scale
	canvasH := roomD * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Room background
	pdf.SetFillColor(245, 240, 230)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Draw objects
	for i, o := range scene.Objects {
		if !o.Placed {
			continue
		}
		col := objectColors[i%len(objectColors)]
		ow := o.Footprint.Width * scale
		od := o.Footprint.Depth * scale
		ox := offsetX + (o.Position.X-o.Footprint.Width/2-b.Min.X)*scale
		oy := offsetY + (b.Max.Y-o.Position.Y-o.Footprint.Depth/2)*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		if o.Degenerate {
			pdf.SetDrawColor(200, 0, 0)
			pdf.SetLineWidth(0.6)
		} else {
			pdf.SetDrawColor(30, 30, 30)
			pdf.SetLineWidth(0.3)
		}
		pdf.Rect(ox, oy, ow, od, "FD")

		// Object label (only if rectangle is large enough)
		if ow > 15 && od > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(ow, od))
			pdf.SetTextColor(0, 0, 0)

			label := o.Name
			dims := fmt.Sprintf("%.1fx%.1f", o.Footprint.Width, o.Footprint.Depth)

			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < ow-2 {
				pdf.SetXY(ox+(ow-labelW)/2, oy+od/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if od > 14 && dimsW < ow-2 {
				pdf.SetXY(ox+(ow-dimsW)/2, oy+od/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, roomW, roomD, offsetX, offsetY, canvasW, canvasH)
	drawObjectLegend(pdf, scene.Objects, offsetY+canvasH+5)
}

// drawDimensionAnnotations adds width and depth labels outside the room rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, roomW, roomD, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.1f m", roomW)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	depthLabel := fmt.Sprintf("%.1f m", roomD)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	dLabelW := pdf.GetStringWidth(depthLabel)
	pdf.SetXY(offsetX-3-dLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(dLabelW, 4, depthLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawObjectLegend renders a compact legend of placed objects below the plan.
func drawObjectLegend(pdf *fpdf.Fpdf, objects []model.SceneObject, startY float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Objects placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, o := range objects {
		if !o.Placed {
			continue
		}
		col := objectColors[i%len(objectColors)]
		label := fmt.Sprintf("%s (%.1fx%.1f)", o.Name, o.Footprint.Width, o.Footprint.Depth)
		if o.Degenerate {
			label += " !"
		}
		labelW := pdf.GetStringWidth(label) + 6

		// Wrap to next line if needed
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final page with statistics and the object table.
func renderSummaryPage(pdf *fpdf.Fpdf, scene model.Scene, report *validate.Report) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Layout Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	degenerate, residual := 0, 0
	var diagnostics []string
	if scene.Result != nil {
		degenerate = scene.Result.DegenerateCount
		residual = scene.Result.ResidualOverlaps
		diagnostics = scene.Result.Diagnostics
	}

	summaryItems := []struct {
		label string
		value string
	}{
		{"Objects", fmt.Sprintf("%d", len(scene.Objects))},
		{"Fallback Placements", fmt.Sprintf("%d", degenerate)},
		{"Residual Overlaps", fmt.Sprintf("%d", residual)},
	}
	if report != nil {
		status := "FAILED"
		if report.Passed {
			status = "PASSED"
		}
		summaryItems = append(summaryItems, struct {
			label string
			value string
		}{"Validation Score", fmt.Sprintf("%d/100 (%s)", report.Score, status)})
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Object breakdown table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Object Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{55, 40, 50, 45, 30, 35}
	headers := []string{"Object", "Zone", "Position (m)", "Size (m)", "Yaw", "Material"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, o := range scene.Objects {
		material := ""
		if o.Material != nil {
			material = o.Material.Name
		}
		xPos = marginLeft
		rowData := []string{
			o.Name,
			o.ZoneName,
			fmt.Sprintf("(%.2f, %.2f, %.2f)", o.Position.X, o.Position.Y, o.Position.Z),
			fmt.Sprintf("%.1f x %.1f x %.1f", o.Footprint.Width, o.Footprint.Depth, o.Footprint.Height),
			fmt.Sprintf("%.0f\xb0", o.Rotation.Z),
			material,
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Diagnostics
	if len(diagnostics) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "Diagnostics", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, d := range diagnostics {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(260, 5, "- "+d, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	// Layout settings
	y += 8
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Layout Settings", "", 0, "L", false, 0, "")
	y += 9

	settingsItems := []struct {
		label string
		value string
	}{
		{"Min Spacing", fmt.Sprintf("%.2f m", scene.Settings.MinSpacing)},
		{"Grid Step", fmt.Sprintf("%.2f m", scene.Settings.GridStep)},
		{"Spiral Max Radius", fmt.Sprintf("%.1f m", scene.Settings.SpiralMaxRadius)},
		{"Resolver Passes", fmt.Sprintf("%d", scene.Settings.ResolverPasses)},
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range settingsItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by RoomForge - Room Layout Engine", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
