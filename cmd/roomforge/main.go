// RoomForge — 3D room layout engine
//
// Places furniture in a room from an object list, a manifest file, or a
// built-in template, resolves collisions, and exports the result as a
// scene file, PDF floor plan, QR labels, DXF drawing, Excel schedule, or
// interactive HTML chart.
//
// Build:
//   go build -o roomforge ./cmd/roomforge
//
// Examples:
//   roomforge -objects "bed,desk,chair,lamp" -mood warm -pdf plan.pdf
//   roomforge -import furniture.csv -xlsx schedule.xlsx -save bedroom.json
//   roomforge -template "Cozy Bedroom" -html plan.html
//   roomforge -objects "desk,chair,plant" -save-template "My Office"
//   roomforge -backup roomforge-backup.json
//   roomforge -list-templates

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/RoomForge/internal/catalog"
	"github.com/piwi3910/RoomForge/internal/engine"
	"github.com/piwi3910/RoomForge/internal/export"
	"github.com/piwi3910/RoomForge/internal/importer"
	"github.com/piwi3910/RoomForge/internal/lighting"
	"github.com/piwi3910/RoomForge/internal/material"
	"github.com/piwi3910/RoomForge/internal/model"
	"github.com/piwi3910/RoomForge/internal/project"
	"github.com/piwi3910/RoomForge/internal/validate"
)

func main() {
	var (
		objectsFlag   = flag.String("objects", "", "comma-separated object names to place (resolved via the asset catalog)")
		importFlag    = flag.String("import", "", "import objects from a CSV or XLSX manifest")
		templateFlag  = flag.String("template", "", "start from a built-in or user template")
		sceneFlag     = flag.String("scene", "", "load a previously saved scene file")
		listTemplates = flag.Bool("list-templates", false, "list built-in and user templates and exit")

		nameFlag    = flag.String("name", "", "scene name")
		moodFlag    = flag.String("mood", "", "scene mood (warm, cool, dramatic, soft, cozy, neutral)")
		spacingFlag = flag.Float64("spacing", 0, "minimum spacing between objects in meters (0 = default)")
		gridFlag    = flag.Float64("grid", 0, "grid search step in meters (0 = default)")
		passesFlag  = flag.Int("passes", 0, "clipping resolver passes (0 = default)")

		savePath     = flag.String("save", "", "save the laid-out scene as JSON")
		saveTemplate = flag.String("save-template", "", "save the scene's object list as a user template with this name")
		pdfPath      = flag.String("pdf", "", "export a PDF floor plan")
		labelsPath   = flag.String("labels", "", "export QR-coded object labels as PDF")
		dxfPath      = flag.String("dxf", "", "export a DXF drawing")
		xlsxPath     = flag.String("xlsx", "", "export an Excel object schedule")
		htmlPath     = flag.String("html", "", "export an interactive HTML floor plan")

		backupPath  = flag.String("backup", "", "write config and user templates to a backup file and exit")
		restorePath = flag.String("restore", "", "restore config and user templates from a backup file and exit")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("roomforge: ")

	if *listTemplates {
		for _, t := range allTemplates() {
			fmt.Printf("%-16s %s (%s)\n", t.Name, t.Description, strings.Join(t.ObjectNames, ", "))
		}
		return
	}

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		log.Printf("warning: could not load config: %v", err)
		config = model.DefaultAppConfig()
	}

	if *backupPath != "" {
		if err := runBackup(*backupPath, config); err != nil {
			log.Fatalf("backup: %v", err)
		}
		log.Printf("backup written to %s", *backupPath)
		return
	}
	if *restorePath != "" {
		if err := runRestore(*restorePath); err != nil {
			log.Fatalf("restore: %v", err)
		}
		log.Printf("config and templates restored from %s", *restorePath)
		return
	}

	scene, err := buildScene(*objectsFlag, *importFlag, *templateFlag, *sceneFlag, config)
	if err != nil {
		log.Fatal(err)
	}
	if *nameFlag != "" {
		scene.Name = *nameFlag
	}
	if *moodFlag != "" {
		scene.Mood = *moodFlag
	}
	if scene.Mood == "" {
		scene.Mood = config.DefaultMood
	}
	if *spacingFlag > 0 {
		scene.Settings.MinSpacing = *spacingFlag
	}
	if *gridFlag > 0 {
		scene.Settings.GridStep = *gridFlag
	}
	if *passesFlag > 0 {
		scene.Settings.ResolverPasses = *passesFlag
	}

	if len(scene.Objects) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// Layout
	layouter := engine.New(scene.Settings)
	result := layouter.Layout(scene.Objects)
	scene.Objects = result.Objects
	scene.Result = &result

	// Materials, lighting and camera
	material.Default().Assign(scene.Objects, scene.Mood)
	rig := lighting.Default().ForMood(scene.Mood)
	camera := lighting.FrameScene(scene.Objects, scene.Mood)

	// Validation
	report := validate.Check(scene.Objects, layouter.Room, &rig)

	printSummary(scene, result, report, camera)

	if *saveTemplate != "" {
		if err := saveUserTemplate(*saveTemplate, scene); err != nil {
			log.Fatalf("save template: %v", err)
		}
		log.Printf("template %q saved", *saveTemplate)
	}

	// Exports
	if *savePath != "" {
		doc := project.SceneDocument{Scene: scene, Lighting: &rig, Camera: &camera}
		if err := project.SaveScene(*savePath, doc); err != nil {
			log.Fatalf("save scene: %v", err)
		}
		project.AddRecentScene(&config, *savePath)
		if err := project.SaveAppConfig(project.DefaultConfigPath(), config); err != nil {
			log.Printf("warning: could not save config: %v", err)
		}
		log.Printf("scene saved to %s", *savePath)
	}
	if *pdfPath != "" {
		path := resolveExportPath(config, *pdfPath)
		if err := export.ExportPDF(path, scene, layouter.Room, &report); err != nil {
			log.Fatalf("export pdf: %v", err)
		}
		log.Printf("floor plan written to %s", path)
	}
	if *labelsPath != "" {
		path := resolveExportPath(config, *labelsPath)
		if err := export.ExportLabels(path, scene.Objects); err != nil {
			log.Fatalf("export labels: %v", err)
		}
		log.Printf("labels written to %s", path)
	}
	if *dxfPath != "" {
		path := resolveExportPath(config, *dxfPath)
		if err := export.ExportDXF(path, scene.Objects, layouter.Room); err != nil {
			log.Fatalf("export dxf: %v", err)
		}
		log.Printf("drawing written to %s", path)
	}
	if *xlsxPath != "" {
		path := resolveExportPath(config, *xlsxPath)
		if err := export.ExportXLSX(path, scene, &report); err != nil {
			log.Fatalf("export xlsx: %v", err)
		}
		log.Printf("schedule written to %s", path)
	}
	if *htmlPath != "" {
		path := resolveExportPath(config, *htmlPath)
		if err := export.ExportChart(path, scene, layouter.Room); err != nil {
			log.Fatalf("export html: %v", err)
		}
		log.Printf("chart written to %s", path)
	}

	if !report.Passed {
		os.Exit(1)
	}
}

// buildScene assembles the input scene from exactly one source flag.
func buildScene(objects, importPath, template, scenePath string, config model.AppConfig) (model.Scene, error) {
	sources := 0
	for _, s := range []string{objects, importPath, template, scenePath} {
		if s != "" {
			sources++
		}
	}
	if sources > 1 {
		return model.Scene{}, fmt.Errorf("use only one of -objects, -import, -template, -scene")
	}

	switch {
	case scenePath != "":
		doc, err := project.LoadScene(scenePath)
		if err != nil {
			return model.Scene{}, err
		}
		return doc.Scene, nil

	case template != "":
		t, ok := findTemplate(allTemplates(), template)
		if !ok {
			return model.Scene{}, fmt.Errorf("unknown template %q (use -list-templates)", template)
		}
		scene, warnings := t.Instantiate(catalog.Default())
		logWarnings(warnings)
		config.ApplyToSettings(&scene.Settings)
		return scene, nil

	case importPath != "":
		var result importer.ImportResult
		if strings.HasSuffix(strings.ToLower(importPath), ".xlsx") {
			result = importer.ImportExcel(importPath)
		} else {
			result = importer.ImportCSV(importPath)
		}
		logWarnings(result.Warnings)
		for _, e := range result.Errors {
			log.Printf("error: %s", e)
		}
		if len(result.Objects) == 0 {
			return model.Scene{}, fmt.Errorf("no objects imported from %s", importPath)
		}
		scene := model.NewScene()
		scene.Objects = result.Objects
		config.ApplyToSettings(&scene.Settings)
		return scene, nil

	default:
		var names []string
		for _, n := range strings.Split(objects, ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
		resolved, warnings := catalog.Default().Resolve(names)
		logWarnings(warnings)
		scene := model.NewScene()
		scene.Objects = resolved
		config.ApplyToSettings(&scene.Settings)
		return scene, nil
	}
}

// allTemplates returns the built-in templates followed by any user-saved
// ones. A missing user store is normal; a broken one is reported but does
// not block the built-ins.
func allTemplates() []project.RoomTemplate {
	templates := project.BuiltInTemplates()

	path, err := project.DefaultTemplatePath()
	if err != nil {
		return templates
	}
	store, err := project.LoadTemplates(path)
	if err != nil {
		log.Printf("warning: could not load user templates: %v", err)
		return templates
	}
	return append(templates, store.Templates...)
}

// findTemplate matches a template by name, case-insensitively.
func findTemplate(templates []project.RoomTemplate, name string) (project.RoomTemplate, bool) {
	for _, t := range templates {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return project.RoomTemplate{}, false
}

// saveUserTemplate stores the scene's object list and mood as a reusable
// template in the user store, replacing any template of the same name.
func saveUserTemplate(name string, scene model.Scene) error {
	path, err := project.DefaultTemplatePath()
	if err != nil {
		return err
	}
	store, err := project.LoadTemplates(path)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(scene.Objects))
	for _, o := range scene.Objects {
		names = append(names, o.Name)
	}
	store.Add(project.RoomTemplate{
		Name:        name,
		Description: "User template",
		Mood:        scene.Mood,
		ObjectNames: names,
	})
	return project.SaveTemplates(path, store)
}

func runBackup(path string, config model.AppConfig) error {
	templatePath, err := project.DefaultTemplatePath()
	if err != nil {
		return err
	}
	templates, err := project.LoadTemplates(templatePath)
	if err != nil {
		return err
	}
	return project.ExportAllData(path, config, templates)
}

func runRestore(path string) error {
	backup, err := project.ImportAllData(path)
	if err != nil {
		return err
	}
	if err := project.SaveAppConfig(project.DefaultConfigPath(), backup.Config); err != nil {
		return err
	}
	templatePath, err := project.DefaultTemplatePath()
	if err != nil {
		return err
	}
	return project.SaveTemplates(templatePath, backup.Templates)
}

// resolveExportPath prefixes relative export paths with the configured
// export directory. Absolute paths and an unset ExportDir pass through.
func resolveExportPath(config model.AppConfig, path string) string {
	if config.ExportDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(config.ExportDir, path)
}

func logWarnings(warnings []string) {
	for _, w := range warnings {
		log.Printf("warning: %s", w)
	}
}

func printSummary(scene model.Scene, result model.LayoutResult, report validate.Report, camera lighting.Camera) {
	fmt.Printf("Scene: %s (mood: %s)\n", scene.Name, scene.Mood)
	fmt.Printf("Placed %d objects, %d fallback placements, %d residual overlaps\n",
		len(result.Objects), result.DegenerateCount, result.ResidualOverlaps)

	for _, o := range result.Objects {
		marker := " "
		if o.Degenerate {
			marker = "!"
		}
		fmt.Printf("  %s %-20s %-14s (%6.2f, %6.2f, %5.2f)  yaw %3.0f\n",
			marker, o.Name, o.ZoneName, o.Position.X, o.Position.Y, o.Position.Z, o.Rotation.Z)
	}

	for _, d := range result.Diagnostics {
		log.Printf("diagnostic: %s", d)
	}

	fmt.Printf("Camera: (%.2f, %.2f, %.2f) looking at (%.2f, %.2f, %.2f), %.0fmm f/%.1f\n",
		camera.Position.X, camera.Position.Y, camera.Position.Z,
		camera.Target.X, camera.Target.Y, camera.Target.Z,
		camera.FocalLength, camera.Aperture)

	status := "PASSED"
	if !report.Passed {
		status = "FAILED"
	}
	fmt.Printf("Validation: %d/100 (%s)\n", report.Score, status)
	for _, issue := range report.Issues {
		fmt.Printf("  [%s] %s\n", issue.Severity, issue.Description)
	}
}
