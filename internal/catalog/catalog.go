// Package catalog resolves free-text object names into scene objects with
// concrete footprints, using a built-in asset library. In production the
// library would front a real asset database; the built-in table covers the
// common bedroom/office furniture set.
package catalog

import (
	"fmt"
	"strings"

	"github.com/piwi3910/RoomForge/internal/model"
)

// Asset describes one library entry: a mesh path and its bounding
// footprint in meters.
type Asset struct {
	Variant   string          `json:"variant"`
	Path      string          `json:"path"`
	Polygons  int             `json:"polygons"`
	Footprint model.Footprint `json:"footprint"`
}

// Category groups the variants of one object kind. The last variant is the
// category default used when no specific variant name matches.
type Category struct {
	Name     string  `json:"name"`
	Variants []Asset `json:"variants"`
}

// Library is an ordered list of categories. Lookup scans in declaration
// order and the first category whose name is a substring of the object
// name wins, so order is part of the committed configuration.
type Library []Category

// Default returns the built-in asset library.
func Default() Library {
	return Library{
		{Name: "bed", Variants: []Asset{
			{Variant: "white bed", Path: "/library/furniture/beds/white_modern_bed.glb", Polygons: 25000, Footprint: model.Footprint{Width: 2.0, Depth: 1.8, Height: 0.9}},
			{Variant: "wooden bed", Path: "/library/furniture/beds/oak_frame_bed.glb", Polygons: 18000, Footprint: model.Footprint{Width: 2.0, Depth: 1.6, Height: 1.0}},
			{Variant: "", Path: "/library/furniture/beds/standard_bed.glb", Polygons: 20000, Footprint: model.Footprint{Width: 2.0, Depth: 1.6, Height: 0.8}},
		}},
		{Name: "desk", Variants: []Asset{
			{Variant: "wooden desk", Path: "/library/furniture/desks/oak_desk.glb", Polygons: 12000, Footprint: model.Footprint{Width: 1.4, Depth: 0.7, Height: 0.75}},
			{Variant: "modern desk", Path: "/library/furniture/desks/modern_white_desk.glb", Polygons: 8000, Footprint: model.Footprint{Width: 1.2, Depth: 0.6, Height: 0.75}},
			{Variant: "", Path: "/library/furniture/desks/standard_desk.glb", Polygons: 10000, Footprint: model.Footprint{Width: 1.2, Depth: 0.6, Height: 0.75}},
		}},
		{Name: "chair", Variants: []Asset{
			{Variant: "office chair", Path: "/library/furniture/chairs/office_chair.glb", Polygons: 15000, Footprint: model.Footprint{Width: 0.6, Depth: 0.6, Height: 1.1}},
			{Variant: "wooden chair", Path: "/library/furniture/chairs/wooden_chair.glb", Polygons: 8000, Footprint: model.Footprint{Width: 0.5, Depth: 0.5, Height: 0.9}},
			{Variant: "", Path: "/library/furniture/chairs/standard_chair.glb", Polygons: 10000, Footprint: model.Footprint{Width: 0.5, Depth: 0.5, Height: 0.9}},
		}},
		{Name: "lamp", Variants: []Asset{
			{Variant: "desk lamp", Path: "/library/lighting/lamps/desk_lamp.glb", Polygons: 5000, Footprint: model.Footprint{Width: 0.2, Depth: 0.2, Height: 0.45}},
			{Variant: "floor lamp", Path: "/library/lighting/lamps/floor_lamp.glb", Polygons: 8000, Footprint: model.Footprint{Width: 0.4, Depth: 0.4, Height: 1.6}},
			{Variant: "", Path: "/library/lighting/lamps/standard_lamp.glb", Polygons: 5000, Footprint: model.Footprint{Width: 0.25, Depth: 0.25, Height: 0.5}},
		}},
		{Name: "bookshelf", Variants: []Asset{
			{Variant: "tall bookshelf", Path: "/library/furniture/storage/tall_bookshelf.glb", Polygons: 20000, Footprint: model.Footprint{Width: 1.0, Depth: 0.35, Height: 2.0}},
			{Variant: "", Path: "/library/furniture/storage/bookshelf.glb", Polygons: 15000, Footprint: model.Footprint{Width: 0.8, Depth: 0.3, Height: 1.8}},
		}},
		{Name: "plant", Variants: []Asset{
			{Variant: "potted plant", Path: "/library/decor/plants/potted_plant.glb", Polygons: 30000, Footprint: model.Footprint{Width: 0.4, Depth: 0.4, Height: 0.6}},
			{Variant: "large plant", Path: "/library/decor/plants/large_indoor_plant.glb", Polygons: 45000, Footprint: model.Footprint{Width: 0.8, Depth: 0.8, Height: 1.5}},
			{Variant: "", Path: "/library/decor/plants/generic_plant.glb", Polygons: 25000, Footprint: model.Footprint{Width: 0.3, Depth: 0.3, Height: 0.5}},
		}},
		{Name: "rug", Variants: []Asset{
			{Variant: "area rug", Path: "/library/decor/rugs/area_rug.glb", Polygons: 2000, Footprint: model.Footprint{Width: 2.5, Depth: 2.0, Height: 0.02}},
			{Variant: "", Path: "/library/decor/rugs/standard_rug.glb", Polygons: 1500, Footprint: model.Footprint{Width: 2.0, Depth: 1.5, Height: 0.02}},
		}},
		{Name: "window", Variants: []Asset{
			{Variant: "large window", Path: "/library/architecture/windows/large_window.glb", Polygons: 5000, Footprint: model.Footprint{Width: 1.5, Depth: 0.1, Height: 2.0}},
			{Variant: "", Path: "/library/architecture/windows/standard_window.glb", Polygons: 3000, Footprint: model.Footprint{Width: 1.0, Depth: 0.1, Height: 1.2}},
		}},
		{Name: "curtain", Variants: []Asset{
			{Variant: "flowing curtain", Path: "/library/decor/curtains/flowing_curtain.glb", Polygons: 35000, Footprint: model.Footprint{Width: 2.0, Depth: 0.3, Height: 2.5}},
			{Variant: "", Path: "/library/decor/curtains/standard_curtain.glb", Polygons: 20000, Footprint: model.Footprint{Width: 1.5, Depth: 0.2, Height: 2.2}},
		}},
		{Name: "table", Variants: []Asset{
			{Variant: "coffee table", Path: "/library/furniture/tables/coffee_table.glb", Polygons: 9000, Footprint: model.Footprint{Width: 1.0, Depth: 0.6, Height: 0.45}},
			{Variant: "", Path: "/library/furniture/tables/side_table.glb", Polygons: 7000, Footprint: model.Footprint{Width: 0.6, Depth: 0.6, Height: 0.55}},
		}},
		{Name: "books", Variants: []Asset{
			{Variant: "book stack", Path: "/library/decor/books/book_stack.glb", Polygons: 8000, Footprint: model.Footprint{Width: 0.3, Depth: 0.2, Height: 0.25}},
			{Variant: "", Path: "/library/decor/books/books_set.glb", Polygons: 6000, Footprint: model.Footprint{Width: 0.25, Depth: 0.15, Height: 0.2}},
		}},
	}
}

// Lookup finds the asset for an object name: the first category whose name
// occurs in the lower-cased object name wins, then the first variant whose
// full name occurs in it; otherwise the category default (last variant).
// The boolean reports whether any category matched at all.
func (l Library) Lookup(objectName string) (Asset, bool) {
	lower := strings.ToLower(objectName)

	for _, cat := range l {
		if !strings.Contains(lower, cat.Name) {
			continue
		}
		for _, v := range cat.Variants {
			if v.Variant != "" && strings.Contains(lower, v.Variant) {
				return v, true
			}
		}
		return cat.Variants[len(cat.Variants)-1], true
	}
	return Asset{}, false
}

// Resolve turns a list of object names into unplaced scene objects. Names
// with no library match are skipped and reported in the warnings slice;
// resolution itself never fails.
func (l Library) Resolve(names []string) ([]model.SceneObject, []string) {
	var objects []model.SceneObject
	var warnings []string

	for _, name := range names {
		asset, ok := l.Lookup(name)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("no asset found for %q, skipping", name))
			continue
		}
		objects = append(objects, model.NewSceneObject(name, asset.Footprint))
	}
	return objects, warnings
}
