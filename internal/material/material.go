// Package material assigns PBR surface presets to scene objects by name
// and adjusts them for the scene mood.
package material

import (
	"strings"

	"github.com/piwi3910/RoomForge/internal/model"
)

// Preset binds an object-name substring to a material. Like the other
// name-matched tables, presets are scanned in declaration order and the
// first match wins.
type Preset struct {
	Match    string
	Variant  string // optional second substring refining the match
	Material model.Material
}

// Presets is the ordered preset table.
type Presets []Preset

// Default returns the built-in material presets for the common bedroom
// furniture set. Variant entries for an object kind come before the plain
// entry so they get a chance to match first.
func Default() Presets {
	return Presets{
		{Match: "bed", Variant: "white", Material: model.Material{
			Name: "white_bedding", Shader: "cloth",
			BaseColor: [3]float64{0.98, 0.98, 0.98}, Roughness: 0.9, Subsurface: 0.2,
			TextureMap: "/textures/fabric/cotton_white.png",
		}},
		{Match: "bed", Material: model.Material{
			Name: "bed_fabric", Shader: "cloth",
			BaseColor: [3]float64{0.95, 0.95, 0.95}, Roughness: 0.85, Subsurface: 0.15,
			TextureMap: "/textures/fabric/linen_diffuse.png",
		}},
		{Match: "desk", Variant: "wooden", Material: model.Material{
			Name: "oak_wood", Shader: "wood",
			BaseColor: [3]float64{0.6, 0.4, 0.25}, Roughness: 0.35,
			TextureMap: "/textures/wood/oak_grain.png",
		}},
		{Match: "desk", Material: model.Material{
			Name: "desk_wood", Shader: "wood",
			BaseColor: [3]float64{0.55, 0.35, 0.2}, Roughness: 0.4,
			TextureMap: "/textures/wood/oak_diffuse.png",
		}},
		{Match: "chair", Variant: "leather", Material: model.Material{
			Name: "leather_chair", Shader: "cloth",
			BaseColor: [3]float64{0.15, 0.1, 0.08}, Roughness: 0.6, Subsurface: 0.05,
			TextureMap: "/textures/leather/brown_leather.png",
		}},
		{Match: "chair", Material: model.Material{
			Name: "chair_wood", Shader: "wood",
			BaseColor: [3]float64{0.45, 0.3, 0.18}, Roughness: 0.5,
			TextureMap: "/textures/wood/walnut_diffuse.png",
		}},
		{Match: "lamp", Variant: "shade", Material: model.Material{
			Name: "lamp_shade", Shader: "cloth",
			BaseColor: [3]float64{0.95, 0.92, 0.85}, Roughness: 0.8, Subsurface: 0.3,
			TextureMap: "/textures/fabric/lamp_shade.png",
		}},
		{Match: "lamp", Material: model.Material{
			Name: "lamp_metal", Shader: "metal",
			BaseColor: [3]float64{0.8, 0.75, 0.65}, Roughness: 0.3, Metallic: 0.9,
			TextureMap: "/textures/metal/brushed_metal.png",
		}},
		{Match: "bookshelf", Material: model.Material{
			Name: "bookshelf_wood", Shader: "wood",
			BaseColor: [3]float64{0.4, 0.25, 0.15}, Roughness: 0.55,
			TextureMap: "/textures/wood/pine_diffuse.png",
		}},
		{Match: "plant", Material: model.Material{
			Name: "plant_leaves", Shader: "cloth",
			BaseColor: [3]float64{0.2, 0.45, 0.15}, Roughness: 0.7, Subsurface: 0.4,
			TextureMap: "/textures/nature/leaves_diffuse.png",
		}},
		{Match: "rug", Material: model.Material{
			Name: "rug_fabric", Shader: "cloth",
			BaseColor: [3]float64{0.6, 0.55, 0.5}, Roughness: 0.95, Subsurface: 0.1,
			TextureMap: "/textures/fabric/rug_pattern.png",
		}},
		{Match: "curtain", Material: model.Material{
			Name: "curtain_fabric", Shader: "cloth",
			BaseColor: [3]float64{0.9, 0.88, 0.82}, Roughness: 0.85, Subsurface: 0.25,
			TextureMap: "/textures/fabric/sheer_curtain.png",
		}},
		{Match: "books", Material: model.Material{
			Name: "book_covers", Shader: "plastic",
			BaseColor: [3]float64{0.3, 0.25, 0.4}, Roughness: 0.6,
			TextureMap: "/textures/misc/book_spines.png",
		}},
	}
}

// Select returns the material for an object name, mood-adjusted. Objects
// matching no preset get a neutral fallback so every object renders with
// something.
func (p Presets) Select(objectName, mood string) model.Material {
	lower := strings.ToLower(objectName)

	for _, preset := range p {
		if !strings.Contains(lower, preset.Match) {
			continue
		}
		if preset.Variant != "" && !strings.Contains(lower, preset.Variant) {
			continue
		}
		return adjustForMood(preset.Material, mood)
	}

	return model.Material{
		Name:       objectName + "_material",
		Shader:     "principled",
		BaseColor:  [3]float64{0.5, 0.5, 0.5},
		Roughness:  0.5,
		TextureMap: "/textures/generic/default_diffuse.png",
	}
}

// Assign fills Material on every object in place.
func (p Presets) Assign(objects []model.SceneObject, mood string) {
	for i := range objects {
		m := p.Select(objects[i].Name, mood)
		objects[i].Material = &m
	}
}

// adjustForMood tints and re-roughens a preset copy for the scene mood.
// Warm moods push red and matte, cool moods push blue and glossy,
// dramatic just sharpens the finish.
func adjustForMood(m model.Material, mood string) model.Material {
	lower := strings.ToLower(mood)

	switch {
	case strings.Contains(lower, "warm") || strings.Contains(lower, "cozy"):
		m.BaseColor[0] = clamp01(m.BaseColor[0] * 1.05)
		m.BaseColor[2] = m.BaseColor[2] * 0.95
		m.Roughness = clamp01(m.Roughness + 0.05)
	case strings.Contains(lower, "cool") || strings.Contains(lower, "modern"):
		m.BaseColor[0] = m.BaseColor[0] * 0.95
		m.BaseColor[2] = clamp01(m.BaseColor[2] * 1.05)
		m.Roughness = max(0, m.Roughness-0.1)
	case strings.Contains(lower, "dramatic"):
		m.Roughness = max(0.2, m.Roughness-0.15)
	}
	return m
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
