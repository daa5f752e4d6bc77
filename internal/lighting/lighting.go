// Package lighting derives a light rig and camera from the scene mood and
// the placed objects. The rig is advisory output for the renderer, it does
// not feed back into placement.
package lighting

import (
	"math"
	"strings"

	"github.com/piwi3910/RoomForge/internal/model"
)

// Light is one physical light in the rig.
type Light struct {
	Name      string        `json:"name"`
	Type      string        `json:"type"` // sun, area, spot or point
	Position  model.Vector3 `json:"position"`
	Rotation  model.Vector3 `json:"rotation"` // Euler degrees
	ColorTemp float64       `json:"color_temp"`
	Intensity float64       `json:"intensity"`
	Angle     float64       `json:"angle"`
	Size      float64       `json:"size"`
}

// Setup is the complete rig for one scene.
type Setup struct {
	Lights   []Light `json:"lights"`
	HDRI     string  `json:"hdri,omitempty"`
	Exposure float64 `json:"exposure"`
	Ambient  float64 `json:"ambient"`
}

// Camera frames the scene at roughly eye level, pulled back far enough to
// cover the furthest object.
type Camera struct {
	Position     model.Vector3 `json:"position"`
	Target       model.Vector3 `json:"target"`
	FocalLength  float64       `json:"focal_length"` // mm
	Aperture     float64       `json:"aperture"`     // f-stop
	DepthOfField bool          `json:"depth_of_field"`
	FocusDist    float64       `json:"focus_distance"`
}

// LightSpec is the preset half of a light, before it gets a position.
type LightSpec struct {
	Type      string
	Angle     float64
	ColorTemp float64
	Intensity float64
	Size      float64
}

// Preset binds mood keywords to a key/fill pair.
type Preset struct {
	Name     string
	Keywords []string
	Key      LightSpec
	Fill     *LightSpec
	HDRI     string
	Exposure float64
}

// Presets is the ordered preset table. Like the zone and material tables it
// is scanned in declaration order and the first preset with any matching
// keyword wins; the last entry has no keywords and acts as the neutral
// default.
type Presets []Preset

// Default returns the built-in mood presets. Each call builds a fresh
// table, so callers own what they get back.
func Default() Presets {
	return Presets{
		{
			Name: "warm_morning", Keywords: []string{"warm", "morning"},
			Key:      LightSpec{Type: "sun", Angle: 20, ColorTemp: 3500, Intensity: 3.0, Size: 1},
			Fill:     &LightSpec{Type: "area", Angle: 45, ColorTemp: 4500, Intensity: 0.5, Size: 1},
			HDRI:     "/hdri/morning_interior.hdr",
			Exposure: 1.0,
		},
		{
			Name: "cool_evening", Keywords: []string{"cool", "evening"},
			Key:      LightSpec{Type: "sun", Angle: 15, ColorTemp: 6500, Intensity: 1.5, Size: 1},
			Fill:     &LightSpec{Type: "area", Angle: 45, ColorTemp: 7000, Intensity: 0.3, Size: 1},
			HDRI:     "/hdri/evening_blue.hdr",
			Exposure: 0.8,
		},
		{
			Name: "dramatic", Keywords: []string{"dramatic"},
			Key:      LightSpec{Type: "spot", Angle: 45, ColorTemp: 4000, Intensity: 5.0, Size: 1},
			HDRI:     "/hdri/studio_dark.hdr",
			Exposure: 1.2,
		},
		{
			Name: "soft_diffuse", Keywords: []string{"soft", "diffuse"},
			Key:      LightSpec{Type: "area", Angle: 45, ColorTemp: 5500, Intensity: 2.0, Size: 3},
			Fill:     &LightSpec{Type: "area", Angle: 45, ColorTemp: 5500, Intensity: 1.0, Size: 2},
			HDRI:     "/hdri/overcast_soft.hdr",
			Exposure: 1.0,
		},
		{
			Name: "cozy", Keywords: []string{"cozy"},
			Key:      LightSpec{Type: "area", Angle: 30, ColorTemp: 3200, Intensity: 2.5, Size: 1},
			Fill:     &LightSpec{Type: "point", Angle: 45, ColorTemp: 2800, Intensity: 0.8, Size: 1},
			HDRI:     "/hdri/cozy_interior.hdr",
			Exposure: 0.9,
		},
		{
			Name:     "neutral",
			Key:      LightSpec{Type: "sun", Angle: 45, ColorTemp: 5500, Intensity: 2.0, Size: 1},
			Fill:     &LightSpec{Type: "area", Angle: 45, ColorTemp: 5500, Intensity: 0.6, Size: 1},
			HDRI:     "/hdri/neutral_studio.hdr",
			Exposure: 1.0,
		},
	}
}

// ForMood builds the light rig for a mood string. Unknown moods fall back
// to the table's final preset.
func (p Presets) ForMood(mood string) Setup {
	lower := strings.ToLower(mood)

	chosen := p[len(p)-1]
	for _, candidate := range p {
		if matches(candidate, lower) {
			chosen = candidate
			break
		}
	}

	lights := []Light{buildLight("key_light", chosen.Key, model.Vector3{X: 3, Y: -2, Z: 4})}
	if chosen.Fill != nil {
		lights = append(lights, buildLight("fill_light", *chosen.Fill, model.Vector3{X: -2, Y: -1, Z: 3}))
	}

	return Setup{
		Lights:   lights,
		HDRI:     chosen.HDRI,
		Exposure: chosen.Exposure,
		Ambient:  0.1,
	}
}

func matches(p Preset, mood string) bool {
	for _, kw := range p.Keywords {
		if strings.Contains(mood, kw) {
			return true
		}
	}
	return false
}

func buildLight(name string, spec LightSpec, pos model.Vector3) Light {
	zRot := 45.0
	if name != "key_light" {
		zRot = -45.0
	}
	return Light{
		Name:      name,
		Type:      spec.Type,
		Position:  pos,
		Rotation:  model.Vector3{X: spec.Angle, Z: zRot},
		ColorTemp: spec.ColorTemp,
		Intensity: spec.Intensity,
		Angle:     spec.Angle,
		Size:      spec.Size,
	}
}

// FrameScene positions a camera at eye level looking at the average object
// center, backed off twice the scene radius. Mood selects lens and
// aperture.
func FrameScene(objects []model.SceneObject, mood string) Camera {
	var avgX, avgY, avgZ float64
	avgZ = 0.5
	radius := 2.0

	if len(objects) > 0 {
		avgZ = 0
		maxExtent := 0.0
		for _, o := range objects {
			avgX += o.Position.X
			avgY += o.Position.Y
			avgZ += o.Position.Z + o.Footprint.Height/2

			extent := math.Max(math.Abs(o.Position.X), math.Abs(o.Position.Y)) +
				math.Max(o.Footprint.Width, o.Footprint.Depth)/2
			maxExtent = math.Max(maxExtent, extent)
		}
		n := float64(len(objects))
		avgX /= n
		avgY /= n
		avgZ /= n
		radius = math.Max(2.0, maxExtent*1.5)
	}

	dist := radius * 2
	focal, aperture, dof := lensFor(mood)

	return Camera{
		Position:     model.Vector3{X: avgX, Y: avgY - dist, Z: 1.6},
		Target:       model.Vector3{X: avgX, Y: avgY, Z: avgZ},
		FocalLength:  focal,
		Aperture:     aperture,
		DepthOfField: dof,
		FocusDist:    dist,
	}
}

func lensFor(mood string) (focal, aperture float64, dof bool) {
	lower := strings.ToLower(mood)
	switch {
	case strings.Contains(lower, "intimate") || strings.Contains(lower, "cozy"):
		return 50, 1.8, true
	case strings.Contains(lower, "dramatic"):
		return 35, 2.8, true
	case strings.Contains(lower, "wide") || strings.Contains(lower, "architectural"):
		return 24, 8.0, false
	default:
		return 35, 2.8, true
	}
}
