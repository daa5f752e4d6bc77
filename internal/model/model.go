package model

import (
	"strings"

	"github.com/google/uuid"
)

// Material holds the surface parameters assigned to a scene object.
// Values follow the usual PBR conventions: BaseColor in 0..1 RGB,
// Roughness, Metallic and Subsurface in 0..1.
type Material struct {
	Name       string     `json:"name"`
	Shader     string     `json:"shader"` // cloth, wood, metal, glass, plastic or principled
	BaseColor  [3]float64 `json:"base_color"`
	Roughness  float64    `json:"roughness"`
	Metallic   float64    `json:"metallic"`
	Subsurface float64    `json:"subsurface,omitempty"`
	TextureMap string     `json:"texture_map,omitempty"`
}

// SceneObject is a discrete object to be placed inside the room.
//
// Objects are created unplaced. The layout engine sets Position, Rotation,
// ZoneName and Placed exactly once; the clipping resolver may adjust
// Position once more. There is no transition back to unplaced.
type SceneObject struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Footprint Footprint `json:"footprint"`
	Position  Vector3   `json:"position"`
	Rotation  Vector3   `json:"rotation"` // Euler angles in degrees, Z is yaw
	ZoneName  string    `json:"zone_name,omitempty"`
	Placed    bool      `json:"placed"`

	// Degenerate marks objects placed via the last-resort fallback whose
	// position is not guaranteed collision-free.
	Degenerate bool `json:"degenerate,omitempty"`

	Material *Material `json:"material,omitempty"`
}

// NewSceneObject creates an unplaced object with a fresh short ID.
func NewSceneObject(name string, fp Footprint) SceneObject {
	return SceneObject{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Footprint: fp,
	}
}

// Bounds returns the object's un-inflated AABB at its current position.
func (o SceneObject) Bounds() AABB {
	return BoxAt(o.Position, o.Footprint, 0)
}

// LayoutSettings holds the tunable constants of the layout engine.
type LayoutSettings struct {
	MinSpacing       float64 `json:"min_spacing"`        // Clearance margin around objects (m)
	GridStep         float64 `json:"grid_step"`          // Grid phase step (m)
	SpiralMaxRadius  float64 `json:"spiral_max_radius"`  // Spiral phase outer radius (m)
	SpiralRadiusStep float64 `json:"spiral_radius_step"` // Spiral phase radius increment (m)
	SpiralAngleStep  float64 `json:"spiral_angle_step"`  // Spiral phase angle increment (degrees)

	// ResolverPasses is the number of separation passes run after placement.
	// A single pass cannot untangle objects overlapping more than one
	// neighbor; callers that care can raise this and check ResidualOverlaps
	// on the result.
	ResolverPasses int `json:"resolver_passes"`
}

// DefaultSettings returns the layout constants used by the stock room setup.
func DefaultSettings() LayoutSettings {
	return LayoutSettings{
		MinSpacing:       0.5,
		GridStep:         0.4,
		SpiralMaxRadius:  4.0,
		SpiralRadiusStep: 0.5,
		SpiralAngleStep:  30.0,
		ResolverPasses:   1,
	}
}

// RotationRule maps an object-name substring to a yaw rotation in degrees.
// Rules are evaluated in declaration order; the first match wins.
type RotationRule struct {
	Match string  `json:"match"`
	Yaw   float64 `json:"yaw"`
}

// DefaultRotationRules returns the built-in orientation table. Desks face
// away from the wall toward the room center; everything else keeps its
// modeled orientation.
func DefaultRotationRules() []RotationRule {
	return []RotationRule{
		{Match: "desk", Yaw: 180},
		{Match: "bed", Yaw: 0},
		{Match: "chair", Yaw: 0},
	}
}

// YawFor returns the yaw for the first rule whose substring occurs in the
// lower-cased object name, or 0 when no rule matches.
func YawFor(rules []RotationRule, name string) float64 {
	lower := strings.ToLower(name)
	for _, r := range rules {
		if strings.Contains(lower, r.Match) {
			return r.Yaw
		}
	}
	return 0
}

// LayoutResult holds the positioned objects and the advisory diagnostics
// produced during a layout run.
type LayoutResult struct {
	Objects []SceneObject `json:"objects"`

	// Diagnostics carries human-readable warnings (degenerate placements,
	// residual overlaps). Never a hard failure.
	Diagnostics []string `json:"diagnostics,omitempty"`

	// DegenerateCount is the number of objects placed via the fallback.
	DegenerateCount int `json:"degenerate_count"`

	// ResidualOverlaps counts object pairs still overlapping after the
	// resolver finished its passes.
	ResidualOverlaps int `json:"residual_overlaps"`
}

// Scene ties everything together for save/load.
type Scene struct {
	Name     string         `json:"name"`
	Prompt   string         `json:"prompt,omitempty"` // Free-text description the scene was built from
	Mood     string         `json:"mood,omitempty"`
	Objects  []SceneObject  `json:"objects"`
	Settings LayoutSettings `json:"settings"`
	Result   *LayoutResult  `json:"result,omitempty"`
}

// NewScene returns an empty scene with default settings.
func NewScene() Scene {
	return Scene{
		Name:     "Untitled",
		Objects:  []SceneObject{},
		Settings: DefaultSettings(),
	}
}
