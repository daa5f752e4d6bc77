// Package validate scores a finished layout. Checks are advisory: each
// finding is an issue with a severity and a score penalty, and the report
// passes when the score stays above threshold with no errors.
package validate

import (
	"fmt"
	"math"
	"strings"

	"github.com/piwi3910/RoomForge/internal/lighting"
	"github.com/piwi3910/RoomForge/internal/model"
)

const (
	// PassingScore is the minimum score for a passing report.
	PassingScore = 60

	// collisionTolerance is the penetration depth ignored as touching.
	collisionTolerance = 0.05
	// severeOverlap marks the depth at which an overlap becomes an error.
	severeOverlap = 0.30
)

// Issue is one validation finding.
type Issue struct {
	Severity    string `json:"severity"` // error, warning or info
	Category    string `json:"category"`
	Description string `json:"description"`
	ObjectID    string `json:"object_id,omitempty"`
	Fix         string `json:"fix,omitempty"`
}

// Report is the outcome of a validation run. Score starts at 100 and each
// issue subtracts its penalty, floored at 0.
type Report struct {
	Score  int     `json:"score"`
	Passed bool    `json:"passed"`
	Issues []Issue `json:"issues,omitempty"`
}

// Errors reports whether any issue is an error.
func (r Report) Errors() bool {
	for _, i := range r.Issues {
		if i.Severity == "error" {
			return true
		}
	}
	return false
}

// Check validates placed objects against the room, plus the light rig when
// one is provided.
func Check(objects []model.SceneObject, room model.Room, rig *lighting.Setup) Report {
	score := 100
	var issues []Issue

	add := func(i Issue, penalty int) {
		issues = append(issues, i)
		score -= penalty
	}

	checkCollisions(objects, add)
	checkFloating(objects, add)
	checkBounds(objects, room, add)
	checkMaterials(objects, add)
	if rig != nil {
		checkLighting(*rig, add)
	}

	if score < 0 {
		score = 0
	}

	r := Report{Score: score, Issues: issues}
	r.Passed = score >= PassingScore && !r.Errors()
	return r
}

func checkCollisions(objects []model.SceneObject, add func(Issue, int)) {
	for i := 0; i < len(objects); i++ {
		for j := i + 1; j < len(objects); j++ {
			depth := model.Overlap(objects[i].Bounds(), objects[j].Bounds())
			if depth <= collisionTolerance {
				continue
			}
			if depth > severeOverlap {
				add(Issue{
					Severity:    "error",
					Category:    "collision",
					Description: fmt.Sprintf("%q severely intersects %q (%.2fm overlap)", objects[i].Name, objects[j].Name, depth),
					ObjectID:    objects[j].ID,
					Fix:         "move the objects apart or rerun the clipping resolver",
				}, 10)
			} else {
				add(Issue{
					Severity:    "warning",
					Category:    "collision",
					Description: fmt.Sprintf("%q slightly overlaps %q (%.2fm)", objects[i].Name, objects[j].Name, depth),
					ObjectID:    objects[j].ID,
					Fix:         "increase spacing or nudge one object",
				}, 3)
			}
		}
	}
}

// architectural names are exempt from the floating checks.
var architectural = []string{"wall", "floor", "window", "ceiling", "door"}

// surfaceKinds sit legitimately on top of other objects.
var surfaceKinds = []string{"lamp", "book", "vase", "clock", "plant"}

func checkFloating(objects []model.SceneObject, add func(Issue, int)) {
	for _, o := range objects {
		if nameContainsAny(o.Name, architectural) {
			continue
		}

		if o.Position.Z < -0.1 {
			add(Issue{
				Severity:    "warning",
				Category:    "floating",
				Description: fmt.Sprintf("%q is below floor level (z=%.2f)", o.Name, o.Position.Z),
				ObjectID:    o.ID,
				Fix:         "set z position to 0",
			}, 3)
			continue
		}

		if o.Position.Z > 0.2 && !nameContainsAny(o.Name, surfaceKinds) && !onAnySurface(o, objects) {
			add(Issue{
				Severity:    "info",
				Category:    "floating",
				Description: fmt.Sprintf("%q appears to be floating (z=%.2f)", o.Name, o.Position.Z),
				ObjectID:    o.ID,
				Fix:         "place on the floor or on another surface",
			}, 1)
		}
	}
}

func checkBounds(objects []model.SceneObject, room model.Room, add func(Issue, int)) {
	for _, o := range objects {
		if room.Bounds.ContainsXY(o.Bounds()) {
			continue
		}
		add(Issue{
			Severity:    "warning",
			Category:    "bounds",
			Description: fmt.Sprintf("%q extends outside the room at (%.2f, %.2f)", o.Name, o.Position.X, o.Position.Y),
			ObjectID:    o.ID,
			Fix:         "clamp the object back into the room",
		}, 5)
	}
}

func checkMaterials(objects []model.SceneObject, add func(Issue, int)) {
	for _, o := range objects {
		if o.Material == nil {
			add(Issue{
				Severity:    "warning",
				Category:    "material",
				Description: fmt.Sprintf("%q has no material assigned", o.Name),
				ObjectID:    o.ID,
				Fix:         "apply a PBR material preset",
			}, 5)
			continue
		}

		m := o.Material
		if m.TextureMap == "" && m.Shader != "glass" && m.Shader != "metal" {
			add(Issue{
				Severity:    "info",
				Category:    "material",
				Description: fmt.Sprintf("%q uses a flat color without texture", o.Name),
				ObjectID:    o.ID,
				Fix:         "add a texture map",
			}, 1)
		}

		brightness := (m.BaseColor[0] + m.BaseColor[1] + m.BaseColor[2]) / 3
		if brightness > 0.98 {
			add(Issue{
				Severity:    "warning",
				Category:    "overexposure",
				Description: fmt.Sprintf("%q may be overexposed (brightness=%.2f)", o.Name, brightness),
				ObjectID:    o.ID,
				Fix:         "reduce base color brightness",
			}, 2)
		}
	}
}

func checkLighting(rig lighting.Setup, add func(Issue, int)) {
	if len(rig.Lights) == 0 {
		add(Issue{
			Severity:    "error",
			Category:    "lighting",
			Description: "no lights in the scene",
			Fix:         "add at least a key light",
		}, 20)
		return
	}

	hasKey := false
	for _, l := range rig.Lights {
		if l.Intensity > 1.5 {
			hasKey = true
			break
		}
	}
	if !hasKey {
		add(Issue{
			Severity:    "warning",
			Category:    "lighting",
			Description: "scene may be underlit, no strong key light",
			Fix:         "increase key light intensity",
		}, 5)
	}

	if rig.Exposure > 1.5 {
		add(Issue{
			Severity:    "warning",
			Category:    "overexposure",
			Description: fmt.Sprintf("scene exposure may be too high (%.1f)", rig.Exposure),
			Fix:         "reduce exposure toward 1.0",
		}, 3)
	}
}

func nameContainsAny(name string, substrings []string) bool {
	lower := strings.ToLower(name)
	for _, s := range substrings {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// onAnySurface reports whether the object's base sits within tolerance of
// another object's top.
func onAnySurface(o model.SceneObject, objects []model.SceneObject) bool {
	for _, other := range objects {
		if other.ID == o.ID {
			continue
		}
		top := other.Position.Z + other.Footprint.Height
		if math.Abs(o.Position.Z-top) < 0.1 {
			return true
		}
	}
	return false
}
