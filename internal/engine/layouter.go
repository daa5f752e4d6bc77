// Package engine implements the spatial layout and collision-resolution
// engine: zone-based candidate search, AABB intersection testing against an
// occupancy index, and post-placement clipping resolution.
package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/RoomForge/internal/model"
)

// Layouter places scene objects inside a room. It owns all per-run state,
// so a fresh Layouter per call is safely reentrant; a single Layouter must
// not be shared across concurrent runs.
type Layouter struct {
	Room     model.Room
	Zones    model.ZoneCatalog
	Rotation []model.RotationRule
	Settings model.LayoutSettings
}

// New builds a Layouter with the stock room, zone catalog and rotation
// rules. Callers needing a different room shape or catalog set the fields
// directly before the first Layout call.
func New(settings model.LayoutSettings) *Layouter {
	return &Layouter{
		Room:     model.DefaultRoom(),
		Zones:    model.DefaultZones(),
		Rotation: model.DefaultRotationRules(),
		Settings: settings,
	}
}

// Layout positions every object and returns the full set, collision-free
// where possible. Objects are processed in descending footprint-area order
// (ties keep input order) because each placement feeds the occupancy index
// consumed by the next one; the sequence is a genuine ordering dependency.
//
// Layout never fails on finite, positive-dimension input. Objects that
// could not be placed collision-free are positioned anyway, flagged
// Degenerate, and reported through LayoutResult.Diagnostics.
func (l *Layouter) Layout(objects []model.SceneObject) model.LayoutResult {
	objs := make([]model.SceneObject, len(objects))
	copy(objs, objects)

	sort.SliceStable(objs, func(i, j int) bool {
		return objs[i].Footprint.Area() > objs[j].Footprint.Area()
	})

	result := model.LayoutResult{}
	occupied := &occupancyIndex{}

	for i := range objs {
		zone := l.Zones.Select(objs[i].Name)

		pos, degenerate := l.findPosition(objs[i].Footprint, zone, occupied)

		objs[i].Position = pos
		objs[i].Rotation = model.Vector3{Z: model.YawFor(l.Rotation, objs[i].Name)}
		objs[i].ZoneName = zone.Name
		objs[i].Placed = true
		objs[i].Degenerate = degenerate

		if degenerate {
			result.DegenerateCount++
			result.Diagnostics = append(result.Diagnostics, fmt.Sprintf(
				"no collision-free position for %q in zone %q, using offset fallback",
				objs[i].Name, zone.Name))
		}

		occupied.insert(model.BoxAt(pos, objs[i].Footprint, l.Settings.MinSpacing))
	}

	moved := l.resolveClipping(objs)
	for _, name := range moved {
		result.Diagnostics = append(result.Diagnostics,
			fmt.Sprintf("moved %q to resolve clipping", name))
	}

	result.ResidualOverlaps = countOverlappingPairs(objs)
	if result.ResidualOverlaps > 0 {
		result.Diagnostics = append(result.Diagnostics, fmt.Sprintf(
			"%d object pair(s) still overlap after %d resolver pass(es)",
			result.ResidualOverlaps, l.resolverPasses()))
	}

	result.Objects = objs
	return result
}

func (l *Layouter) resolverPasses() int {
	if l.Settings.ResolverPasses < 1 {
		return 1
	}
	return l.Settings.ResolverPasses
}

// occupancyIndex accumulates the margin-inflated boxes of already-placed
// objects within a single run. Append-only; a linear scan is fine for scene
// object counts in the tens. Revisit with a spatial index if scenes ever
// grow to thousands of objects.
type occupancyIndex struct {
	boxes []model.AABB
}

func (idx *occupancyIndex) insert(b model.AABB) {
	idx.boxes = append(idx.boxes, b)
}

// intersectsAny reports whether the candidate box overlaps any occupied
// space, using strict AABB overlap on all three axes.
func (idx *occupancyIndex) intersectsAny(candidate model.AABB) bool {
	for _, b := range idx.boxes {
		if candidate.Intersects(b) {
			return true
		}
	}
	return false
}

// countOverlappingPairs counts object pairs whose un-inflated boxes still
// intersect. Used for the residual-overlap report after resolution.
func countOverlappingPairs(objs []model.SceneObject) int {
	count := 0
	for i := 0; i < len(objs); i++ {
		for j := i + 1; j < len(objs); j++ {
			if objs[i].Bounds().Intersects(objs[j].Bounds()) {
				count++
			}
		}
	}
	return count
}
