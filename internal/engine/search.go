package engine

import (
	"math"

	"github.com/piwi3910/RoomForge/internal/model"
)

// findPosition searches for a collision-free position for a footprint in
// the given zone. Three bounded phases are tried in order — grid, spiral,
// corners — each returning its first candidate that keeps the un-inflated
// box inside the room and the inflated box clear of occupied space.
// Candidates within a phase are enumerated in a fixed order, so identical
// inputs always produce identical positions.
//
// When every phase fails, the degenerate fallback returns an offset from
// the zone centroid proportional to the number of already-placed objects,
// clamped into the room. That position is not guaranteed collision-free;
// the second return value reports it so the caller can flag the object.
func (l *Layouter) findPosition(fp model.Footprint, zone model.Zone, occupied *occupancyIndex) (model.Vector3, bool) {
	if pos, ok := l.gridSearch(fp, zone, occupied); ok {
		return pos, false
	}
	if pos, ok := l.spiralSearch(fp, zone, occupied); ok {
		return pos, false
	}
	if pos, ok := l.cornerSearch(fp, zone.Z, occupied); ok {
		return pos, false
	}
	return l.fallbackPosition(fp, zone, len(occupied.boxes)), true
}

// admissible applies the two placement filters: the un-inflated box must
// stay within the room on X/Y, and the margin-inflated box must not touch
// occupied space.
func (l *Layouter) admissible(pos model.Vector3, fp model.Footprint, occupied *occupancyIndex) bool {
	if !l.Room.Bounds.ContainsXY(model.BoxAt(pos, fp, 0)) {
		return false
	}
	return !occupied.intersectsAny(model.BoxAt(pos, fp, l.Settings.MinSpacing))
}

// gridSearch enumerates offsets on a fixed step covering the zone's full
// extent, centered at the zone centroid.
func (l *Layouter) gridSearch(fp model.Footprint, zone model.Zone, occupied *occupancyIndex) (model.Vector3, bool) {
	center := zone.Center()
	step := l.Settings.GridStep
	xRange := zone.Width()
	yRange := zone.Depth()

	nx := int(xRange / step)
	ny := int(yRange / step)

	for ix := 0; ix <= nx; ix++ {
		dx := float64(ix)*step - xRange/2
		for iy := 0; iy <= ny; iy++ {
			dy := float64(iy)*step - yRange/2

			pos := model.Vector3{X: center.X + dx, Y: center.Y + dy, Z: zone.Z}
			if l.admissible(pos, fp, occupied) {
				return pos, true
			}
		}
	}
	return model.Vector3{}, false
}

// spiralSearch widens the search beyond the zone: increasing radii around
// the zone centroid, sampled at fixed angle increments. Candidates partially
// outside the room are skipped by the admissibility test.
func (l *Layouter) spiralSearch(fp model.Footprint, zone model.Zone, occupied *occupancyIndex) (model.Vector3, bool) {
	center := zone.Center()

	for r := l.Settings.SpiralRadiusStep; r <= l.Settings.SpiralMaxRadius+1e-9; r += l.Settings.SpiralRadiusStep {
		for deg := 0.0; deg < 360; deg += l.Settings.SpiralAngleStep {
			theta := deg * math.Pi / 180 // rotation config is in degrees, trig needs radians

			pos := model.Vector3{
				X: center.X + r*math.Cos(theta),
				Y: center.Y + r*math.Sin(theta),
				Z: zone.Z,
			}
			if l.admissible(pos, fp, occupied) {
				return pos, true
			}
		}
	}
	return model.Vector3{}, false
}

// cornerCandidates returns the room-corner and edge-midpoint positions,
// pulled in from the walls by the given inset. Tested in declared order.
func (l *Layouter) cornerCandidates(inset float64) [8][2]float64 {
	b := l.Room.Bounds
	lo := [2]float64{b.Min.X + inset, b.Min.Y + inset}
	hi := [2]float64{b.Max.X - inset, b.Max.Y - inset}
	midX := (b.Min.X + b.Max.X) / 2
	midY := (b.Min.Y + b.Max.Y) / 2

	return [8][2]float64{
		{lo[0], lo[1]}, {lo[0], hi[1]}, {hi[0], lo[1]}, {hi[0], hi[1]},
		{midX, lo[1]}, {midX, hi[1]}, {lo[0], midY}, {hi[0], midY},
	}
}

func (l *Layouter) cornerSearch(fp model.Footprint, z float64, occupied *occupancyIndex) (model.Vector3, bool) {
	for _, c := range l.cornerCandidates(l.Settings.MinSpacing) {
		pos := model.Vector3{X: c[0], Y: c[1], Z: z}
		if l.admissible(pos, fp, occupied) {
			return pos, true
		}
	}
	return model.Vector3{}, false
}

// fallbackPosition offsets from the zone centroid by an amount growing with
// the number of placed objects, then clamps the footprint into the room.
// Collision-free is not guaranteed here.
func (l *Layouter) fallbackPosition(fp model.Footprint, zone model.Zone, placedCount int) model.Vector3 {
	center := zone.Center()
	offset := float64(placedCount) * 0.8

	pos := model.Vector3{X: center.X + offset, Y: center.Y - offset, Z: zone.Z}
	return l.clampToRoom(pos, fp)
}

// clampToRoom pulls a position back so the footprint's un-inflated box
// stays within the room bounds on X and Y.
func (l *Layouter) clampToRoom(pos model.Vector3, fp model.Footprint) model.Vector3 {
	b := l.Room.Bounds
	halfW := fp.Width / 2
	halfD := fp.Depth / 2

	pos.X = math.Max(b.Min.X+halfW, math.Min(b.Max.X-halfW, pos.X))
	pos.Y = math.Max(b.Min.Y+halfD, math.Min(b.Max.Y-halfD, pos.Y))
	return pos
}
