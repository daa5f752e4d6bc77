package engine

import (
	"math"

	"github.com/piwi3910/RoomForge/internal/model"
)

// clipPair records a colliding pair by slice index, i < j in list order.
type clipPair struct {
	i, j int
}

// detectClipping scans every unordered pair for un-inflated AABB overlap.
// Pairs come out in enumeration order, which fixes the order resolution
// processes them in.
func detectClipping(objs []model.SceneObject) []clipPair {
	var pairs []clipPair
	for i := 0; i < len(objs); i++ {
		for j := i + 1; j < len(objs); j++ {
			if objs[i].Bounds().Intersects(objs[j].Bounds()) {
				pairs = append(pairs, clipPair{i: i, j: j})
			}
		}
	}
	return pairs
}

// resolveClipping separates colliding pairs by nudging the second member of
// each pair away from the first. Within a pass, an object that was already
// moved is not moved again, so objects overlapping more than one neighbor
// can retain residual overlap; the pass count is configurable for callers
// that want the resolver to keep going. Returns the names of moved objects.
func (l *Layouter) resolveClipping(objs []model.SceneObject) []string {
	var movedNames []string

	for pass := 0; pass < l.resolverPasses(); pass++ {
		pairs := detectClipping(objs)
		if len(pairs) == 0 {
			break
		}

		movedThisPass := make(map[int]bool)
		for _, p := range pairs {
			if movedThisPass[p.j] {
				continue
			}

			anchor := objs[p.i]
			mover := &objs[p.j]

			dx := mover.Position.X - anchor.Position.X
			dy := mover.Position.Y - anchor.Position.Y
			dist := math.Hypot(dx, dy)
			if dist < 1e-6 {
				// Coincident centers give no direction; push along +X.
				dx, dist = 0.1, 0.1
			}

			moveDist := (mover.Footprint.Width+anchor.Footprint.Width)/2 + l.Settings.MinSpacing
			mover.Position.X += (dx / dist) * moveDist
			mover.Position.Y += (dy / dist) * moveDist
			mover.Position = l.clampToRoom(mover.Position, mover.Footprint)

			movedThisPass[p.j] = true
			movedNames = append(movedNames, mover.Name)
		}
	}

	return movedNames
}
