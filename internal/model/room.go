package model

import "strings"

// Room defines the fixed bounds objects must stay inside.
type Room struct {
	Bounds AABB `json:"bounds"`
}

// DefaultRoom returns the stock 6m x 6m x 3m room centered on the origin.
func DefaultRoom() Room {
	return Room{
		Bounds: AABB{
			Min: Vector3{X: -3, Y: -3, Z: 0},
			Max: Vector3{X: 3, Y: 3, Z: 3},
		},
	}
}

// Zone is a named target region of the room. Match lists the object-name
// substrings the zone accepts, checked against the lower-cased object name.
type Zone struct {
	Name  string   `json:"name"`
	XMin  float64  `json:"x_min"`
	XMax  float64  `json:"x_max"`
	YMin  float64  `json:"y_min"`
	YMax  float64  `json:"y_max"`
	Z     float64  `json:"z"` // Floor level for placements in this zone
	Match []string `json:"match,omitempty"`
}

// Center returns the zone centroid at floor level.
func (z Zone) Center() Vector3 {
	return Vector3{X: (z.XMin + z.XMax) / 2, Y: (z.YMin + z.YMax) / 2, Z: z.Z}
}

// Width returns the zone's X extent.
func (z Zone) Width() float64 { return z.XMax - z.XMin }

// Depth returns the zone's Y extent.
func (z Zone) Depth() float64 { return z.YMax - z.YMin }

// ZoneCatalog is an ordered list of zones. Order is part of the committed
// configuration: zone selection scans the list top to bottom and the first
// substring match wins, so two catalogs with the same zones in a different
// order are different catalogs. The final entry should be a catch-all with
// an empty Match list.
type ZoneCatalog []Zone

// Select returns the first zone whose match list contains a substring of
// the lower-cased object name. When nothing matches it falls back to the
// last zone in the catalog. Select is total: it is defined for every string
// including the empty one, an identical name always yields an identical
// zone, and an empty catalog yields a zero-extent default zone at the
// origin rather than a panic.
func (c ZoneCatalog) Select(objectName string) Zone {
	if len(c) == 0 {
		return Zone{Name: "default"}
	}
	lower := strings.ToLower(objectName)
	for _, z := range c {
		for _, m := range z.Match {
			if strings.Contains(lower, m) {
				return z
			}
		}
	}
	return c[len(c)-1]
}

// ByName returns the zone with the given name, falling back to the
// catch-all entry. Empty catalogs get the same zero-extent default zone
// Select falls back to.
func (c ZoneCatalog) ByName(name string) Zone {
	if len(c) == 0 {
		return Zone{Name: "default"}
	}
	for _, z := range c {
		if z.Name == name {
			return z
		}
	}
	return c[len(c)-1]
}

// DefaultZones returns the built-in catalog for the stock 6x6 room. Zones
// are well separated so objects assigned to different zones rarely need the
// clipping resolver at all.
func DefaultZones() ZoneCatalog {
	return ZoneCatalog{
		{
			Name: "primary_wall",
			XMin: -1.5, XMax: 1.5, YMin: 1.5, YMax: 2.8,
			Match: []string{"bed", "sofa", "couch"},
		},
		{
			Name: "window_area",
			XMin: 1.0, XMax: 2.8, YMin: -1.5, YMax: 0.5,
			Match: []string{"desk", "window"},
		},
		{
			Name: "center",
			XMin: -0.8, XMax: 0.8, YMin: -0.8, YMax: 0.8,
			Match: []string{"rug", "table"},
		},
		{
			Name: "corner_left",
			XMin: -2.8, XMax: -1.5, YMin: 1.0, YMax: 2.5,
			Match: []string{"bookshelf", "plant"},
		},
		{
			Name: "corner_right",
			XMin: 1.5, XMax: 2.8, YMin: 1.0, YMax: 2.5,
			Match: []string{"lamp"},
		},
		{
			Name: "opposite_wall",
			XMin: -1.5, XMax: 1.5, YMin: -2.8, YMax: -1.5,
			Match: []string{"chair"},
		},
		{
			Name: "wall_mounted",
			XMin: -2.8, XMax: 2.8, YMin: 2.5, YMax: 2.9,
			Match: []string{"wall", "floor", "ceiling"},
		},
		{
			Name: "default",
			XMin: -2.0, XMax: 2.0, YMin: -2.0, YMax: 2.0,
		},
	}
}
