package validate

import (
	"testing"

	"github.com/piwi3910/RoomForge/internal/lighting"
	"github.com/piwi3910/RoomForge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obj(name string, x, y, z, w, d, h float64) model.SceneObject {
	o := model.NewSceneObject(name, model.Footprint{Width: w, Depth: d, Height: h})
	o.Position = model.Vector3{X: x, Y: y, Z: z}
	o.Material = &model.Material{
		Name: name + "_mat", Shader: "wood",
		BaseColor: [3]float64{0.5, 0.4, 0.3}, Roughness: 0.5,
		TextureMap: "/textures/wood/generic_wood.png",
	}
	return o
}

func TestCheck_CleanScenePasses(t *testing.T) {
	objects := []model.SceneObject{
		obj("bed", -1.5, 1.5, 0, 2, 1.6, 0.8),
		obj("desk", 1.5, -1.5, 0, 1.2, 0.6, 0.75),
	}

	r := Check(objects, model.DefaultRoom(), nil)

	assert.Equal(t, 100, r.Score)
	assert.True(t, r.Passed)
	assert.Empty(t, r.Issues)
}

func TestCheck_MinorOverlapIsWarning(t *testing.T) {
	// 0.2m penetration on X, deeper on Y and Z.
	objects := []model.SceneObject{
		obj("bed", 0, 0, 0, 2, 2, 1),
		obj("desk", 1.8, 0, 0, 2, 2, 1),
	}

	r := Check(objects, model.DefaultRoom(), nil)

	require.Len(t, r.Issues, 1)
	assert.Equal(t, "warning", r.Issues[0].Severity)
	assert.Equal(t, "collision", r.Issues[0].Category)
	assert.Equal(t, 97, r.Score)
	assert.True(t, r.Passed)
}

func TestCheck_SevereOverlapIsError(t *testing.T) {
	objects := []model.SceneObject{
		obj("bed", 0, 0, 0, 2, 2, 1),
		obj("desk", 0.5, 0, 0, 2, 2, 1),
	}

	r := Check(objects, model.DefaultRoom(), nil)

	require.Len(t, r.Issues, 1)
	assert.Equal(t, "error", r.Issues[0].Severity)
	assert.Equal(t, 90, r.Score)
	assert.False(t, r.Passed, "errors fail validation regardless of score")
}

func TestCheck_TouchingWithinToleranceIgnored(t *testing.T) {
	// 0.04m penetration, below the 0.05m tolerance.
	objects := []model.SceneObject{
		obj("bed", 0, 0, 0, 2, 2, 1),
		obj("desk", 1.96, 0, 0, 2, 2, 1),
	}

	r := Check(objects, model.DefaultRoom(), nil)
	assert.Empty(t, r.Issues)
}

func TestCheck_BelowFloor(t *testing.T) {
	objects := []model.SceneObject{obj("desk", 0, 0, -0.3, 1.2, 0.6, 0.75)}

	r := Check(objects, model.DefaultRoom(), nil)

	require.Len(t, r.Issues, 1)
	assert.Equal(t, "floating", r.Issues[0].Category)
	assert.Equal(t, "warning", r.Issues[0].Severity)
}

func TestCheck_FloatingUnlessOnSurface(t *testing.T) {
	floating := obj("chair", 2, 2, 0.8, 0.5, 0.5, 0.9)
	r := Check([]model.SceneObject{floating}, model.DefaultRoom(), nil)
	require.Len(t, r.Issues, 1)
	assert.Equal(t, "info", r.Issues[0].Severity)

	// Same object resting on a desk top is fine.
	desk := obj("desk", 2, 2, 0, 1.2, 0.6, 0.75)
	onDesk := obj("books", 2, 2, 0.75, 0.3, 0.2, 0.25)
	r = Check([]model.SceneObject{desk, onDesk}, model.DefaultRoom(), nil)
	assert.Empty(t, r.Issues)
}

func TestCheck_SurfaceKindsExempt(t *testing.T) {
	lamp := obj("desk lamp", 2, 2, 0.75, 0.2, 0.2, 0.45)

	r := Check([]model.SceneObject{lamp}, model.DefaultRoom(), nil)
	assert.Empty(t, r.Issues)
}

func TestCheck_ArchitecturalExempt(t *testing.T) {
	window := obj("large window", 0, 2.95, 1.0, 1.5, 0.1, 2.0)

	r := Check([]model.SceneObject{window}, model.DefaultRoom(), nil)
	for _, i := range r.Issues {
		assert.NotEqual(t, "floating", i.Category)
	}
}

func TestCheck_OutOfBounds(t *testing.T) {
	objects := []model.SceneObject{obj("bed", 2.9, 0, 0, 2, 1.6, 0.8)}

	r := Check(objects, model.DefaultRoom(), nil)

	require.Len(t, r.Issues, 1)
	assert.Equal(t, "bounds", r.Issues[0].Category)
	assert.Equal(t, 95, r.Score)
}

func TestCheck_MissingMaterial(t *testing.T) {
	o := obj("desk", 0, 0, 0, 1.2, 0.6, 0.75)
	o.Material = nil

	r := Check([]model.SceneObject{o}, model.DefaultRoom(), nil)

	require.Len(t, r.Issues, 1)
	assert.Equal(t, "material", r.Issues[0].Category)
	assert.Equal(t, 95, r.Score)
}

func TestCheck_FlatColorInfoSkipsMetalAndGlass(t *testing.T) {
	metal := obj("lamp", 0, 0, 0, 0.25, 0.25, 0.5)
	metal.Material.Shader = "metal"
	metal.Material.TextureMap = ""

	r := Check([]model.SceneObject{metal}, model.DefaultRoom(), nil)
	assert.Empty(t, r.Issues)

	wood := obj("desk", 2, 2, 0, 1.2, 0.6, 0.75)
	wood.Material.TextureMap = ""

	r = Check([]model.SceneObject{wood}, model.DefaultRoom(), nil)
	require.Len(t, r.Issues, 1)
	assert.Equal(t, "info", r.Issues[0].Severity)
}

func TestCheck_Overexposure(t *testing.T) {
	o := obj("bed", 0, 0, 0, 2, 1.6, 0.8)
	o.Material.BaseColor = [3]float64{0.99, 0.99, 0.99}

	r := Check([]model.SceneObject{o}, model.DefaultRoom(), nil)

	require.Len(t, r.Issues, 1)
	assert.Equal(t, "overexposure", r.Issues[0].Category)
}

func TestCheck_LightingRig(t *testing.T) {
	empty := &lighting.Setup{}
	r := Check(nil, model.DefaultRoom(), empty)
	require.Len(t, r.Issues, 1)
	assert.Equal(t, "error", r.Issues[0].Severity)
	assert.False(t, r.Passed)

	dim := &lighting.Setup{
		Lights:   []lighting.Light{{Name: "key_light", Intensity: 0.5}},
		Exposure: 1.6,
	}
	r = Check(nil, model.DefaultRoom(), dim)
	assert.Len(t, r.Issues, 2) // underlit plus exposure
	assert.Equal(t, 92, r.Score)

	good := lighting.Default().ForMood("neutral")
	r = Check(nil, model.DefaultRoom(), &good)
	assert.Empty(t, r.Issues)
}

func TestCheck_ScoreFloorsAtZero(t *testing.T) {
	var objects []model.SceneObject
	for i := 0; i < 8; i++ {
		o := obj("crate", 0, 0, 0, 2, 2, 2)
		o.Material = nil
		objects = append(objects, o)
	}

	r := Check(objects, model.DefaultRoom(), nil)

	assert.Equal(t, 0, r.Score)
	assert.False(t, r.Passed)
}
