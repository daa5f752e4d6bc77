package lighting

import (
	"testing"

	"github.com/piwi3910/RoomForge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForMood_Warm(t *testing.T) {
	s := Default().ForMood("warm morning sunlight")

	require.Len(t, s.Lights, 2)
	assert.Equal(t, "sun", s.Lights[0].Type)
	assert.Equal(t, 3500.0, s.Lights[0].ColorTemp)
	assert.Equal(t, 20.0, s.Lights[0].Angle)
	assert.Equal(t, "/hdri/morning_interior.hdr", s.HDRI)
}

func TestForMood_DramaticHasNoFill(t *testing.T) {
	s := Default().ForMood("dramatic")

	require.Len(t, s.Lights, 1)
	assert.Equal(t, "key_light", s.Lights[0].Name)
	assert.Equal(t, "spot", s.Lights[0].Type)
	assert.Equal(t, 1.2, s.Exposure)
}

func TestForMood_UnknownFallsBackToNeutral(t *testing.T) {
	s := Default().ForMood("zany")

	require.Len(t, s.Lights, 2)
	assert.Equal(t, 5500.0, s.Lights[0].ColorTemp)
	assert.Equal(t, "/hdri/neutral_studio.hdr", s.HDRI)
	assert.Equal(t, 1.0, s.Exposure)
}

func TestForMood_FirstPresetWins(t *testing.T) {
	// "warm" appears before "cozy" in the preset table, so a mood
	// containing both resolves to the warm preset.
	s := Default().ForMood("warm and cozy")
	assert.Equal(t, "/hdri/morning_interior.hdr", s.HDRI)
}

func TestForMood_FillRotationMirrorsKey(t *testing.T) {
	s := Default().ForMood("soft")

	require.Len(t, s.Lights, 2)
	assert.Equal(t, 45.0, s.Lights[0].Rotation.Z)
	assert.Equal(t, -45.0, s.Lights[1].Rotation.Z)
}

func TestDefault_TablesAreIndependent(t *testing.T) {
	// Each Default() call hands out its own table: a caller tweaking one
	// must not leak into rigs built from another.
	tweaked := Default()
	tweaked[0].Key.Intensity = 99

	s := Default().ForMood("warm")
	assert.Equal(t, 3.0, s.Lights[0].Intensity)
	assert.Equal(t, 99.0, tweaked.ForMood("warm").Lights[0].Intensity)
}

func TestFrameScene_Empty(t *testing.T) {
	cam := FrameScene(nil, "")

	assert.Equal(t, 1.6, cam.Position.Z)
	assert.Equal(t, 0.5, cam.Target.Z)
	assert.Equal(t, -4.0, cam.Position.Y) // radius 2, distance 4
	assert.Equal(t, 35.0, cam.FocalLength)
}

func TestFrameScene_BacksOffForLargeScenes(t *testing.T) {
	objects := []model.SceneObject{
		{
			Name:      "bed",
			Position:  model.Vector3{X: 0, Y: 2},
			Footprint: model.Footprint{Width: 2, Depth: 1.6, Height: 0.8},
		},
	}

	cam := FrameScene(objects, "")

	// extent = 2 + 1 = 3, radius = 4.5, distance = 9
	assert.InDelta(t, 4.5*1, cam.FocusDist/2, 1e-9)
	assert.InDelta(t, 2-9, cam.Position.Y, 1e-9)
	assert.Equal(t, 2.0, cam.Target.Y)
}

func TestFrameScene_MoodLens(t *testing.T) {
	cozy := FrameScene(nil, "cozy")
	assert.Equal(t, 50.0, cozy.FocalLength)
	assert.Equal(t, 1.8, cozy.Aperture)
	assert.True(t, cozy.DepthOfField)

	wide := FrameScene(nil, "wide architectural")
	assert.Equal(t, 24.0, wide.FocalLength)
	assert.False(t, wide.DepthOfField)
}
