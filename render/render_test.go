package render

import (
	"testing"

	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/ecs/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera()
	c.Snap(100, -40)

	sx, sy := c.ToScreen(100, -40, 640, 360)
	assert.Equal(t, 320.0, sx)
	assert.Equal(t, 180.0, sy)

	// y up in the world is up on screen
	_, above := c.ToScreen(100, -30, 640, 360)
	assert.Less(t, above, sy)

	wx, wy := c.ToWorld(10, 20, 640, 360)
	bx, by := c.ToScreen(wx, wy, 640, 360)
	assert.InDelta(t, 10, bx, 1e-9)
	assert.InDelta(t, 20, by, 1e-9)
}

func TestCameraZoomEases(t *testing.T) {
	c := NewCamera()
	c.ZoomTo(MenuZoom)
	c.Follow(0, 0, zoomSeconds/2)
	assert.Greater(t, c.Zoom, DefaultZoom)
	assert.Less(t, c.Zoom, MenuZoom)

	c.Follow(0, 0, zoomSeconds)
	assert.InDelta(t, MenuZoom, c.Zoom, 1e-5)
}

func TestCameraFollowConverges(t *testing.T) {
	c := NewCamera()
	for i := 0; i < 120; i++ {
		c.Follow(50, 25, 1.0/60)
	}
	assert.InDelta(t, 50, c.X, 0.1)
	assert.InDelta(t, 25, c.Y, 0.1)
}

func TestEffectsFadeOut(t *testing.T) {
	e := NewEffects()
	e.Spawn("steam", 0, 0)
	e.Spawn("unknown", 0, 0)
	assert.Equal(t, 2, e.Len())

	e.Update(effectSeconds / 2)
	assert.Equal(t, 2, e.Len())
	assert.Greater(t, e.live[0].y, 0.0, "steam rises")

	e.Update(effectSeconds)
	assert.Equal(t, 0, e.Len())
}

func TestVisibleTextsSitAboveTheirEntity(t *testing.T) {
	w := ecs.NewWorld()
	sign, err := entity.NewSignpost(w, 0, 0, "Hi\nthere")
	require.NoError(t, err)
	_, err = entity.NewTrophy(w, 40, 0)
	require.NoError(t, err)

	r := NewRenderer()
	r.Camera.Snap(0, 0)
	assert.Empty(t, r.visibleTexts(w, 640, 360))

	text, ok := ecs.Get(w, sign, component.ProximityTextComponent.Kind())
	require.True(t, ok)
	text.Visible = true

	got := r.visibleTexts(w, 640, 360)
	require.Len(t, got, 1)
	assert.Equal(t, "Hi\nthere", got[0].text)
	// centred on the widest line, textRise world units up
	assert.Equal(t, 320-5*debugGlyphWidth/2, got[0].x)
	assert.Equal(t, 180-int(textRise*DefaultZoom), got[0].y)
}
