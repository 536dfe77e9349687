package render

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// DefaultZoom frames a few tiles around the player at the base resolution.
	DefaultZoom = 3.0
	// MenuZoom is the zoom while the ability menu is open.
	MenuZoom = 4.5

	zoomSeconds = 0.35
	followRate  = 8.0
)

// Camera maps world space (y up) onto the screen. The zoom is tweened so
// opening the ability menu eases in rather than snapping.
type Camera struct {
	X    float64
	Y    float64
	Zoom float64

	// Free lets the host zoom without the menu driving it.
	Free bool

	target float64
	zoom   *gween.Tween
}

func NewCamera() *Camera {
	return &Camera{Zoom: DefaultZoom, target: DefaultZoom}
}

// ZoomTo starts easing toward z. Calls with the current target are ignored.
func (c *Camera) ZoomTo(z float64) {
	if z <= 0 || z == c.target {
		return
	}
	c.target = z
	c.zoom = gween.New(float32(c.Zoom), float32(z), zoomSeconds, ease.InOutQuad)
}

// Follow moves the camera toward (x, y) and advances the zoom tween by dt
// seconds.
func (c *Camera) Follow(x, y, dt float64) {
	if c.zoom != nil {
		z, done := c.zoom.Update(float32(dt))
		c.Zoom = float64(z)
		if done {
			c.zoom = nil
		}
	}

	t := followRate * dt
	if t > 1 {
		t = 1
	}
	c.X += (x - c.X) * t
	c.Y += (y - c.Y) * t
}

// Snap jumps straight to (x, y).
func (c *Camera) Snap(x, y float64) {
	c.X, c.Y = x, y
}

// ToScreen converts a world point for a screen of the given size.
func (c *Camera) ToScreen(x, y float64, screenW, screenH int) (float64, float64) {
	return (x-c.X)*c.Zoom + float64(screenW)/2,
		(c.Y-y)*c.Zoom + float64(screenH)/2
}

// ToWorld is the inverse of ToScreen.
func (c *Camera) ToWorld(sx, sy float64, screenW, screenH int) (float64, float64) {
	return (sx-float64(screenW)/2)/c.Zoom + c.X,
		c.Y - (sy-float64(screenH)/2)/c.Zoom
}
