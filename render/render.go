// Package render draws the simulation with flat coloured shapes.
package render

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/elemental/common"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"golang.org/x/image/colornames"
)

var (
	background = colornames.Midnightblue
	deadTint   = colornames.Crimson
)

var orbColors = map[component.Unlock]color.RGBA{
	component.UnlockFire:  colornames.Orange,
	component.UnlockAir:   colornames.Lightsteelblue,
	component.UnlockWater: colornames.Deepskyblue,
	component.UnlockBoots: colornames.Sienna,
	component.UnlockCloak: colornames.Mediumseagreen,
}

var projectileColors = map[component.ProjectileKind]color.RGBA{
	component.ProjectileFire:  colornames.Orange,
	component.ProjectileWind:  colornames.Lightsteelblue,
	component.ProjectileWater: colornames.Deepskyblue,
}

// Renderer draws every entity that has a transform as a rectangle sized by
// its collider.
type Renderer struct {
	Camera  *Camera
	Effects *Effects
}

func NewRenderer() *Renderer {
	return &Renderer{Camera: NewCamera(), Effects: NewEffects()}
}

func (r *Renderer) Draw(screen *ebiten.Image, w *ecs.World) {
	if screen == nil || w == nil {
		return
	}
	screen.Fill(background)

	// Draw in layers so the player and projectiles stay on top.
	var actors []ecs.Entity
	for _, e := range w.Query(component.TransformComponent.Kind()) {
		if ecs.Has(w, e, component.ParentComponent.Kind()) {
			continue
		}
		if ecs.Has(w, e, component.PlayerComponent.Kind()) || ecs.Has(w, e, component.ProjectileComponent.Kind()) {
			actors = append(actors, e)
			continue
		}
		r.drawEntity(screen, w, e)
	}
	for _, e := range actors {
		r.drawEntity(screen, w, e)
	}
	r.drawEffects(screen)
	r.drawTexts(screen, w)
}

func (r *Renderer) drawEntity(screen *ebiten.Image, w *ecs.World, e ecs.Entity) {
	clr, ok := entityColor(w, e)
	if !ok {
		return
	}
	t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	width, height, offX, offY := float64(common.TileSize), float64(common.TileSize), 0.0, 0.0
	if rb, ok := ecs.Get(w, e, component.RigidBodyComponent.Kind()); ok && rb.Width > 0 && rb.Height > 0 {
		width, height, offX, offY = rb.Width, rb.Height, rb.OffsetX, rb.OffsetY
	}
	r.fillRect(screen, t.X+offX, t.Y+offY, width, height, clr)
}

// fillRect draws a world-space rectangle centred on (x, y).
func (r *Renderer) fillRect(screen *ebiten.Image, x, y, width, height float64, clr color.Color) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	sx, sy := r.Camera.ToScreen(x-width/2, y+height/2, sw, sh)
	z := r.Camera.Zoom
	vector.FillRect(screen, float32(sx), float32(sy), float32(width*z), float32(height*z), clr, false)
}

func entityColor(w *ecs.World, e ecs.Entity) (color.Color, bool) {
	switch {
	case ecs.Has(w, e, component.PlayerComponent.Kind()):
		if ecs.Has(w, e, component.KilledComponent.Kind()) {
			return deadTint, true
		}
		return colornames.Gold, true
	case ecs.Has(w, e, component.ProjectileComponent.Kind()):
		p, _ := ecs.Get(w, e, component.ProjectileComponent.Kind())
		return projectileColors[p.Kind], true
	case ecs.Has(w, e, component.EnemyComponent.Kind()):
		if ecs.Has(w, e, component.DestructionTimerComponent.Kind()) {
			return colornames.Darkolivegreen, true
		}
		return colornames.Olivedrab, true
	case ecs.Has(w, e, component.LavaComponent.Kind()):
		return flicker(w, e, colornames.Orangered, colornames.Darkorange), true
	case ecs.Has(w, e, component.WaterComponent.Kind()):
		return flicker(w, e, colornames.Dodgerblue, colornames.Royalblue), true
	case ecs.Has(w, e, component.FlammableComponent.Kind()):
		return colornames.Saddlebrown, true
	case ecs.Has(w, e, component.MovableComponent.Kind()):
		return colornames.Peru, true
	case ecs.Has(w, e, component.CheckpointMarkerComponent.Kind()):
		return colornames.Mediumpurple, true
	case ecs.Has(w, e, component.SignpostComponent.Kind()):
		return colornames.Sienna, true
	case ecs.Has(w, e, component.TrophyComponent.Kind()):
		return colornames.Goldenrod, true
	case ecs.Has(w, e, component.AbilityOrbComponent.Kind()):
		orb, _ := ecs.Get(w, e, component.AbilityOrbComponent.Kind())
		return orbColors[orb.Unlock], true
	case ecs.Has(w, e, component.ForceAreaComponent.Kind()):
		return color.RGBA{R: 0xe0, G: 0xff, B: 0xff, A: 0x40}, true
	case ecs.Has(w, e, component.HurtboxComponent.Kind()):
		return colornames.Silver, true
	case ecs.Has(w, e, component.TerrainComponent.Kind()):
		return colornames.Dimgray, true
	}
	return nil, false
}

// flicker alternates between two colours on even and odd frames.
func flicker(w *ecs.World, e ecs.Entity, a, b color.RGBA) color.RGBA {
	if anim, ok := ecs.Get(w, e, component.AnimatedComponent.Kind()); ok && anim.Frame%2 == 1 {
		return b
	}
	return a
}

func (r *Renderer) drawEffects(screen *ebiten.Image) {
	for _, fx := range r.Effects.live {
		c := fx.color
		c.A = uint8(float32(255) * fx.alpha)
		// vector expects premultiplied alpha
		c.R = uint8(float32(c.R) * fx.alpha)
		c.G = uint8(float32(c.G) * fx.alpha)
		c.B = uint8(float32(c.B) * fx.alpha)
		r.fillRect(screen, fx.x, fx.y, fx.size, fx.size, c)
	}
}

// textRise lifts proximity text above its entity, in world units.
const textRise = 20.0

// debugGlyphWidth is the advance of ebitenutil's debug font.
const debugGlyphWidth = 6

type placedText struct {
	text string
	x, y int
}

// visibleTexts returns every shown proximity text centred above its entity
// in screen space.
func (r *Renderer) visibleTexts(w *ecs.World, screenW, screenH int) []placedText {
	var out []placedText
	ecs.ForEach2(w, component.ProximityTextComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pt *component.ProximityText, t *component.Transform) {
		if !pt.Visible || pt.Text == "" {
			return
		}
		widest := 0
		for _, line := range strings.Split(pt.Text, "\n") {
			widest = max(widest, len(line))
		}
		sx, sy := r.Camera.ToScreen(t.X, t.Y+textRise, screenW, screenH)
		out = append(out, placedText{text: pt.Text, x: int(sx) - widest*debugGlyphWidth/2, y: int(sy)})
	})
	return out
}

func (r *Renderer) drawTexts(screen *ebiten.Image, w *ecs.World) {
	for _, pt := range r.visibleTexts(w, screen.Bounds().Dx(), screen.Bounds().Dy()) {
		ebitenutil.DebugPrintAt(screen, pt.text, pt.x, pt.y)
	}
}

// DrawHUD prints lines of text in the top-left corner.
func DrawHUD(screen *ebiten.Image, lines []string) {
	if screen == nil || len(lines) == 0 {
		return
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 10, 10)
}
