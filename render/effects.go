package render

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/colornames"
)

const effectSeconds = 0.4

type effect struct {
	x, y   float64
	size   float64
	color  color.RGBA
	fade   *gween.Tween
	alpha  float32
	rising bool
}

// Effects implements the cosmetic effect collaborator: each effect is a
// square that fades out.
type Effects struct {
	live []*effect
}

func NewEffects() *Effects {
	return &Effects{}
}

var effectStyles = map[string]struct {
	size   float64
	color  color.RGBA
	rising bool
}{
	"jump_dust": {size: 6, color: colornames.Burlywood},
	"explosion": {size: 14, color: colornames.Orangered},
	"puff":      {size: 8, color: colornames.Whitesmoke},
	"steam":     {size: 12, color: colornames.Lightgray, rising: true},
}

func (e *Effects) Spawn(name string, x, y float64) {
	style, ok := effectStyles[name]
	if !ok {
		style.size, style.color = 6, colornames.White
	}
	e.live = append(e.live, &effect{
		x:      x,
		y:      y,
		size:   style.size,
		color:  style.color,
		rising: style.rising,
		alpha:  1,
		fade:   gween.New(1, 0, effectSeconds, ease.OutQuad),
	})
}

// Update advances every effect by dt seconds and drops finished ones.
func (e *Effects) Update(dt float64) {
	kept := e.live[:0]
	for _, fx := range e.live {
		a, done := fx.fade.Update(float32(dt))
		if done {
			continue
		}
		fx.alpha = a
		if fx.rising {
			fx.y += 20 * dt
		}
		kept = append(kept, fx)
	}
	e.live = kept
}

func (e *Effects) Len() int {
	return len(e.live)
}
