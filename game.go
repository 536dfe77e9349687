package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/elemental/assets"
	"github.com/milk9111/elemental/common"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/ecs/entity"
	"github.com/milk9111/elemental/ecs/system"
	"github.com/milk9111/elemental/input"
	"github.com/milk9111/elemental/levels"
	"github.com/milk9111/elemental/prefabs"
	"github.com/milk9111/elemental/render"
	"github.com/milk9111/elemental/save"
	"github.com/milk9111/elemental/sim"
)

const saveName = "elemental"

// Options are the command line switches the game starts with.
type Options struct {
	Debug     bool
	Abilities bool
	Fly       bool
	Immortal  bool
	Level     string
	Fresh     bool
}

type Game struct {
	sim      *sim.Simulation
	renderer *render.Renderer
	menu     *AbilityMenu
	sounds   *assets.Sounds
	watcher  *prefabs.Watcher

	showPhysics bool
	menuShown   bool
	frames      int
	lastEvent   string
}

func NewGame(opts Options) (*Game, error) {
	specs, err := entity.LoadSpecs()
	if err != nil {
		log.Printf("Game: specs: %v (using defaults where missing)", err)
	}
	set, err := levels.Load()
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}

	store, err := save.Open(saveName)
	if err != nil {
		log.Printf("Game: %v (progress will not be saved)", err)
		store = nil
	}
	if opts.Fresh && store != nil {
		if err := store.Clear(); err != nil {
			log.Printf("Game: clear save: %v", err)
		}
	}

	g := &Game{
		renderer:    render.NewRenderer(),
		sounds:      assets.NewSounds(0.5),
		showPhysics: opts.Debug,
	}

	simOpts := sim.Options{
		Specs:  specs,
		Levels: set,
		Debug: system.DebugSettings{
			Flying:             opts.Fly,
			Immortal:           opts.Immortal,
			UnlockCamera:       opts.Debug,
			UnlockAllAbilities: opts.Abilities,
		},
		StartLevel: opts.Level,
		Sounds:     g.sounds,
		Effects:    g.renderer.Effects,
	}
	if store != nil {
		simOpts.Saver = store
		if opts.Level == "" {
			progress, err := store.Load()
			if err != nil {
				log.Printf("Game: %v", err)
			} else if progress != nil {
				cp := progress.Checkpoint()
				simOpts.Checkpoint = &cp
				simOpts.Unlocked = progress.Unlocked
			}
		}
	}

	g.sim, err = sim.New(simOpts)
	if err != nil {
		return nil, err
	}
	g.menu = NewAbilityMenu(g.sim)
	g.renderer.Camera.Free = opts.Debug
	if x, y, ok := g.playerPosition(); ok {
		g.renderer.Camera.Snap(x, y)
	}

	if w, err := prefabs.NewWatcher("prefabs"); err != nil {
		log.Printf("Game: prefab hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}

	g.sounds.Loop(system.SoundBGM)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	g.pollSpecs()

	frame := input.Read(input.Ebiten{})
	if frame.Debug {
		g.showPhysics = !g.showPhysics
	}

	if g.sim.MenuOpen() {
		g.menu.UI().Update()
		if frame.Close || frame.Intent.Interact {
			if err := g.sim.CloseMenu(); err != nil && !errors.Is(err, sim.ErrMenuClosed) {
				log.Printf("Game: %v", err)
			}
		}
		frame.Intent = sim.Intent{}
	}

	events := g.sim.Tick(common.FixedStep, frame.Intent)
	for _, evt := range events {
		g.handleEvent(evt)
	}

	g.syncMenu()
	g.updateCamera()
	g.renderer.Effects.Update(common.FixedStep.Seconds())
	return nil
}

func (g *Game) pollSpecs() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			specs, err := entity.LoadSpecs()
			if err != nil {
				log.Printf("Game: reload %s: %v", name, err)
				continue
			}
			g.sim.ApplySpecs(specs)
			log.Printf("Game: reloaded %s", name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("Game: prefab watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) handleEvent(evt ecs.Event) {
	g.lastEvent = evt.Type
	switch evt.Type {
	case ecs.EventPlayerKilled, ecs.EventPlayerRespawned, ecs.EventCheckpointSaved:
		log.Printf("Game: %s", evt.Type)
	case ecs.EventOrbCollected:
		log.Printf("Game: %s %v", evt.Type, evt.Data)
	}
}

// syncMenu refreshes the menu and drives the camera zoom on open and close.
func (g *Game) syncMenu() {
	open := g.sim.MenuOpen()
	if open == g.menuShown {
		return
	}
	g.menuShown = open
	if open {
		g.menu.Refresh()
		g.renderer.Camera.ZoomTo(render.MenuZoom)
		return
	}
	g.renderer.Camera.ZoomTo(render.DefaultZoom)
}

func (g *Game) updateCamera() {
	cam := g.renderer.Camera
	if cam.Free {
		_, dy := ebiten.Wheel()
		if dy != 0 {
			cam.Zoom *= 1 + dy*0.1
		}
	}

	x, y, ok := g.playerPosition()
	if !ok {
		return
	}
	if c, ok := ecs.Get(g.sim.World(), g.sim.Player(), component.ControllableComponent.Kind()); ok && !c.CameraFollow {
		return
	}
	cam.Follow(x, y, common.FixedStep.Seconds())
}

func (g *Game) playerPosition() (float64, float64, bool) {
	t, ok := ecs.Get(g.sim.World(), g.sim.Player(), component.TransformComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	return t.X, t.Y, true
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.sim.World())
	if g.showPhysics {
		g.renderer.DrawPhysicsDebug(screen, g.sim.Physics().Space())
	}
	render.DrawHUD(screen, g.hudLines())
	if g.sim.MenuOpen() {
		g.menu.UI().Draw(screen)
	}
}

func (g *Game) hudLines() []string {
	lines := []string{fmt.Sprintf("FPS: %.0f  Level: %s", ebiten.ActualFPS(), g.sim.Level())}
	if p, ok := ecs.Get(g.sim.World(), g.sim.Player(), component.PlayerComponent.Kind()); ok {
		lines = append(lines, fmt.Sprintf("%s: %s", p.Combination, p.Combination.Description()))
		if p.NearCheckpoint && !g.sim.MenuOpen() {
			lines = append(lines, "E: abilities")
		}
	}
	if g.showPhysics {
		lines = append(lines,
			fmt.Sprintf("entities: %d  bodies: %d", len(ecs.Entities(g.sim.World())), g.sim.Physics().BodyCount()),
			"last event: "+g.lastEvent,
		)
	}
	return lines
}

// Close releases the prefab watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
