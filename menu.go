package main

import (
	"errors"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/elemental/common"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/sim"
	"golang.org/x/image/font/basicfont"
)

var (
	menuEquipment = []component.Equipment{component.EquipmentNone, component.EquipmentStaff, component.EquipmentBoots, component.EquipmentCloak}
	menuElements  = []component.Element{component.ElementNone, component.ElementFire, component.ElementAir, component.ElementWater}
)

// AbilityMenu is the checkpoint menu for picking an equipment and element.
// It reads and writes the combination through the simulation only.
type AbilityMenu struct {
	ui  *ebitenui.UI
	sim *sim.Simulation

	equipment   map[component.Equipment]*widget.Button
	elements    map[component.Element]*widget.Button
	description *widget.Text
	status      *widget.Text
}

func NewAbilityMenu(s *sim.Simulation) *AbilityMenu {
	m := &AbilityMenu{
		sim:       s,
		equipment: make(map[component.Equipment]*widget.Button),
		elements:  make(map[component.Element]*widget.Button),
	}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	pressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	newButton := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: pressedImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { onClick() }),
		)
	}
	newRow := func() *widget.Container {
		return widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewGridLayout(
				widget.GridLayoutOpts.Columns(len(menuEquipment)),
				widget.GridLayoutOpts.Spacing(8, 8),
			)),
			widget.ContainerOpts.WidgetOpts(center),
		)
	}

	title := widget.NewText(
		widget.TextOpts.Text("Abilities", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)

	equipRow := newRow()
	for _, eq := range menuEquipment {
		btn := newButton(eq.String(), func() { m.selectEquipment(eq) })
		m.equipment[eq] = btn
		equipRow.AddChild(btn)
	}
	elemRow := newRow()
	for _, el := range menuElements {
		btn := newButton(el.String(), func() { m.selectElement(el) })
		m.elements[el] = btn
		elemRow.AddChild(btn)
	}

	m.description = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	m.status = widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xff, G: 0x80, B: 0x80, A: 0xff}),
		widget.TextOpts.WidgetOpts(center),
	)

	closeBtn := newButton("Close", func() {
		if err := m.sim.CloseMenu(); err != nil && !errors.Is(err, sim.ErrMenuClosed) {
			log.Printf("AbilityMenu: close: %v", err)
		}
	})
	closeBtn.GetWidget().LayoutData = widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(equipRow)
	panel.AddChild(elemRow)
	panel.AddChild(m.description)
	panel.AddChild(m.status)
	panel.AddChild(closeBtn)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	m.ui = &ebitenui.UI{Container: root}
	return m
}

func (m *AbilityMenu) UI() *ebitenui.UI {
	return m.ui
}

func (m *AbilityMenu) player() (*component.Player, bool) {
	return ecs.Get(m.sim.World(), m.sim.Player(), component.PlayerComponent.Kind())
}

func (m *AbilityMenu) selectEquipment(eq component.Equipment) {
	p, ok := m.player()
	if !ok {
		return
	}
	m.choose(component.Combination{Equipment: eq, Element: p.Combination.Element})
}

func (m *AbilityMenu) selectElement(el component.Element) {
	p, ok := m.player()
	if !ok {
		return
	}
	m.choose(component.Combination{Equipment: p.Combination.Equipment, Element: el})
}

func (m *AbilityMenu) choose(c component.Combination) {
	m.status.Label = ""
	if err := m.sim.SelectCombination(c); err != nil {
		if errors.Is(err, sim.ErrLocked) {
			m.status.Label = "Locked"
			return
		}
		log.Printf("AbilityMenu: select %s: %v", c, err)
	}
	m.Refresh()
}

// Refresh relabels the buttons from the player's unlocks and combination.
func (m *AbilityMenu) Refresh() {
	p, ok := m.player()
	if !ok {
		return
	}
	unlockAll := m.sim.Debug().UnlockAllAbilities
	for eq, btn := range m.equipment {
		btn.Text().Label = optionLabel(eq.String(), p.Combination.Equipment == eq, unlockAll || p.HasEquipment(eq))
	}
	for el, btn := range m.elements {
		btn.Text().Label = optionLabel(el.String(), p.Combination.Element == el, unlockAll || p.HasElement(el))
	}
	m.description.Label = p.Combination.String() + ": " + p.Combination.Description()
}

func optionLabel(name string, selected, owned bool) string {
	switch {
	case selected:
		return "[" + name + "]"
	case !owned:
		return "?"
	}
	return name
}
