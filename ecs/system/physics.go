package system

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/elemental/common"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
)

const collisionTypeEntity cp.CollisionType = 1

const defaultBodySize = 16.0

// PhysicsSystem mirrors RigidBody components into a Chipmunk2D space, steps
// it by the scaled tick delta and reports contact changes as collision
// events on the world queue.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity

	events *ecs.EventQueue
}

type bodyInfo struct {
	body      *cp.Body
	shape     *cp.Shape
	bodyType  component.BodyType
	filter    cp.ShapeFilter
	parent    *bodyInfo
	owned     bool
	ghost     bool
	offsetX   float64
	offsetY   float64
	noGravity bool
}

func NewPhysicsSystem() *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})
	return &PhysicsSystem{
		space:    space,
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// BodyCount returns the number of entities mirrored into the space.
func (ps *PhysicsSystem) BodyCount() int {
	if ps == nil {
		return 0
	}
	return len(ps.entities)
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.events = w.Events()
	defer func() { ps.events = nil }()

	ps.ensureHandlers()
	ps.cleanupEntities(w)
	ps.syncEntities(w)
	ps.applyTeleports(w)

	if dt := w.Delta().Seconds(); dt > 0 {
		ps.space.Step(dt)
	}

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypeEntity, collisionTypeEntity)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		a, b := arb.Shapes()
		ea, okA := sys.shapes[a]
		eb, okB := sys.shapes[b]
		if !okA || !okB {
			return true
		}
		sys.push(ecs.CollisionEvent{Kind: ecs.CollisionStarted, A: ea, B: eb})
		// projectiles report contact but never push anything
		return !sys.isGhost(ea) && !sys.isGhost(eb)
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return
		}
		a, b := arb.Shapes()
		ea, okA := sys.shapes[a]
		eb, okB := sys.shapes[b]
		if !okA || !okB {
			return
		}
		sys.push(ecs.CollisionEvent{Kind: ecs.CollisionStopped, A: ea, B: eb})
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) push(evt ecs.CollisionEvent) {
	if ps.events == nil {
		return
	}
	ps.events.PushCollision(evt)
}

func (ps *PhysicsSystem) isGhost(e ecs.Entity) bool {
	info := ps.entities[e]
	return info != nil && info.ghost
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	dt := w.Delta().Seconds()

	// parents first so children can attach to their bodies
	var children []ecs.Entity
	for _, e := range w.Query(component.RigidBodyComponent.Kind(), component.TransformComponent.Kind()) {
		if ecs.Has(w, e, component.ParentComponent.Kind()) {
			children = append(children, e)
			continue
		}
		ps.syncEntity(w, e, dt)
	}
	for _, e := range children {
		ps.syncEntity(w, e, dt)
	}
}

func (ps *PhysicsSystem) syncEntity(w *ecs.World, e ecs.Entity, dt float64) {
	rb, ok := ecs.Get(w, e, component.RigidBodyComponent.Kind())
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}

	filter := shapeFilter(w, e)
	ghost := ecs.Has(w, e, component.ProjectileComponent.Kind())

	info := ps.entities[e]
	if info != nil && (info.bodyType != rb.Type || info.noGravity != rb.NoGravity) {
		ps.removeEntity(e)
		info = nil
	}
	if info == nil {
		info = ps.createBodyInfo(w, e, transform, rb)
		if info == nil {
			return
		}
		info.filter = filter
		info.ghost = ghost
		info.shape.SetFilter(filter)
		ps.entities[e] = info
		ps.shapes[info.shape] = e
		ps.space.AddShape(info.shape)
	} else if info.filter != filter {
		info.filter = filter
		info.shape.SetFilter(filter)
	}
	info.ghost = ghost
	rb.Body = info.body
	rb.Shape = info.shape

	if !info.owned || info.bodyType == component.BodyStatic || info.bodyType == component.BodySensor {
		return
	}

	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		if a, ok := ecs.Get(w, e, component.AccelerationComponent.Kind()); ok && dt > 0 {
			v.X += a.X * dt
			v.Y += a.Y * dt
		}
		info.body.SetVelocity(v.X, v.Y)
	}
}

func (ps *PhysicsSystem) createBodyInfo(w *ecs.World, e ecs.Entity, transform *component.Transform, rb *component.RigidBody) *bodyInfo {
	if ps.space == nil {
		return nil
	}

	width, height := rb.Width, rb.Height
	if width <= 0 || height <= 0 {
		width, height = defaultBodySize, defaultBodySize
	}
	bb := func(cx, cy float64) cp.BB {
		return cp.BB{L: cx - width/2, B: cy - height/2, R: cx + width/2, T: cy + height/2}
	}

	info := &bodyInfo{
		bodyType:  rb.Type,
		offsetX:   rb.OffsetX,
		offsetY:   rb.OffsetY,
		noGravity: rb.NoGravity,
	}

	if parent, ok := ecs.Get(w, e, component.ParentComponent.Kind()); ok {
		parentInfo := ps.entities[ecs.Entity(parent.Entity)]
		if parentInfo == nil || !parentInfo.owned {
			return nil
		}
		info.body = parentInfo.body
		info.parent = parentInfo
		info.shape = cp.NewBox2(info.body, bb(rb.OffsetX, rb.OffsetY), 0)
		info.shape.SetSensor(rb.Type == component.BodySensor)
		ps.configureShape(info.shape, rb)
		return info
	}

	cx := transform.X + rb.OffsetX
	cy := transform.Y + rb.OffsetY

	switch rb.Type {
	case component.BodyStatic, component.BodySensor:
		info.body = ps.space.StaticBody
		info.shape = cp.NewBox2(info.body, bb(cx, cy), 0)
		info.shape.SetSensor(rb.Type == component.BodySensor)
		ps.configureShape(info.shape, rb)
		return info
	case component.BodyKinematic:
		info.body = cp.NewKinematicBody()
	default:
		mass := rb.Mass
		if mass <= 0 {
			mass = 1
		}
		// rotation is locked for every platformer body
		info.body = cp.NewBody(mass, math.Inf(1))
		if rb.NoGravity {
			info.body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
				cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
			})
		}
	}

	info.owned = true
	info.body.SetPosition(cp.Vector{X: cx, Y: cy})
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		info.body.SetVelocity(v.X, v.Y)
	}
	ps.space.AddBody(info.body)

	info.shape = cp.NewBox(info.body, width, height, 0)
	ps.configureShape(info.shape, rb)
	return info
}

func (ps *PhysicsSystem) configureShape(shape *cp.Shape, rb *component.RigidBody) {
	shape.SetFriction(rb.Friction)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeEntity)
}

func shapeFilter(w *ecs.World, e ecs.Entity) cp.ShapeFilter {
	layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
	if !ok {
		return cp.ShapeFilter{Categories: uint(component.LayerTerrain), Mask: uint(component.LayerAll)}
	}
	return cp.ShapeFilter{Categories: uint(layer.Category), Mask: uint(layer.Mask)}
}

// applyTeleports moves bodies with a pending Teleport. Shapes are detached
// and re-added so stale contacts are reported as stopped right away.
func (ps *PhysicsSystem) applyTeleports(w *ecs.World) {
	for _, e := range w.Query(component.TeleportComponent.Kind()) {
		tp, _ := ecs.Get(w, e, component.TeleportComponent.Kind())
		info := ps.entities[e]
		if info != nil && info.owned {
			attached := ps.shapesOn(info.body)
			for _, shape := range attached {
				ps.space.RemoveShape(shape)
			}
			info.body.SetPosition(cp.Vector{X: tp.X + info.offsetX, Y: tp.Y + info.offsetY})
			info.body.SetVelocity(0, 0)
			for _, shape := range attached {
				ps.space.AddShape(shape)
			}
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.X, t.Y = tp.X, tp.Y
		}
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			v.X, v.Y = 0, 0
		}
		ecs.Remove(w, e, component.TeleportComponent.Kind())
	}
}

func (ps *PhysicsSystem) shapesOn(body *cp.Body) []*cp.Shape {
	var out []*cp.Shape
	for _, e := range ps.sortedEntities() {
		if info := ps.entities[e]; info.body == body && info.shape != nil {
			out = append(out, info.shape)
		}
	}
	return out
}

// sortedEntities returns mirrored entities in handle order so space
// mutations, and the events they raise, happen in a stable order.
func (ps *PhysicsSystem) sortedEntities() []ecs.Entity {
	out := make([]ecs.Entity, 0, len(ps.entities))
	for e := range ps.entities {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.body == nil || info.body == ps.space.StaticBody {
			continue
		}
		pos := info.body.Position()
		x, y := pos.X-info.offsetX, pos.Y-info.offsetY
		if info.parent != nil {
			x = pos.X - info.parent.offsetX + info.offsetX
			y = pos.Y - info.parent.offsetY + info.offsetY
		}
		if transform, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			transform.X, transform.Y = x, y
		}
		if !info.owned {
			continue
		}
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			vel := info.body.Velocity()
			v.X, v.Y = vel.X, vel.Y
		}
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for _, e := range ps.sortedEntities() {
		info := ps.entities[e]
		if info == nil {
			continue
		}
		if !w.IsAlive(e) || !ecs.Has(w, e, component.RigidBodyComponent.Kind()) {
			ps.removeEntity(e)
		}
	}
}

// removeEntity takes e's shape out of the space, along with every child
// shape riding on a body e owns. Separate callbacks fire for live contacts.
func (ps *PhysicsSystem) removeEntity(e ecs.Entity) {
	info := ps.entities[e]
	if info == nil {
		return
	}
	if info.owned {
		for _, child := range ps.sortedEntities() {
			if ci := ps.entities[child]; child != e && ci.parent == info {
				ps.removeShape(child, ci)
			}
		}
	}
	ps.removeShape(e, info)
	if info.owned && info.body != nil {
		ps.space.RemoveBody(info.body)
	}
}

func (ps *PhysicsSystem) removeShape(e ecs.Entity, info *bodyInfo) {
	if info.shape != nil {
		ps.space.RemoveShape(info.shape)
		delete(ps.shapes, info.shape)
	}
	delete(ps.entities, e)
}
