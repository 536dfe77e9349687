package ecs

import (
	"time"

	"github.com/milk9111/elemental/ecs/component"
)

// World owns entities, their component stores, the per-tick event queue and
// the scaled elapsed time of the current tick.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue

	delta     time.Duration
	timeScale float64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:    make(map[component.ComponentID]*SparseSet),
		timeScale: 1,
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and retires its handle.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	id := int(e.id())
	for _, store := range w.stores {
		store.Remove(id)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in slot order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetDelta records the raw elapsed time for the tick about to run. The
// stored value is scaled by the current time scale.
func (w *World) SetDelta(d time.Duration) {
	if w == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	w.delta = time.Duration(float64(d) * w.timeScale)
}

// Delta returns the scaled elapsed time of the current tick.
func (w *World) Delta() time.Duration {
	if w == nil {
		return 0
	}
	return w.delta
}

// SetTimeScale sets the multiplier applied to elapsed time. Zero freezes
// every timer and the physics step without suspending systems.
func (w *World) SetTimeScale(scale float64) {
	if w == nil {
		return
	}
	if scale < 0 {
		scale = 0
	}
	w.timeScale = scale
}

func (w *World) TimeScale() float64 {
	if w == nil {
		return 0
	}
	return w.timeScale
}

// EndTick drops the events produced during the tick.
func (w *World) EndTick() {
	if w == nil {
		return
	}
	w.events.flush()
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s := w.stores[id]
	if s == nil && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddComponent stores value for e under kind, replacing any previous value.
func (w *World) AddComponent(e Entity, kind component.AnyKind, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if kind == nil || kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind.ID(), true).Set(int(e.id()), value)
	return nil
}

// RemoveComponent reports whether a component was removed.
func (w *World) RemoveComponent(e Entity, kind component.AnyKind) bool {
	if !w.HasComponent(e, kind) {
		return false
	}
	w.store(kind.ID(), false).Remove(int(e.id()))
	return true
}

func (w *World) HasComponent(e Entity, kind component.AnyKind) bool {
	if w == nil || kind == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Has(int(e.id()))
}

func (w *World) GetComponent(e Entity, kind component.AnyKind) (any, bool) {
	if !w.HasComponent(e, kind) {
		return nil, false
	}
	return w.store(kind.ID(), false).Get(int(e.id())), true
}
