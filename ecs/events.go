package ecs

// Event is a generic gameplay notification raised by a system for the host.
type Event struct {
	Type string
	Data any
}

const (
	EventPlayerKilled    = "player_killed"
	EventPlayerRespawned = "player_respawned"
	EventCheckpointSaved = "checkpoint_saved"
	EventOrbCollected    = "orb_collected"
	EventTrophyReached   = "trophy_reached"
)

// CollisionEventKind identifies collision event types.
type CollisionEventKind uint8

const (
	CollisionStarted CollisionEventKind = iota + 1
	CollisionStopped
)

func (k CollisionEventKind) String() string {
	switch k {
	case CollisionStarted:
		return "started"
	case CollisionStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// CollisionEvent reports a change in contact between two entities. The order
// of A and B carries no meaning.
type CollisionEvent struct {
	Kind CollisionEventKind
	A    Entity
	B    Entity
}

// Other returns the participant that is not e.
func (c CollisionEvent) Other(e Entity) (Entity, bool) {
	switch e {
	case c.A:
		return c.B, true
	case c.B:
		return c.A, true
	}
	return 0, false
}

// EventQueue holds the notifications of one tick. Collision events are read
// by several systems, so reading them does not consume them.
type EventQueue struct {
	items      []Event
	collisions []CollisionEvent
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// PushCollision records a collision notification for this tick.
func (q *EventQueue) PushCollision(evt CollisionEvent) {
	if q == nil {
		return
	}
	q.collisions = append(q.collisions, evt)
}

// Collisions returns this tick's collision notifications in arrival order.
func (q *EventQueue) Collisions() []CollisionEvent {
	if q == nil {
		return nil
	}
	return q.collisions
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
	q.collisions = nil
}
