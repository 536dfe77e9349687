package component

// Parent links a child entity to the entity whose body carries its shape.
// Entity holds an ecs.Entity value.
type Parent struct {
	Entity uint64
}

var ParentComponent = NewComponent[Parent]()

// Children lists entities destroyed together with their parent.
type Children struct {
	Entities []uint64
}

var ChildrenComponent = NewComponent[Children]()
