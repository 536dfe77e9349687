package component

type Enemy struct{}

var EnemyComponent = NewComponent[Enemy]()

// Patrol walks an enemy back and forth between two x coordinates. A patrol
// without points stands still.
type Patrol struct {
	HasPoints bool
	MinX      float64
	MaxX      float64
	Speed     float64
	FaceLeft  bool
}

var PatrolComponent = NewComponent[Patrol]()
