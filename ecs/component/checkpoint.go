package component

// CheckpointMarker is a touchable save point.
type CheckpointMarker struct {
	// Lift is added to y when the position is stored so the player does not
	// respawn inside the floor.
	Lift float64
	// Occupied is set while the player overlaps the marker.
	Occupied bool
}

var CheckpointMarkerComponent = NewComponent[CheckpointMarker]()
