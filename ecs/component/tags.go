package component

// Flammable marks a world object destroyed by fire projectiles.
type Flammable struct{}

var FlammableComponent = NewComponent[Flammable]()

// Terrain marks static level geometry.
type Terrain struct{}

var TerrainComponent = NewComponent[Terrain]()

// Movable marks a pushable block.
type Movable struct{}

var MovableComponent = NewComponent[Movable]()

type Lava struct{}

var LavaComponent = NewComponent[Lava]()

type Water struct{}

var WaterComponent = NewComponent[Water]()

// Killed marks a player between lethal contact and respawn.
type Killed struct{}

var KilledComponent = NewComponent[Killed]()

// RestartRequest asks the respawn system to return the player to the
// checkpoint without dying first.
type RestartRequest struct{}

var RestartRequestComponent = NewComponent[RestartRequest]()
