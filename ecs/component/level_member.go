package component

// LevelMember ties an entity to the level that spawned it so the level can
// be torn down and rebuilt.
type LevelMember struct {
	Level string
}

var LevelMemberComponent = NewComponent[LevelMember]()

// LevelReloadRequest asks for a level to be torn down and rebuilt from data.
type LevelReloadRequest struct {
	Level string
}

var LevelReloadRequestComponent = NewComponent[LevelReloadRequest]()
