package system

// DebugSettings are developer overrides passed explicitly to the systems
// that honour them.
type DebugSettings struct {
	// Flying honours every jump request regardless of ground contact.
	Flying bool
	// Immortal ignores lethal contact.
	Immortal bool
	// UnlockCamera lets the host zoom the camera freely.
	UnlockCamera bool
	// UnlockAllAbilities lets any combination be selected.
	UnlockAllAbilities bool
}
