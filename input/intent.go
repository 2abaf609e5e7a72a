package input

// Action is a semantic input resolved once at the key-mapping boundary
// The simulation only ever sees Actions, never raw key codes
type Action uint8

const (
	ActionNone Action = iota

	// Simulation actions
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionFire

	// Frontend actions, ignored by the simulation
	ActionQuit
	ActionToggleMute

	actionCount
)

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}
