package input

// State tracks held keys and the fire latch
// Movement is level-triggered via Held; fire is edge-triggered via TryFire
type State struct {
	held   map[string]Action
	counts [actionCount]int

	// fireLatched blocks repeated fire until a fire key is released
	fireLatched bool
}

// NewState creates an empty input state
func NewState() *State {
	return &State{
		held: make(map[string]Action),
	}
}

// SetKey records whether key is held; action is the key's resolved binding
// Keys bound to ActionNone are tracked but never affect movement or fire
func (s *State) SetKey(key string, action Action, down bool) {
	if action >= actionCount {
		action = ActionNone
	}

	if down {
		if _, ok := s.held[key]; ok {
			return
		}
		s.held[key] = action
		s.counts[action]++
		return
	}

	if prev, ok := s.held[key]; ok {
		delete(s.held, key)
		s.counts[prev]--
		action = prev
	}

	if action == ActionFire {
		s.fireLatched = false
	}
}

// Held reports whether any key bound to a is currently held
func (s *State) Held(a Action) bool {
	if a == ActionNone || a >= actionCount {
		return false
	}
	return s.counts[a] > 0
}

// TryFire returns true once per fire press and latches until release
func (s *State) TryFire() bool {
	if !s.Held(ActionFire) || s.fireLatched {
		return false
	}
	s.fireLatched = true
	return true
}

// Latched reports whether the fire latch is set
func (s *State) Latched() bool {
	return s.fireLatched
}

// Reset releases every key and clears the latch
func (s *State) Reset() {
	clear(s.held)
	s.counts = [actionCount]int{}
	s.fireLatched = false
}
