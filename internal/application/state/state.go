// Package state tracks where a scene is in its play cycle.
package state

// GameState represents the current state of a scene
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Machine holds the state and the transitions allowed from it
type Machine struct {
	current GameState
	ticks   int
}

// NewMachine starts in StatePlaying
func NewMachine() *Machine {
	return &Machine{current: StatePlaying}
}

// Current returns the active state
func (m *Machine) Current() GameState { return m.current }

// Is reports whether the active state is s
func (m *Machine) Is(s GameState) bool { return m.current == s }

// Ticks returns the number of ticks spent in the active state
func (m *Machine) Ticks() int { return m.ticks }

// Tick counts one update in the active state
func (m *Machine) Tick() { m.ticks++ }

// TogglePause switches between playing and paused.
// Game over cannot be paused.
func (m *Machine) TogglePause() bool {
	switch m.current {
	case StatePlaying:
		m.set(StatePaused)
	case StatePaused:
		m.set(StatePlaying)
	default:
		return false
	}
	return true
}

// GameOver ends play. It is a no-op once over.
func (m *Machine) GameOver() bool {
	if m.current == StateGameOver {
		return false
	}
	m.set(StateGameOver)
	return true
}

// Restart returns to playing after game over
func (m *Machine) Restart() bool {
	if m.current != StateGameOver {
		return false
	}
	m.set(StatePlaying)
	return true
}

func (m *Machine) set(s GameState) {
	m.current = s
	m.ticks = 0
}
