// Package state holds the shared game state of a run: score, lives,
// collected years, lane count, speed and run status.
//
// The simulation core talks to it only through the Store interface; the
// concrete Session adds run control, progression and the shop on top.
// A Session is owned by a single game loop and is not safe for concurrent use.
package state

// Status is the run status.
type Status int

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusShop
	StatusGameOver
	StatusVictory
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "MENU"
	case StatusPlaying:
		return "PLAYING"
	case StatusShop:
		return "SHOP"
	case StatusGameOver:
		return "GAME_OVER"
	case StatusVictory:
		return "VICTORY"
	default:
		return "UNKNOWN"
	}
}

// Ended reports whether the status terminates a run.
func (s Status) Ended() bool {
	return s == StatusGameOver || s == StatusVictory
}

// Store is the state surface consumed by the simulation core.
type Store interface {
	// AddScore adds collected points.
	AddScore(amount int)
	// TakeDamage removes one life; reaching zero ends the run.
	TakeDamage()
	// CollectLetter marks a target index as collected.
	CollectLetter(index int)
	// SetDistance publishes the distance traveled in the current run.
	SetDistance(value int)

	Speed() float64
	LaneCount() int
	CollectedLetters() []int
	Status() Status
	HasDoubleJump() bool
	IsImmortalityActive() bool
}
