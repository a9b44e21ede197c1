package ski

import "github.com/vovakirdan/ski-runner/internal/core"

// Event is a transient signal raised during a tick.
type Event interface {
	skiEvent()
}

// PlayerHit is raised when an obstacle touches the grounded player.
type PlayerHit struct {
	Object ObjectID
}

func (PlayerHit) skiEvent() {}

// RampContact is raised when the grounded player rides onto a ramp.
type RampContact struct {
	Object ObjectID
}

func (RampContact) skiEvent() {}

// ParticleBurst asks presentation to spray particles at a position.
type ParticleBurst struct {
	Position core.Vec3
	Color    string
}

func (ParticleBurst) skiEvent() {}

// PlayerDamaged is raised after a hit costs the player a life.
type PlayerDamaged struct {
	Position core.Vec3
}

func (PlayerDamaged) skiEvent() {}

// Cue names a sound effect.
type Cue string

const (
	CueJump       Cue = "jump"
	CueDoubleJump Cue = "double_jump"
	CueDamage     Cue = "damage"
	CueCash       Cue = "cash"
	CueYear       Cue = "year"
)

// SoundEvent asks the audio layer to play a cue.
type SoundEvent struct {
	Cue Cue
}

func (SoundEvent) skiEvent() {}

// EventSink receives events synchronously, in emission order.
type EventSink interface {
	Emit(e Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(e Event)

// Emit calls f(e).
func (f EventSinkFunc) Emit(e Event) { f(e) }

type discardSink struct{}

func (discardSink) Emit(Event) {}
