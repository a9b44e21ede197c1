package ski

import (
	"math"

	"github.com/vovakirdan/ski-runner/internal/config"
	"github.com/vovakirdan/ski-runner/internal/core"
	"github.com/vovakirdan/ski-runner/internal/state"
)

// Player is the skier: lane steering, jump physics and damage immunity.
// The player stays at Z = 0; the world scrolls past it.
type Player struct {
	cfg   *config.SkiConfig
	store state.Store
	sink  EventSink

	lane     int
	x        float64 // smoothed toward lane*LaneWidth
	y        float64 // height above the snow, never negative
	vy       float64
	jumping  bool
	jumps    int
	flipping bool // ramp jump in progress
	placed   bool

	clock           float64
	invincible      bool
	invincibleSince float64

	lastStatus state.Status
}

// NewPlayer creates a player bound to store. A nil sink discards events.
func NewPlayer(cfg *config.SkiConfig, store state.Store, sink EventSink) *Player {
	if sink == nil {
		sink = discardSink{}
	}
	return &Player{
		cfg:        cfg,
		store:      store,
		sink:       sink,
		lastStatus: store.Status(),
	}
}

// Reset puts the player back in the center lane on the ground.
func (p *Player) Reset() {
	p.lane = 0
	p.x = 0
	p.invincible = false
	p.invincibleSince = 0
	p.land()
}

func (p *Player) land() {
	p.y = 0
	p.vy = 0
	p.jumping = false
	p.jumps = 0
	p.flipping = false
}

func (p *Player) halfLanes() int {
	return core.HalfLanes(p.store.LaneCount())
}

// SetLaneInput moves the target lane by dir (-1 left, +1 right).
// Requests beyond the outer lanes are ignored.
func (p *Player) SetLaneInput(dir int) {
	half := p.halfLanes()
	next := p.lane + dir
	if next < -half || next > half {
		return
	}
	p.lane = next
}

// TriggerJump starts a jump from the ground, or a second jump in the air
// when double jump is owned. Ramps never grant the second jump.
func (p *Player) TriggerJump(fromRamp bool) {
	maxJumps := 1
	if p.store.HasDoubleJump() {
		maxJumps = 2
	}

	if !p.jumping {
		force := p.cfg.Physics.JumpForce
		if fromRamp {
			force = p.cfg.Physics.RampJumpForce
		}
		p.jumping = true
		p.jumps = 1
		p.vy = force
		p.flipping = fromRamp
		p.sink.Emit(SoundEvent{Cue: CueJump})
		return
	}

	if p.jumps < maxJumps && !fromRamp {
		p.jumps++
		p.vy = p.cfg.Physics.JumpForce
		p.sink.Emit(SoundEvent{Cue: CueDoubleJump})
	}
}

// RampContact launches a ramp jump unless the player is already airborne.
func (p *Player) RampContact() {
	if p.jumping {
		return
	}
	p.TriggerJump(true)
}

// Hit costs a life unless the player is immune. Starts the immunity window.
func (p *Player) Hit() {
	if p.invincible || p.store.IsImmortalityActive() {
		return
	}
	p.sink.Emit(SoundEvent{Cue: CueDamage})
	p.store.TakeDamage()
	p.invincible = true
	p.invincibleSince = p.clock
	p.sink.Emit(PlayerDamaged{Position: core.V3(p.x, p.y, 0)})
}

// syncStatus resets the player when a run starts or returns to the menu.
// Leaving the shop only settles the skier back on the snow.
func (p *Player) syncStatus(status state.Status) {
	prev := p.lastStatus
	p.lastStatus = status
	if status == prev {
		return
	}
	switch status {
	case state.StatusMenu:
		p.Reset()
		p.placed = false
	case state.StatusPlaying:
		if prev == state.StatusShop {
			p.land()
			return
		}
		p.Reset()
	}
}

// Update integrates jump physics and lateral smoothing. The player moves
// while the run is played or the shop is open.
func (p *Player) Update(dt float64) {
	status := p.store.Status()
	p.syncStatus(status)
	if status != state.StatusPlaying && status != state.StatusShop {
		return
	}

	dt = min(dt, p.cfg.World.MaxStep)
	if dt <= 0 {
		return
	}
	p.clock += dt
	p.placed = true

	half := p.halfLanes()
	p.lane = core.Clamp(p.lane, -half, half)
	p.x = core.Lerp(p.x, float64(p.lane)*p.cfg.World.LaneWidth, dt*p.cfg.Physics.LateralSmoothing)

	if p.jumping {
		p.y += p.vy * dt
		p.vy -= p.cfg.Physics.Gravity * dt
		if p.y <= 0 {
			p.land()
		}
	}

	if p.invincible && p.clock-p.invincibleSince > p.cfg.Physics.InvincibleSeconds {
		p.invincible = false
	}
}

// WorldPosition returns the smoothed position. ok is false until the
// player has been updated in a run.
func (p *Player) WorldPosition() (core.Vec3, bool) {
	return core.V3(p.x, p.y, 0), p.placed
}

// Visible reports whether the skier should be drawn this frame.
// The immunity window flickers; an active immortality skill keeps it shown.
func (p *Player) Visible() bool {
	if !p.invincible || p.store.IsImmortalityActive() {
		return true
	}
	period := p.cfg.Physics.FlickerSeconds
	if period <= 0 {
		return true
	}
	return int(math.Floor((p.clock-p.invincibleSince)/period))%2 == 0
}

// Lane returns the target lane index.
func (p *Player) Lane() int { return p.lane }

// Airborne reports whether the player is in a jump.
func (p *Player) Airborne() bool { return p.jumping }

// Jumps returns the number of jumps performed since leaving the ground.
func (p *Player) Jumps() int { return p.jumps }

// Flipping reports whether the current jump was launched by a ramp.
func (p *Player) Flipping() bool { return p.flipping }

// Invincible reports whether the post-hit immunity window is open.
func (p *Player) Invincible() bool { return p.invincible }
