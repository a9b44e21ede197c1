package ski

import (
	"math/rand"

	"github.com/vovakirdan/ski-runner/internal/core"
)

const (
	particleCount   = 400
	particleBurst   = 40
	particleGravity = 18
	particleMaxStep = 0.1
)

// burstPalette mixes festive colors into every burst.
var burstPalette = []string{"#ec4899", "#8b5cf6", "#06b6d4", "#f59e0b", "#10b981", "#ef4444"}

// Particle is one spark of a burst.
type Particle struct {
	Life     float64
	Position core.Vec3
	Velocity core.Vec3
	Color    string
}

// ParticlePool is a fixed-size particle buffer. Bursts reuse dead slots and
// are truncated when the pool is full.
type ParticlePool struct {
	slots [particleCount]Particle
	rng   *rand.Rand
}

// NewParticlePool creates an empty pool.
func NewParticlePool(rng *rand.Rand) *ParticlePool {
	return &ParticlePool{rng: rng}
}

// Burst spawns up to 40 particles at pos. Half of them take color, the rest
// a random palette color.
func (pp *ParticlePool) Burst(pos core.Vec3, color string) {
	spawned := 0
	for i := range pp.slots {
		p := &pp.slots[i]
		if p.Life > 0 {
			continue
		}
		p.Life = 0.9 + pp.rng.Float64()*0.5
		p.Position = pos
		p.Velocity = core.V3(
			(pp.rng.Float64()-0.5)*10,
			pp.rng.Float64()*6+3,
			(pp.rng.Float64()-0.5)*10,
		)
		p.Color = color
		if pp.rng.Float64() <= 0.5 {
			p.Color = burstPalette[pp.rng.Intn(len(burstPalette))]
		}
		spawned++
		if spawned >= particleBurst {
			return
		}
	}
}

// Update ages and moves live particles.
func (pp *ParticlePool) Update(dt float64) {
	dt = min(dt, particleMaxStep)
	for i := range pp.slots {
		p := &pp.slots[i]
		if p.Life <= 0 {
			continue
		}
		p.Life -= dt
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
		p.Velocity.Y -= dt * particleGravity
	}
}

// Live calls fn for every live particle.
func (pp *ParticlePool) Live(fn func(p Particle)) {
	for _, p := range pp.slots {
		if p.Life > 0 {
			fn(p)
		}
	}
}

// Count returns the number of live particles.
func (pp *ParticlePool) Count() int {
	n := 0
	for _, p := range pp.slots {
		if p.Life > 0 {
			n++
		}
	}
	return n
}

// Clear kills every particle.
func (pp *ParticlePool) Clear() {
	pp.slots = [particleCount]Particle{}
}
