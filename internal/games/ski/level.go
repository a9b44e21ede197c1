package ski

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/ski-runner/internal/config"
	"github.com/vovakirdan/ski-runner/internal/core"
	"github.com/vovakirdan/ski-runner/internal/state"
)

const defaultBurstColor = "#fbbf24"

// PositionSource supplies the player's current world position.
// ok is false while the player has not been placed yet.
type PositionSource interface {
	WorldPosition() (pos core.Vec3, ok bool)
}

// runSession is the per-run bookkeeping of the engine.
type runSession struct {
	distance    float64 // traveled this run
	nextYear    int     // next target index to spawn; never rewound
	sinceToken  float64 // traveled since the last token spawn
	tokenActive bool    // a year token is on the track
}

// Engine scrolls the world, resolves collisions against the player,
// culls objects that passed behind and drives the spawner.
type Engine struct {
	cfg     *config.SkiConfig
	store   state.Store
	player  PositionSource
	sink    EventSink
	spawner *Spawner

	objects    []GameObject
	run        runSession
	lastStatus state.Status
}

// NewEngine creates an engine bound to store and player.
// A nil sink discards events.
func NewEngine(cfg *config.SkiConfig, store state.Store, player PositionSource, sink EventSink, rng *rand.Rand) *Engine {
	if sink == nil {
		sink = discardSink{}
	}
	return &Engine{
		cfg:        cfg,
		store:      store,
		player:     player,
		sink:       sink,
		spawner:    NewSpawner(cfg, rng),
		objects:    make([]GameObject, 0, 64),
		lastStatus: store.Status(),
	}
}

// Reset clears the world and the run bookkeeping.
func (e *Engine) Reset() {
	e.objects = e.objects[:0]
	e.run = runSession{}
}

// Objects returns the live object set. The slice is reused between ticks.
func (e *Engine) Objects() []GameObject {
	return e.objects
}

// Distance returns the distance traveled in the current run.
func (e *Engine) Distance() float64 {
	return e.run.distance
}

// syncStatus reacts to run status transitions made outside the engine.
func (e *Engine) syncStatus(status state.Status) {
	prev := e.lastStatus
	e.lastStatus = status
	if status == prev {
		return
	}

	switch {
	case status == state.StatusMenu,
		status == state.StatusPlaying && prev.Ended():
		e.Reset()
	case status.Ended():
		e.store.SetDistance(int(math.Floor(e.run.distance)))
	}
}

// Update advances the world by dt seconds. Nothing moves unless the run
// is being played.
func (e *Engine) Update(dt float64) {
	e.syncStatus(e.store.Status())
	if e.lastStatus != state.StatusPlaying {
		return
	}

	dt = min(dt, e.cfg.World.MaxStep)
	if dt <= 0 {
		return
	}

	speed := e.store.Speed()
	dist := speed * dt
	e.run.distance += dist
	e.run.sinceToken += dist

	for i := range e.objects {
		e.objects[i].Position.Z += dist
	}

	if pos, ok := e.player.WorldPosition(); ok {
		e.collide(pos)
	}

	e.cull()
	e.store.SetDistance(int(math.Floor(e.run.distance)))
	e.objects = e.spawner.Spawn(e.objects, &e.run, speed, e.store.LaneCount())

	// Collisions may have ended the run.
	e.syncStatus(e.store.Status())
}

// collide resolves every active object inside the proximity window of p.
func (e *Engine) collide(p core.Vec3) {
	c := e.cfg.Collision
	for i := range e.objects {
		o := &e.objects[i]
		if !o.Active {
			continue
		}
		if core.AbsF(o.Position.Z-p.Z) >= c.ZWindow || core.AbsF(o.Position.X-p.X) >= c.XWindow {
			continue
		}

		switch o.Type {
		case ObjectObstacle:
			if p.Y < c.ObstacleHeight {
				o.Active = false
				e.sink.Emit(PlayerHit{Object: o.ID})
				e.sink.Emit(ParticleBurst{Position: o.Position, Color: ColorObstacle})
			}

		case ObjectRamp:
			if p.Y < c.RampGroundY {
				o.Active = false
				e.sink.Emit(RampContact{Object: o.ID})
			}

		case ObjectCash, ObjectYearToken:
			if core.AbsF(o.Position.Y-p.Y) >= c.PickupYWindow {
				continue
			}
			if o.Type == ObjectCash {
				e.store.AddScore(o.Points)
				e.sink.Emit(SoundEvent{Cue: CueCash})
			} else {
				e.store.CollectLetter(o.TargetIndex)
				e.run.tokenActive = false
				e.sink.Emit(SoundEvent{Cue: CueYear})
			}
			color := o.Color
			if color == "" {
				color = defaultBurstColor
			}
			e.sink.Emit(ParticleBurst{Position: o.Position, Color: color})
			o.Active = false
		}
	}
}

// cull drops objects that scrolled past the removal distance. An expiring
// year token frees the token slot; its index is not respawned.
func (e *Engine) cull() {
	kept := e.objects[:0]
	for _, o := range e.objects {
		if o.Position.Z > e.cfg.World.RemoveDistance {
			if o.Type == ObjectYearToken {
				e.run.tokenActive = false
			}
			continue
		}
		kept = append(kept, o)
	}
	e.objects = kept
}
