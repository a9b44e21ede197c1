// Package ski implements the Ski Runner endless runner.
// The skier rides down a lane-based slope, dodging obstacles, riding ramps
// and collecting cash and year tokens until every year is gathered or the
// lives run out.
package ski

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/ski-runner/internal/config"
	"github.com/vovakirdan/ski-runner/internal/core"
	"github.com/vovakirdan/ski-runner/internal/registry"
	"github.com/vovakirdan/ski-runner/internal/state"
)

// GameID is the registry identifier.
const GameID = "ski"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game wires the session, the player and the engine into one tick loop.
type Game struct {
	runtime   core.RuntimeConfig
	cfg       config.SkiConfig
	session   *state.Session
	player    *Player
	engine    *Engine
	particles *ParticlePool

	events  []Event // raised during the current tick
	paused  bool
	notice  string // shop feedback
	frame   int
	runs    int
	started bool
}

// New creates a new Ski Runner game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(cfg config.SkiConfig) *Game {
	return &Game{cfg: cfg, started: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Ski Runner"
}

// Reset rebuilds the game for a new session and shows the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.started {
		cfg, err := config.LoadSki(configPath)
		if err != nil {
			cfg = config.DefaultSkiConfig()
		}
		if difficultyPreset != "" {
			config.ApplySkiPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
		g.started = true
	}

	seed := runtime.Seed
	g.session = state.NewSession(g.cfg, seed+2)
	g.player = NewPlayer(&g.cfg, g.session, g)
	g.engine = NewEngine(&g.cfg, g.session, g.player, g, rand.New(rand.NewSource(seed)))
	g.particles = NewParticlePool(rand.New(rand.NewSource(seed + 1)))
	g.events = g.events[:0]
	g.paused = false
	g.notice = ""
	g.frame = 0
	g.runs = 0
}

// Emit dispatches an event raised by the engine or the player. Hits and ramp
// contacts reach the player within the same call; every event is queued for
// DrainEvents.
func (g *Game) Emit(e Event) {
	switch ev := e.(type) {
	case PlayerHit:
		g.player.Hit()
	case RampContact:
		g.player.RampContact()
	case ParticleBurst:
		g.particles.Burst(ev.Position, ev.Color)
	}
	g.events = append(g.events, e)
}

// DrainEvents returns the events of the last tick and clears the queue.
func (g *Game) DrainEvents() []Event {
	out := make([]Event, len(g.events))
	copy(out, g.events)
	g.events = g.events[:0]
	return out
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	g.frame++

	dt := in.Delta
	if dt <= 0 {
		dt = g.runtime.TickDuration().Seconds()
	}

	g.handleInput(in)
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.session.Advance(min(dt, g.cfg.World.MaxStep))
	g.player.Update(dt)
	g.engine.Update(dt)
	g.particles.Update(dt)

	return core.StepResult{State: g.State(), Cues: g.cues()}
}

func (g *Game) handleInput(in core.InputFrame) {
	switch g.session.Status() {
	case state.StatusMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			g.startRun()
		}

	case state.StatusGameOver, state.StatusVictory:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.startRun()
		} else if in.Has(core.ActionBack) {
			g.session.ReturnToMenu()
		}

	case state.StatusShop:
		for i, a := range []core.Action{core.ActionBuy1, core.ActionBuy2, core.ActionBuy3} {
			if in.Has(a) {
				g.buy(i)
			}
		}
		if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
			g.session.CloseShop()
			g.notice = ""
		}

	case state.StatusPlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			return
		}
		if in.Has(core.ActionRestart) {
			g.startRun()
			return
		}
		if in.Has(core.ActionBack) {
			g.session.ReturnToMenu()
			return
		}
		for i := 0; i < in.Count(core.ActionLeft); i++ {
			g.player.SetLaneInput(-1)
		}
		for i := 0; i < in.Count(core.ActionRight); i++ {
			g.player.SetLaneInput(1)
		}
		for i := 0; i < in.Count(core.ActionJump); i++ {
			g.player.TriggerJump(false)
		}
		if in.Has(core.ActionSkill) {
			g.session.ActivateImmortality()
		}
	}
}

// startRun begins a fresh run. A restart while playing does not change the
// status, so the world is cleared here.
func (g *Game) startRun() {
	g.session.StartGame()
	g.runs++
	g.engine.Reset()
	g.player.Reset()
	g.particles.Clear()
	g.paused = false
	g.notice = ""
}

func (g *Game) buy(slot int) {
	offers := g.session.Offers()
	if slot >= len(offers) {
		return
	}
	item := offers[slot]
	err := g.session.BuyItem(item.ID)
	switch {
	case err == nil:
		g.notice = fmt.Sprintf("Bought %s", item.Name)
	case errors.Is(err, state.ErrNotEnoughScore):
		g.notice = fmt.Sprintf("Need %d for %s", item.Cost, item.Name)
	default:
		g.notice = err.Error()
	}
}

func (g *Game) cues() []string {
	var out []string
	for _, e := range g.events {
		if s, ok := e.(SoundEvent); ok {
			out = append(out, string(s.Cue))
		}
	}
	return out
}

// Session exposes the shared state of the current session.
func (g *Game) Session() *state.Session { return g.session }

// Player exposes the player controller.
func (g *Game) Player() *Player { return g.player }

// Engine exposes the collision and lifecycle engine.
func (g *Game) Engine() *Engine { return g.engine }

// State returns the current game state.
func (g *Game) State() core.GameState {
	status := g.session.Status()
	return core.GameState{
		Score:    g.session.Score(),
		Distance: g.session.Distance(),
		Years:    len(g.session.CollectedLetters()),
		GameOver: status.Ended(),
		Victory:  status == state.StatusVictory,
		Paused:   g.paused,
		Run:      g.runs,
		InRun:    status == state.StatusPlaying || status == state.StatusShop,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
