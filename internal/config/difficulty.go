package config

import "github.com/vovakirdan/ski-runner/internal/core"

// Progression types accepted in difficulty.progression.type.
const (
	ProgressionDistance = "distance"
	ProgressionTime     = "time"
	ProgressionNone     = "none"
)

// DifficultyManager maps run progress to a difficulty level in [0, 1] and
// the level to a speed multiplier.
type DifficultyManager struct {
	enabled   bool
	kind      string
	maxAt     float64
	initial   float64
	speedMult float64
}

// NewDifficultyManager creates a manager from the config section.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		enabled:   cfg.Enabled,
		kind:      cfg.Progression.Type,
		maxAt:     float64(max(cfg.Progression.MaxAt, 1)),
		initial:   core.ClampF(cfg.InitialLevel, 0, 1),
		speedMult: cfg.Scaling.SpeedMultiplier,
	}
}

// SetInitialLevel overrides the starting level, clamped to [0, 1].
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initial = core.ClampF(level, 0, 1)
}

// SetEnabled turns progression on or off. A disabled manager stays at the
// initial level.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.enabled = enabled
}

// IsEnabled reports whether the level moves during a run.
func (d *DifficultyManager) IsEnabled() bool {
	return d.enabled && (d.kind == ProgressionDistance || d.kind == ProgressionTime)
}

// Level returns the level after traveling distance meters or ticks ticks.
// It rises linearly from the initial level to 1 at max_at.
func (d *DifficultyManager) Level(distance float64, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initial
	}

	progress := distance
	if d.kind == ProgressionTime {
		progress = float64(ticks)
	}
	progress = core.ClampF(progress/d.maxAt, 0, 1)

	return d.initial + progress*(1-d.initial)
}

// Speed scales baseSpeed by the current level: base at level 0,
// base*(1+speed_multiplier) at level 1.
func (d *DifficultyManager) Speed(baseSpeed, distance float64, ticks int) float64 {
	return baseSpeed * (1 + d.Level(distance, ticks)*d.speedMult)
}
