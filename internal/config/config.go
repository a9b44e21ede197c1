// Package config provides YAML-based game configuration loading,
// environment overrides and difficulty management for the runner.
package config

// SkiConfig contains all configuration for the Ski Runner game.
type SkiConfig struct {
	World       SkiWorld         `yaml:"world"`
	Collision   SkiCollision     `yaml:"collision"`
	Physics     SkiPhysics       `yaml:"physics"`
	Spawn       SkiSpawn         `yaml:"spawn"`
	Targets     []YearTarget     `yaml:"targets"`
	Progression SkiProgression   `yaml:"progression"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// SkiWorld defines the track geometry and scrolling parameters.
type SkiWorld struct {
	LaneWidth         float64 `yaml:"lane_width"`          // Lateral spacing between lane centers
	SpawnDistance     float64 `yaml:"spawn_distance"`      // How far ahead new objects appear
	RemoveDistance    float64 `yaml:"remove_distance"`     // Cleanup threshold behind the player
	MaxStep           float64 `yaml:"max_step"`            // Longest frame delta simulated at once (seconds)
	BaseSpeed         float64 `yaml:"base_speed"`          // World units per second at run start
	MinGap            float64 `yaml:"min_gap"`             // Minimum forward spacing between spawn batches
	GapSpeedFactor    float64 `yaml:"gap_speed_factor"`    // Extra spacing per unit of speed
	SpawnJitter       float64 `yaml:"spawn_jitter"`        // Random extra depth of a spawn batch
	EmptyWorldZ       float64 `yaml:"empty_world_z"`       // Nearest-object fallback when nothing is live
	YearSpawnInterval float64 `yaml:"year_spawn_interval"` // Distance between year-token spawns
	StartLanes        int     `yaml:"start_lanes"`         // Lane count at run start (odd)
	MaxLanes          int     `yaml:"max_lanes"`           // Lane count ceiling (odd)
}

// SkiCollision defines the proximity windows of the collision test.
type SkiCollision struct {
	ZWindow        float64 `yaml:"z_window"`        // Forward-axis half window around the player
	XWindow        float64 `yaml:"x_window"`        // Lateral threshold
	ObstacleHeight float64 `yaml:"obstacle_height"` // Player must be above this to clear an obstacle
	RampGroundY    float64 `yaml:"ramp_ground_y"`   // Player below this counts as grounded for ramps
	PickupYWindow  float64 `yaml:"pickup_y_window"` // Vertical window for cash and year tokens
}

// SkiPhysics defines player physics parameters.
type SkiPhysics struct {
	Gravity           float64 `yaml:"gravity"`
	JumpForce         float64 `yaml:"jump_force"`
	RampJumpForce     float64 `yaml:"ramp_jump_force"`
	LateralSmoothing  float64 `yaml:"lateral_smoothing"`  // Exponential smoothing rate toward the lane center
	InvincibleSeconds float64 `yaml:"invincible_seconds"` // Immunity window after a hit
	FlickerSeconds    float64 `yaml:"flicker_seconds"`    // Visibility toggle period while invincible
}

// SkiSpawn defines the weighted spawn policy.
type SkiSpawn struct {
	ObstacleWeight  float64  `yaml:"obstacle_weight"`
	RampWeight      float64  `yaml:"ramp_weight"`
	CashLineWeight  float64  `yaml:"cash_line_weight"`
	MaxObstacles    int      `yaml:"max_obstacles"`
	ObstacleKinds   []string `yaml:"obstacle_kinds"`
	CashPoints      int      `yaml:"cash_points"`
	CashHeight      float64  `yaml:"cash_height"`
	CashSpacing     float64  `yaml:"cash_spacing"`
	CashLineMin     int      `yaml:"cash_line_min"`
	CashLineMax     int      `yaml:"cash_line_max"`
	RampBonusPoints int      `yaml:"ramp_bonus_points"`
	RampBonusHeight float64  `yaml:"ramp_bonus_height"`
	RampBonusAhead  float64  `yaml:"ramp_bonus_ahead"`
	YearHeight      float64  `yaml:"year_height"`
}

// YearTarget is one entry of the ordered collectible sequence.
type YearTarget struct {
	Value string `yaml:"value"`
	Color string `yaml:"color"`
}

// SkiProgression defines lives, pacing and the shop.
type SkiProgression struct {
	Lives              int        `yaml:"lives"`
	LetterSpeedStep    float64    `yaml:"letter_speed_step"`   // Fraction of base speed added per collected year
	LanesEveryLetters  int        `yaml:"lanes_every_letters"` // 0 disables lane growth
	ShopEveryLetters   int        `yaml:"shop_every_letters"`  // 0 disables the shop
	ImmortalitySeconds float64    `yaml:"immortality_seconds"`
	ShopOffers         int        `yaml:"shop_offers"`
	Items              []ShopItem `yaml:"items"`
}

// ShopItem describes a purchasable upgrade.
type ShopItem struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Cost        int    `yaml:"cost"`
	OneTime     bool   `yaml:"one_time"`
}

// Shop item identifiers understood by the game state.
const (
	ItemDoubleJump = "DOUBLE_JUMP"
	ItemMaxLife    = "MAX_LIFE"
	ItemHeal       = "HEAL"
	ItemImmortal   = "IMMORTAL"
)

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "distance", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Distance/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "" (use config default).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
