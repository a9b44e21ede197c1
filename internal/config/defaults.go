package config

import (
	_ "embed"
)

//go:embed defaults/ski.yaml
var defaultSkiYAML []byte

// DefaultSkiConfig returns the hardcoded Ski Runner configuration.
// It mirrors defaults/ski.yaml and is used when the embedded file cannot be parsed.
func DefaultSkiConfig() SkiConfig {
	return SkiConfig{
		World: SkiWorld{
			LaneWidth:         2.5,
			SpawnDistance:     140,
			RemoveDistance:    20,
			MaxStep:           0.05,
			BaseSpeed:         25,
			MinGap:            15,
			GapSpeedFactor:    0.25,
			SpawnJitter:       20,
			EmptyWorldZ:       -20,
			YearSpawnInterval: 160,
			StartLanes:        3,
			MaxLanes:          7,
		},
		Collision: SkiCollision{
			ZWindow:        1.2,
			XWindow:        1.0,
			ObstacleHeight: 1.8,
			RampGroundY:    0.5,
			PickupYWindow:  2.8,
		},
		Physics: SkiPhysics{
			Gravity:           55,
			JumpForce:         18,
			RampJumpForce:     24,
			LateralSmoothing:  10,
			InvincibleSeconds: 1.5,
			FlickerSeconds:    0.05,
		},
		Spawn: SkiSpawn{
			ObstacleWeight:  0.55,
			RampWeight:      0.23,
			CashLineWeight:  0.22,
			MaxObstacles:    3,
			ObstacleKinds:   []string{"tree", "snowman", "rock", "cone"},
			CashPoints:      100,
			CashHeight:      1.0,
			CashSpacing:     6,
			CashLineMin:     2,
			CashLineMax:     5,
			RampBonusPoints: 300,
			RampBonusHeight: 4.0,
			RampBonusAhead:  3,
			YearHeight:      1.2,
		},
		Targets: []YearTarget{
			{Value: "1995", Color: "#ff3333"},
			{Value: "2000", Color: "#ff8800"},
			{Value: "2005", Color: "#ffcc00"},
			{Value: "2010", Color: "#33cc33"},
			{Value: "2015", Color: "#0099ff"},
			{Value: "2020", Color: "#3333ff"},
			{Value: "2025", Color: "#9900cc"},
		},
		Progression: SkiProgression{
			Lives:              3,
			LetterSpeedStep:    0.1,
			LanesEveryLetters:  3,
			ShopEveryLetters:   2,
			ImmortalitySeconds: 5,
			ShopOffers:         3,
			Items: []ShopItem{
				{ID: ItemDoubleJump, Name: "DOUBLE TRICK", Description: "Jump again in mid-air to dodge tall trees.", Cost: 1000, OneTime: true},
				{ID: ItemMaxLife, Name: "WARM COAT", Description: "Permanently adds a heart slot.", Cost: 1500},
				{ID: ItemHeal, Name: "HOT TEA", Description: "Restores 1 life point instantly.", Cost: 1000},
				{ID: ItemImmortal, Name: "RAGE MODE", Description: "Press E to smash through obstacles (5s).", Cost: 3000, OneTime: true},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 8000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSkiYAML
}
