package ski

import (
	"math/rand"

	"github.com/vovakirdan/ski-runner/internal/config"
	"github.com/vovakirdan/ski-runner/internal/core"
)

// Display colors of spawned objects.
const (
	ColorRamp      = "#ec4899"
	ColorRampBonus = "#fbbf24"
	ColorCashLine  = "#10b981"
	ColorObstacle  = "#ffffff"
)

// Spawner places new object batches ahead of the player.
type Spawner struct {
	cfg *config.SkiConfig
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg *config.SkiConfig, rng *rand.Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// nearestZ returns the smallest Z among objs, the farthest one ahead.
func (s *Spawner) nearestZ(objs []GameObject) float64 {
	if len(objs) == 0 {
		return s.cfg.World.EmptyWorldZ
	}
	z := objs[0].Position.Z
	for _, o := range objs[1:] {
		if o.Position.Z < z {
			z = o.Position.Z
		}
	}
	return z
}

// Spawn appends at most one batch to objs and returns the extended slice.
// A batch is placed only when the farthest object has scrolled at least
// the speed-dependent gap inside the spawn horizon.
func (s *Spawner) Spawn(objs []GameObject, run *runSession, speed float64, laneCount int) []GameObject {
	w := s.cfg.World
	gap := w.MinGap + speed*w.GapSpeedFactor
	if s.nearestZ(objs) <= -w.SpawnDistance+gap {
		return objs
	}

	spawnZ := -w.SpawnDistance - s.rng.Float64()*w.SpawnJitter

	if run.nextYear < len(s.cfg.Targets) && !run.tokenActive && run.sinceToken >= w.YearSpawnInterval {
		return s.spawnYear(objs, run, spawnZ, laneCount)
	}

	sp := s.cfg.Spawn
	roll := s.rng.Float64() * (sp.ObstacleWeight + sp.RampWeight + sp.CashLineWeight)
	switch {
	case roll < sp.ObstacleWeight:
		return s.spawnObstacles(objs, spawnZ, laneCount)
	case roll < sp.ObstacleWeight+sp.RampWeight:
		return s.spawnRamp(objs, spawnZ, laneCount)
	default:
		return s.spawnCashLine(objs, spawnZ, laneCount)
	}
}

func (s *Spawner) randomLane(laneCount int) int {
	return s.rng.Intn(laneCount) - core.HalfLanes(laneCount)
}

func (s *Spawner) laneX(lane int) float64 {
	return float64(lane) * s.cfg.World.LaneWidth
}

func (s *Spawner) newObject(t ObjectType, pos core.Vec3, color string) GameObject {
	return GameObject{
		ID:       newObjectID(s.rng),
		Type:     t,
		Position: pos,
		Active:   true,
		Color:    color,
	}
}

func (s *Spawner) spawnYear(objs []GameObject, run *runSession, z float64, laneCount int) []GameObject {
	idx := run.nextYear
	target := s.cfg.Targets[idx]
	o := s.newObject(ObjectYearToken, core.V3(s.laneX(s.randomLane(laneCount)), s.cfg.Spawn.YearHeight, z), target.Color)
	o.TargetIndex = idx
	o.Value = target.Value

	run.tokenActive = true
	run.nextYear++
	run.sinceToken = 0
	return append(objs, o)
}

// spawnObstacles blocks 1..MaxObstacles distinct lanes, always leaving one free.
func (s *Spawner) spawnObstacles(objs []GameObject, z float64, laneCount int) []GameObject {
	half := core.HalfLanes(laneCount)
	lanes := make([]int, 0, laneCount)
	for l := -half; l <= half; l++ {
		lanes = append(lanes, l)
	}
	s.rng.Shuffle(len(lanes), func(i, j int) { lanes[i], lanes[j] = lanes[j], lanes[i] })

	count := 1 + s.rng.Intn(max(s.cfg.Spawn.MaxObstacles, 1))
	if count >= laneCount {
		count = laneCount - 1
	}

	kinds := s.cfg.Spawn.ObstacleKinds
	for i := 0; i < count; i++ {
		o := s.newObject(ObjectObstacle, core.V3(s.laneX(lanes[i]), 0, z), ColorObstacle)
		if len(kinds) > 0 {
			o.Kind = kinds[s.rng.Intn(len(kinds))]
		}
		objs = append(objs, o)
	}
	return objs
}

// spawnRamp places a ramp with a bonus pickup hanging above its landing.
func (s *Spawner) spawnRamp(objs []GameObject, z float64, laneCount int) []GameObject {
	sp := s.cfg.Spawn
	x := s.laneX(s.randomLane(laneCount))

	ramp := s.newObject(ObjectRamp, core.V3(x, 0, z), ColorRamp)
	bonus := s.newObject(ObjectCash, core.V3(x, sp.RampBonusHeight, z+sp.RampBonusAhead), ColorRampBonus)
	bonus.Points = sp.RampBonusPoints
	return append(objs, ramp, bonus)
}

func (s *Spawner) spawnCashLine(objs []GameObject, z float64, laneCount int) []GameObject {
	sp := s.cfg.Spawn
	x := s.laneX(s.randomLane(laneCount))

	count := sp.CashLineMin
	if sp.CashLineMax > sp.CashLineMin {
		count += s.rng.Intn(sp.CashLineMax - sp.CashLineMin + 1)
	}
	for i := 0; i < count; i++ {
		o := s.newObject(ObjectCash, core.V3(x, sp.CashHeight, z-float64(i)*sp.CashSpacing), ColorCashLine)
		o.Points = sp.CashPoints
		objs = append(objs, o)
	}
	return objs
}
