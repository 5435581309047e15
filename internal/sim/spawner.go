package sim

import (
	"math/rand"

	"github.com/mkraev/lanedash/internal/config"
)

// Entity-kind selection thresholds for a uniform draw in [0,1).
const (
	positiveChance = 0.18 // r < 0.18 -> positive pickup
	negativeChance = 0.34 // 0.18 <= r < 0.34 -> negative pickup, else obstacle
)

// Spawn timing: the interval shrinks by 10ms for every 5 points scored,
// with a hard floor.
const (
	spawnBaseIntervalMs = 800
	spawnMinIntervalMs  = 350
	spawnIntervalStepMs = 10
	spawnStepScore      = 5
)

// Spawner emits at most one entity per tick on a score-scaled timer.
type Spawner struct {
	cfg     *config.Config
	rng     *rand.Rand
	timerMs float64 // Remaining time until the next spawn
}

// NewSpawner creates a spawner drawing randomness from the given source.
func NewSpawner(cfg *config.Config, rng *rand.Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// Reset zeroes the timer so the first tick of a run spawns immediately.
func (s *Spawner) Reset() {
	s.timerMs = 0
}

// Tick advances the spawn timer and returns a newly spawned entity,
// or nil if the timer has not elapsed.
func (s *Spawner) Tick(dtMs float64, score int) *Entity {
	s.timerMs -= dtMs
	if s.timerMs > 0 {
		return nil
	}
	e := s.spawn()
	s.timerMs = SpawnInterval(score)
	return e
}

// SpawnInterval returns the spawn interval in ms for the given score.
func SpawnInterval(score int) float64 {
	interval := float64(spawnBaseIntervalMs - (score/spawnStepScore)*spawnIntervalStepMs)
	if interval < spawnMinIntervalMs {
		return spawnMinIntervalMs
	}
	return interval
}

func (s *Spawner) spawn() *Entity {
	var kind Kind
	switch r := s.rng.Float64(); {
	case r < positiveChance:
		kind = KindPositive
	case r < negativeChance:
		kind = KindNegative
	default:
		kind = KindObstacle
	}

	kc := kindConfig(&s.cfg.Entities, kind)
	return &Entity{
		Kind: kind,
		Lane: s.rng.Intn(s.cfg.Field.Lanes),
		Y:    kc.SpawnY,
		VY:   kc.MinSpeed + s.rng.Float64()*(kc.MaxSpeed-kc.MinSpeed),
		Size: kc.Size,
	}
}
