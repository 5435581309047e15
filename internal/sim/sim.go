// Package sim implements the lanedash simulation core: a fixed-state,
// frame-driven loop that advances entities, spawns new ones, resolves
// collisions, manages the power-up slot and ramps difficulty. It has no
// rendering or terminal dependencies and is driven purely by timestamps.
package sim

import (
	"math/rand"

	"github.com/mkraev/lanedash/internal/config"
	"github.com/mkraev/lanedash/internal/core"
)

// State is the session lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "?"
	}
}

// Loop and session constants. The dt clamp caps the effective simulation
// step after long stalls; dtScale converts dt seconds into frame units
// against a 60 Hz reference with a 0.016 s frame factor.
const (
	maxDtSec = 0.034
	dtScale  = 60 * 0.016

	baseSpeed        = 260
	speedRampAmount  = 8
	speedRampEveryMs = 4000

	energyMax    = 100
	drainAmount  = 0.2
	drainEveryMs = 200

	positiveScoreGain    = 3
	positiveEnergyGain   = 12
	negativeScorePenalty = 4
	negativeEnergyDrain  = 18
	shieldBlockScore     = 1

	// Vertical overlap check gets a small forgiving margin above the player.
	collisionMarginY = 10
)

// ScoreStore persists the best score across sessions.
type ScoreStore interface {
	LoadBest() (int, error)
	SaveBest(score int) error
}

// Simulation owns all mutable game state. It is single-writer: exactly one
// goroutine may call its methods, and readers only see the immutable
// Snapshot taken after a tick completes.
type Simulation struct {
	cfg    config.Config
	rng    *rand.Rand
	events Events
	store  ScoreStore

	state     State
	lane      int
	score     int
	best      int
	energy    float64 // Raw value; may transiently go below 0 before the terminal check
	speed     float64
	elapsedMs float64

	lastMs     float64
	rampAccMs  float64
	drainAccMs float64

	spawner *Spawner
	power   *PowerUps

	obstacles []Entity
	positives []Entity
	negatives []Entity
}

// New creates an idle simulation. Store and events may be nil.
// The best score is loaded from the store at construction.
func New(cfg config.Config, seed int64, store ScoreStore, events Events) *Simulation {
	if events == nil {
		events = NopEvents{}
	}

	rng := rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness, not security

	s := &Simulation{
		cfg:    cfg,
		rng:    rng,
		events: events,
		store:  store,
		state:  StateIdle,
		lane:   cfg.Field.Lanes / 2,
	}
	s.spawner = NewSpawner(&s.cfg, rng)
	s.power = NewPowerUps(cfg.PowerUps, events)

	if store != nil {
		if best, err := store.LoadBest(); err == nil {
			s.best = best
		}
	}
	return s
}

// State returns the current session state.
func (s *Simulation) State() State {
	return s.state
}

// Start begins a run, or restarts after game over. No-op while Running.
// nowMs becomes the loop baseline for the first tick's delta.
func (s *Simulation) Start(nowMs float64) {
	if s.state == StateRunning {
		return
	}

	s.lane = s.cfg.Field.Lanes / 2
	s.score = 0
	s.energy = energyMax
	s.speed = baseSpeed
	s.elapsedMs = 0
	s.rampAccMs = 0
	s.drainAccMs = 0
	s.obstacles = s.obstacles[:0]
	s.positives = s.positives[:0]
	s.negatives = s.negatives[:0]
	s.spawner.Reset()
	s.power.Reset()

	s.lastMs = nowMs
	s.state = StateRunning
	s.events.HudChanged(s.energy, s.score, s.best)
}

// TogglePause flips between Running and Paused. Ignored before the first
// start and after game over.
func (s *Simulation) TogglePause() {
	switch s.state {
	case StateRunning:
		s.state = StatePaused
	case StatePaused:
		// The dt clamp absorbs the pause gap on the next tick.
		s.state = StateRunning
	}
}

// MoveLeft shifts the player one lane left, clamped at the edge.
// Ignored unless Running.
func (s *Simulation) MoveLeft() {
	if s.state != StateRunning {
		return
	}
	s.lane = core.Clamp(s.lane-1, 0, s.cfg.Field.Lanes-1)
}

// MoveRight shifts the player one lane right, clamped at the edge.
// Ignored unless Running.
func (s *Simulation) MoveRight() {
	if s.state != StateRunning {
		return
	}
	s.lane = core.Clamp(s.lane+1, 0, s.cfg.Field.Lanes-1)
}

// ActivateShield arms the shield power-up. Exposed for collaborators;
// the core itself never self-grants one.
func (s *Simulation) ActivateShield() {
	if s.state != StateRunning {
		return
	}
	s.power.ActivateShield(s.lastMs)
}

// Advance processes one tick at the given monotonic timestamp (ms).
// Does nothing unless the session is Running.
func (s *Simulation) Advance(nowMs float64) {
	if s.state != StateRunning {
		return
	}

	dt := (nowMs - s.lastMs) / 1000
	s.lastMs = nowMs
	if dt <= 0 {
		return
	}
	if dt > maxDtSec {
		dt = maxDtSec
	}
	dtMs := dt * 1000
	s.elapsedMs += dtMs

	scoreBefore := s.score
	energyBefore := s.energy

	s.ramp(dtMs)
	if s.drain(dtMs) {
		s.finish()
		return
	}

	if e := s.spawner.Tick(dtMs, s.score); e != nil {
		s.add(*e)
	}

	s.advanceEntities(dt)
	gameOver := s.resolveCollisions(nowMs)
	s.power.Expire(nowMs)

	if !gameOver && (s.score != scoreBefore || s.energy != energyBefore) {
		s.events.HudChanged(core.ClampF(s.energy, 0, energyMax), s.score, s.best)
	}
}

// ramp bumps the telemetry speed every rampEvery window. Speed never
// scales entity velocities; those are drawn per spawn.
func (s *Simulation) ramp(dtMs float64) {
	s.rampAccMs += dtMs
	for s.rampAccMs >= speedRampEveryMs {
		s.rampAccMs -= speedRampEveryMs
		s.speed += speedRampAmount
	}
}

// drain applies passive energy loss and reports whether energy ran out.
// The terminal check uses the raw value, not the display clamp.
func (s *Simulation) drain(dtMs float64) bool {
	s.drainAccMs += dtMs
	for s.drainAccMs >= drainEveryMs {
		s.drainAccMs -= drainEveryMs
		s.energy -= drainAmount
	}
	return s.energy <= 0
}

func (s *Simulation) add(e Entity) {
	switch e.Kind {
	case KindPositive:
		s.positives = append(s.positives, e)
	case KindNegative:
		s.negatives = append(s.negatives, e)
	default:
		s.obstacles = append(s.obstacles, e)
	}
}

// advanceEntities moves every live entity down and despawns the ones past
// the visible area. An active magnet additionally pulls nearby positive
// pickups toward the player; they still must pass the collision check.
func (s *Simulation) advanceEntities(dt float64) {
	fall := dt * dtScale

	magnet := s.power.Active() == PowerMagnet
	playerX := s.cfg.Field.LaneCenter(s.lane)

	for i := range s.obstacles {
		s.obstacles[i].Y += s.obstacles[i].VY * fall
	}
	for i := range s.negatives {
		s.negatives[i].Y += s.negatives[i].VY * fall
	}
	for i := range s.positives {
		p := &s.positives[i]
		p.Y += p.VY * fall
		if magnet {
			dx := s.cfg.Field.LaneCenter(p.Lane) - playerX
			if dx < 0 {
				dx = -dx
			}
			if dx <= s.cfg.PowerUps.MagnetRange {
				p.Y += s.cfg.PowerUps.MagnetPull * dt * 60
			}
		}
	}

	s.obstacles = s.despawn(s.obstacles, s.cfg.Entities.Obstacle.DespawnMargin)
	s.positives = s.despawn(s.positives, s.cfg.Entities.Positive.DespawnMargin)
	s.negatives = s.despawn(s.negatives, s.cfg.Entities.Negative.DespawnMargin)
}

func (s *Simulation) despawn(entities []Entity, margin float64) []Entity {
	kept := entities[:0]
	for _, e := range entities {
		if e.Y <= s.cfg.Field.Height+margin {
			kept = append(kept, e)
		}
	}
	return kept
}

// finish transitions to game over, persisting a new best score.
func (s *Simulation) finish() {
	s.state = StateGameOver
	if s.score > s.best {
		s.best = s.score
		if s.store != nil {
			//nolint:errcheck // Best-effort save, the session ends regardless
			s.store.SaveBest(s.score)
		}
	}
	s.events.HudChanged(core.ClampF(s.energy, 0, energyMax), s.score, s.best)
	s.events.GameOverTriggered(s.score, s.best)
}
