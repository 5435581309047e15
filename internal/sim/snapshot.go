package sim

import "github.com/mkraev/lanedash/internal/core"

// EntityView is an entity as seen by a renderer.
type EntityView struct {
	Kind Kind
	Lane int
	X    float64 // Lane-center horizontal position
	Y    float64 // Top edge
	Size float64
}

// Snapshot is a read-only view of the session, sufficient to draw the
// scene without touching simulation internals. It is immutable for the
// frame it was taken in.
type Snapshot struct {
	State State

	Lane         int
	PlayerX      float64 // Lane-center horizontal position
	PlayerTop    float64
	PlayerBottom float64
	PlayerWidth  float64

	Entities []EntityView

	Power            PowerKind
	PowerRemainingMs float64

	Energy    float64 // Clamped to [0,100] for display
	Score     int
	Best      int
	Speed     float64
	ElapsedMs float64

	FieldWidth  float64
	FieldHeight float64
	Lanes       int
}

// Snapshot captures the current state for rendering and tests.
func (s *Simulation) Snapshot() Snapshot {
	top, bottom := s.playerExtent()

	entities := make([]EntityView, 0, len(s.obstacles)+len(s.positives)+len(s.negatives))
	for _, group := range [][]Entity{s.obstacles, s.negatives, s.positives} {
		for _, e := range group {
			entities = append(entities, EntityView{
				Kind: e.Kind,
				Lane: e.Lane,
				X:    s.cfg.Field.LaneCenter(e.Lane),
				Y:    e.Y,
				Size: e.Size,
			})
		}
	}

	return Snapshot{
		State:            s.state,
		Lane:             s.lane,
		PlayerX:          s.cfg.Field.LaneCenter(s.lane),
		PlayerTop:        top,
		PlayerBottom:     bottom,
		PlayerWidth:      s.cfg.Player.Width,
		Entities:         entities,
		Power:            s.power.Active(),
		PowerRemainingMs: s.power.RemainingMs(s.lastMs),
		Energy:           core.ClampF(s.energy, 0, energyMax),
		Score:            s.score,
		Best:             s.best,
		Speed:            s.speed,
		ElapsedMs:        s.elapsedMs,
		FieldWidth:       s.cfg.Field.Width,
		FieldHeight:      s.cfg.Field.Height,
		Lanes:            s.cfg.Field.Lanes,
	}
}
