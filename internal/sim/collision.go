package sim

import "github.com/mkraev/lanedash/internal/core"

// playerExtent returns the player's vertical hitbox.
func (s *Simulation) playerExtent() (top, bottom float64) {
	bottom = s.cfg.Field.Height - s.cfg.Player.BottomOffset
	top = bottom - s.cfg.Player.Height
	return top, bottom
}

// overlapsPlayer reports whether the entity collides with the player:
// same lane and overlapping vertical extents with the forgiving margin.
func (s *Simulation) overlapsPlayer(e *Entity) bool {
	if e.Lane != s.lane {
		return false
	}
	top, bottom := s.playerExtent()
	return e.Bottom() > top-collisionMarginY && e.Y < bottom
}

// resolveCollisions runs once per tick after motion, in the order
// positives, negatives, obstacles. Removal of a hit entity is atomic with
// its scoring side effect; nothing scores twice. Returns true if the
// session ended.
func (s *Simulation) resolveCollisions(nowMs float64) bool {
	kept := s.positives[:0]
	for _, e := range s.positives {
		if s.overlapsPlayer(&e) {
			s.score += positiveScoreGain
			s.energy += positiveEnergyGain
			if s.energy > energyMax {
				s.energy = energyMax
			}
			if s.rng.Float64() < s.cfg.PowerUps.MagnetChance {
				s.power.ActivateMagnet(nowMs)
			}
			continue
		}
		kept = append(kept, e)
	}
	s.positives = kept

	depleted := false
	kept = s.negatives[:0]
	for _, e := range s.negatives {
		if !depleted && s.overlapsPlayer(&e) {
			s.score = core.Max(0, s.score-negativeScorePenalty)
			s.energy -= negativeEnergyDrain
			if s.energy <= 0 {
				depleted = true
			}
			continue
		}
		kept = append(kept, e)
	}
	s.negatives = kept
	if depleted {
		s.finish()
		return true
	}

	kept = s.obstacles[:0]
	fatal := false
	for i, e := range s.obstacles {
		if !fatal && s.overlapsPlayer(&e) {
			if s.power.Active() == PowerShield {
				// Shield is single-use: block one obstacle, then clear.
				s.power.Consume()
				s.score += shieldBlockScore
				continue
			}
			fatal = true
			// The fatal obstacle and the rest stay in the frozen scene.
			kept = append(kept, s.obstacles[i:]...)
			break
		}
		kept = append(kept, e)
	}
	s.obstacles = kept
	if fatal {
		s.finish()
		return true
	}
	return false
}
