package sim

import "github.com/mkraev/lanedash/internal/config"

// Kind discriminates the three entity variants.
type Kind int

const (
	KindObstacle Kind = iota // Fatal on contact unless shielded
	KindPositive             // Collectible: score and energy up
	KindNegative             // Hazardous pickup: score and energy down
)

// String returns the name of the entity kind.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindPositive:
		return "positive"
	case KindNegative:
		return "negative"
	default:
		return "?"
	}
}

// Entity is a single falling object confined to one lane.
// Lane and VY are fixed at spawn; only Y changes afterwards.
type Entity struct {
	Kind Kind
	Lane int
	Y    float64 // Top edge, increases downward
	VY   float64 // Fall speed in field units per second
	Size float64 // Square hitbox edge length
}

// Bottom returns the entity's bottom edge.
func (e Entity) Bottom() float64 {
	return e.Y + e.Size
}

// kindConfig returns the spawn parameters for the given kind.
func kindConfig(cfg *config.EntitiesConfig, k Kind) config.EntityKindConfig {
	switch k {
	case KindPositive:
		return cfg.Positive
	case KindNegative:
		return cfg.Negative
	default:
		return cfg.Obstacle
	}
}
