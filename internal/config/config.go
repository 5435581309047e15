// Package config provides YAML-based configuration loading for lanedash.
package config

// Config contains all tunable parameters for the game.
// Field units are abstract simulation units, not screen cells; the view
// projects them onto the terminal.
type Config struct {
	Field    FieldConfig    `yaml:"field"`
	Player   PlayerConfig   `yaml:"player"`
	Entities EntitiesConfig `yaml:"entities"`
	PowerUps PowerUpsConfig `yaml:"powerups"`
}

// FieldConfig defines the play field geometry.
type FieldConfig struct {
	Lanes  int     `yaml:"lanes"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LaneCenter returns the horizontal center of the given lane.
func (f FieldConfig) LaneCenter(lane int) float64 {
	laneW := f.Width / float64(f.Lanes)
	return laneW*float64(lane) + laneW/2
}

// PlayerConfig defines the player hitbox.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from field bottom to player bottom
}

// EntityKindConfig defines spawn and motion parameters for one entity kind.
type EntityKindConfig struct {
	Size          float64 `yaml:"size"`
	SpawnY        float64 `yaml:"spawn_y"` // Negative = above the visible area
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	DespawnMargin float64 `yaml:"despawn_margin"`
}

// EntitiesConfig groups the three entity kinds.
type EntitiesConfig struct {
	Obstacle EntityKindConfig `yaml:"obstacle"`
	Positive EntityKindConfig `yaml:"positive"`
	Negative EntityKindConfig `yaml:"negative"`
}

// PowerUpsConfig defines power-up behavior.
type PowerUpsConfig struct {
	MagnetChance     float64 `yaml:"magnet_chance"`      // Proc chance on a positive pickup hit [0,1]
	MagnetDurationMs float64 `yaml:"magnet_duration_ms"`
	MagnetRange      float64 `yaml:"magnet_range"` // Horizontal pull reach from the player's lane center
	MagnetPull       float64 `yaml:"magnet_pull"`  // Extra downward pull rate
	ShieldDurationMs float64 `yaml:"shield_duration_ms"`
}
