// Package config provides YAML-based game configuration loading and
// difficulty management for Color Bang.
package config

import (
	"errors"
	"fmt"
)

// ColorBangConfig contains all configuration for the Color Bang game.
type ColorBangConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Weapon     WeaponConfig     `yaml:"weapon"`
	Waves      WaveConfig       `yaml:"waves"`
	Particles  ParticlesConfig  `yaml:"particles"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig is the size of the play field in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the ship's size and handling.
type PlayerConfig struct {
	Radius   float64 `yaml:"radius"`
	RotSpeed float64 `yaml:"rot_speed"` // radians per second
	Accel    float64 `yaml:"accel"`     // units per second squared
	MaxSpeed float64 `yaml:"max_speed"`
	Drag     float64 `yaml:"drag"` // speed lost per second
}

// WeaponConfig defines firing and the super-bang economy.
type WeaponConfig struct {
	FireCooldown   int `yaml:"fire_cooldown"`    // ticks between single shots
	ChargesPerWave int `yaml:"charges_per_wave"` // multiplied by the wave number
}

// WaveConfig defines how many enemies each wave brings.
type WaveConfig struct {
	Initial int `yaml:"initial"`
	PerWave int `yaml:"per_wave"`
	Max     int `yaml:"max"` // 0 means unbounded
}

// ParticlesConfig holds the three impact burst shapes.
type ParticlesConfig struct {
	PlayerHit    BurstConfig `yaml:"player_hit"`
	BulletHit    BurstConfig `yaml:"bullet_hit"`
	EnemyContact BurstConfig `yaml:"enemy_contact"`
}

// BurstConfig shapes one particle burst. Decay factors of 1 disable that decay.
type BurstConfig struct {
	Count       int     `yaml:"count"`
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	Radius      float64 `yaml:"radius"`
	Drag        float64 `yaml:"drag"`
	AlphaDecay  float64 `yaml:"alpha_decay"`
	RadiusDecay float64 `yaml:"radius_decay"`
	MinRadius   float64 `yaml:"min_radius"`
}

// EnemiesConfig toggles enemy behaviour variants.
type EnemiesConfig struct {
	SelfCollision bool `yaml:"self_collision"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "wave", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Wave/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed at max difficulty
	EnemyMultiplier float64 `yaml:"enemy_multiplier"` // Added to enemy count at max difficulty
}

// Validate reports the first setting that would make the game unplayable.
func (c ColorBangConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("config: field must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	}
	if c.Player.Radius <= 0 {
		return fmt.Errorf("config: player radius must be positive, got %v", c.Player.Radius)
	}
	if c.Player.MaxSpeed < 0 {
		return errors.New("config: player max_speed must not be negative")
	}
	if c.Waves.Initial < 0 || c.Waves.PerWave < 0 {
		return errors.New("config: wave sizes must not be negative")
	}
	for name, b := range map[string]BurstConfig{
		"player_hit":    c.Particles.PlayerHit,
		"bullet_hit":    c.Particles.BulletHit,
		"enemy_contact": c.Particles.EnemyContact,
	} {
		if b.Count < 0 {
			return fmt.Errorf("config: particles.%s.count must not be negative", name)
		}
		if b.MaxSpeed < b.MinSpeed {
			return fmt.Errorf("config: particles.%s max_speed below min_speed", name)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
