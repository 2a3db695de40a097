package config

import (
	_ "embed"
)

//go:embed defaults/colorbang.yaml
var defaultColorBangYAML []byte

// DefaultColorBangConfig returns the default Color Bang configuration.
func DefaultColorBangConfig() ColorBangConfig {
	return ColorBangConfig{
		Field: FieldConfig{
			Width:  1280,
			Height: 720,
		},
		Player: PlayerConfig{
			Radius:   15,
			RotSpeed: 4,
			Accel:    400,
			MaxSpeed: 250,
			Drag:     50,
		},
		Weapon: WeaponConfig{
			FireCooldown:   6,
			ChargesPerWave: 10,
		},
		Waves: WaveConfig{
			Initial: 3,
			PerWave: 2,
			Max:     40,
		},
		Particles: ParticlesConfig{
			PlayerHit:    impactBurst(20),
			BulletHit:    impactBurst(40),
			EnemyContact: contactBurst(),
		},
		Enemies: EnemiesConfig{
			SelfCollision: false,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 15,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				EnemyMultiplier: 0.5,
			},
		},
	}
}

func impactBurst(count int) BurstConfig {
	return BurstConfig{
		Count:       count,
		MinSpeed:    40,
		MaxSpeed:    220,
		Radius:      3,
		Drag:        0.96,
		AlphaDecay:  0.94,
		RadiusDecay: 0.98,
		MinRadius:   0.5,
	}
}

func contactBurst() BurstConfig {
	return BurstConfig{
		Count:       10,
		MinSpeed:    40,
		MaxSpeed:    220,
		Radius:      2,
		Drag:        0.96,
		AlphaDecay:  1,
		RadiusDecay: 0.95,
		MinRadius:   0.5,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "colorbang", "colorbang_chaos":
		return defaultColorBangYAML
	default:
		return nil
	}
}
