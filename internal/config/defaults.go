package config

import (
	_ "embed"
)

//go:embed defaults/cubes.yaml
var defaultCubesYAML []byte

// DefaultCubesConfig returns the hardcoded default configuration. It
// matches defaults/cubes.yaml and is used if that document cannot be parsed.
func DefaultCubesConfig() CubesConfig {
	return CubesConfig{
		Graphics: GraphicsConfig{
			Width:  800,
			Height: 600,
		},
		Gameplay: GameplayConfig{
			SpawnBuffer:   20,
			PlayerSpeed:   4,
			CubeSpeed:     3,
			DiamondSpeed:  2,
			SpawnInterval: 45,
			MaxEntities:   24,
			RockLifetime:  600,
			DiamondPoints: 10,
			Weights: SpawnWeights{
				HoriLeft:    4,
				HoriRight:   4,
				VertiTop:    4,
				VertiBottom: 4,
				Rock:        2,
				Diamond:     3,
			},
		},
		Images: ImagesConfig{
			PlayerCube:  "player.png",
			HoriLCube:   "hori_left.png",
			HoriRCube:   "hori_right.png",
			VertiTCube:  "verti_top.png",
			VertiBCube:  "verti_bottom.png",
			RockCube:    "rock.png",
			DiamondCube: "diamond.png",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200, // 2 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 0.6,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML document.
func GetDefaultYAML() []byte {
	return defaultCubesYAML
}
