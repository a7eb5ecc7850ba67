// Package config provides YAML-based game configuration loading and
// difficulty management for the cubes game.
package config

// CubesConfig contains all configuration for the cubes game.
type CubesConfig struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Images     ImagesConfig     `yaml:"images"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GraphicsConfig is the size of the play area in pixels.
type GraphicsConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameplayConfig defines spawning and scoring parameters.
type GameplayConfig struct {
	SpawnBuffer   int          `yaml:"spawn_buffer"`   // Off-screen margin in pixels
	PlayerSpeed   int          `yaml:"player_speed"`   // Pixels per tick while a direction is held
	CubeSpeed     int          `yaml:"cube_speed"`     // Base speed of directional cubes
	DiamondSpeed  int          `yaml:"diamond_speed"`  // Base speed of diamonds, per axis
	SpawnInterval int          `yaml:"spawn_interval"` // Ticks between spawns at the easiest level
	MaxEntities   int          `yaml:"max_entities"`   // Cap on live non-player cubes
	RockLifetime  int          `yaml:"rock_lifetime"`  // Ticks before a rock crumbles
	DiamondPoints int          `yaml:"diamond_points"` // Score for collecting a diamond
	Weights       SpawnWeights `yaml:"weights"`
}

// SpawnWeights sets the relative frequency of each spawned kind.
type SpawnWeights struct {
	HoriLeft    int `yaml:"hori_left"`
	HoriRight   int `yaml:"hori_right"`
	VertiTop    int `yaml:"verti_top"`
	VertiBottom int `yaml:"verti_bottom"`
	Rock        int `yaml:"rock"`
	Diamond     int `yaml:"diamond"`
}

// Total returns the sum of all weights.
func (w SpawnWeights) Total() int {
	return w.HoriLeft + w.HoriRight + w.VertiTop + w.VertiBottom + w.Rock + w.Diamond
}

// ImagesConfig names the sprite file for each cube kind. An empty
// FolderName selects the built-in sprites.
type ImagesConfig struct {
	FolderName  string `yaml:"folder_name"`
	PlayerCube  string `yaml:"player_cube"`
	HoriLCube   string `yaml:"hori_l_cube"`
	HoriRCube   string `yaml:"hori_r_cube"`
	VertiTCube  string `yaml:"verti_t_cube"`
	VertiBCube  string `yaml:"verti_b_cube"`
	RockCube    string `yaml:"rock_cube"`
	DiamondCube string `yaml:"dia_cube"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to the speed factor at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of the spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown or empty values yield
// an empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *CubesConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.SpawnInterval += cfg.Gameplay.SpawnInterval / 2
	case DifficultyHard:
		cfg.Gameplay.MaxEntities += cfg.Gameplay.MaxEntities / 2
	}
}
