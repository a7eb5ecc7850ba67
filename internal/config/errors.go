package config

import "fmt"

// ConfigError reports a missing or invalid setting, or a file that does
// not decode.
type ConfigError struct {
	Key    string // Dotted YAML path, e.g. "gameplay.spawn_buffer", or the file path
	Reason string
	Err    error // Decoder error, if any
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config: %s: %s: %v", e.Key, e.Reason, e.Err)
	}
	return fmt.Sprintf("config: %s: %s", e.Key, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Validate checks that every setting the game depends on is present and
// sensible. It returns the first problem found as a *ConfigError.
func (c CubesConfig) Validate() error {
	g, p := c.Graphics, c.Gameplay

	switch {
	case g.Width <= 0:
		return &ConfigError{Key: "graphics.width", Reason: "must be positive"}
	case g.Height <= 0:
		return &ConfigError{Key: "graphics.height", Reason: "must be positive"}
	case p.SpawnBuffer < 0:
		return &ConfigError{Key: "gameplay.spawn_buffer", Reason: "must not be negative"}
	case p.SpawnBuffer*2 >= min(g.Width, g.Height):
		return &ConfigError{Key: "gameplay.spawn_buffer", Reason: fmt.Sprintf("must be less than half of %d", min(g.Width, g.Height))}
	case p.PlayerSpeed <= 0:
		return &ConfigError{Key: "gameplay.player_speed", Reason: "must be positive"}
	case p.CubeSpeed < 0:
		return &ConfigError{Key: "gameplay.cube_speed", Reason: "must not be negative"}
	case p.DiamondSpeed < 0:
		return &ConfigError{Key: "gameplay.diamond_speed", Reason: "must not be negative"}
	case p.SpawnInterval <= 0:
		return &ConfigError{Key: "gameplay.spawn_interval", Reason: "must be positive"}
	case p.MaxEntities <= 0:
		return &ConfigError{Key: "gameplay.max_entities", Reason: "must be positive"}
	}

	w := p.Weights
	weights := []struct {
		key   string
		value int
	}{
		{"gameplay.weights.hori_left", w.HoriLeft},
		{"gameplay.weights.hori_right", w.HoriRight},
		{"gameplay.weights.verti_top", w.VertiTop},
		{"gameplay.weights.verti_bottom", w.VertiBottom},
		{"gameplay.weights.rock", w.Rock},
		{"gameplay.weights.diamond", w.Diamond},
	}
	for _, wt := range weights {
		if wt.value < 0 {
			return &ConfigError{Key: wt.key, Reason: "must not be negative"}
		}
	}
	if w.Total() <= 0 {
		return &ConfigError{Key: "gameplay.weights", Reason: "at least one weight must be positive"}
	}

	images := []struct {
		key, value string
	}{
		{"images.player_cube", c.Images.PlayerCube},
		{"images.hori_l_cube", c.Images.HoriLCube},
		{"images.hori_r_cube", c.Images.HoriRCube},
		{"images.verti_t_cube", c.Images.VertiTCube},
		{"images.verti_b_cube", c.Images.VertiBCube},
		{"images.rock_cube", c.Images.RockCube},
		{"images.dia_cube", c.Images.DiamondCube},
	}
	for _, img := range images {
		if img.value == "" {
			return &ConfigError{Key: img.key, Reason: "missing file name"}
		}
	}

	return nil
}
