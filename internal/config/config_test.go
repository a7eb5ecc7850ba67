package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultCubesConfig() {
		t.Errorf("embedded YAML and DefaultCubesConfig differ:\n%+v\n%+v", cfg, DefaultCubesConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cubes.yaml")

	cfg := DefaultCubesConfig()
	cfg.Graphics.Width = 1024
	data := []byte(`
graphics:
  width: 1024
  height: 600
gameplay:
  spawn_buffer: 20
  player_speed: 4
  cube_speed: 3
  diamond_speed: 2
  spawn_interval: 45
  max_entities: 24
  rock_lifetime: 600
  diamond_points: 10
  weights: {hori_left: 4, hori_right: 4, verti_top: 4, verti_bottom: 4, rock: 2, diamond: 3}
images:
  folder_name: ""
  player_cube: player.png
  hori_l_cube: hori_left.png
  hori_r_cube: hori_right.png
  verti_t_cube: verti_top.png
  verti_b_cube: verti_bottom.png
  rock_cube: rock.png
  dia_cube: diamond.png
difficulty:
  enabled: true
  initial_level: 0.0
  progression: {type: time, max_at: 7200}
  scaling: {speed_multiplier: 1.0, interval_reduction: 0.6}
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != cfg {
		t.Errorf("Load() = %+v, expected %+v", got, cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantKey string // empty when the file itself should be named
	}{
		{"non-numeric width", "graphics:\n  width: wide\n", ""},
		{"unknown key", "graphics:\n  widht: 800\n", ""},
		{"missing everything", "graphics:\n  width: 800\n", "graphics.height"},
		{"buffer too large", "graphics: {width: 100, height: 80}\ngameplay: {spawn_buffer: 40}\n", "gameplay.spawn_buffer"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}

			want := tc.wantKey
			if want == "" {
				want = path
			}
			_, err := Load(path)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Key != want {
				t.Fatalf("expected ConfigError for %s, got %v", want, err)
			}
			if tc.wantKey == "" && cfgErr.Err == nil {
				t.Error("decode failure should carry the decoder error")
			}
		})
	}

	_, err := Load(filepath.Join(dir, "absent.yaml"))
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing custom file: expected ConfigError wrapping ErrNotExist, got %v", err)
	}
}

func TestLoadSearchPathErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantKey string
	}{
		{"non-numeric width", "graphics:\n  width: abc\n", filepath.Join("configs", configFile)},
		{"invalid value", "graphics: {width: 800, height: -1}\n", "graphics.height"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			chdir(t, t.TempDir())

			if err := os.Mkdir("configs", 0o755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(filepath.Join("configs", configFile), []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}

			cfg, err := Load("")
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Key != tc.wantKey {
				t.Fatalf("Load() = %+v, %v; expected ConfigError for %s", cfg.Graphics, err, tc.wantKey)
			}
		})
	}
}

func TestLoadWithoutFilesUsesEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultCubesConfig() {
		t.Errorf("Load() = %+v, expected the embedded defaults", cfg)
	}
}

func TestValidateWeights(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(w *SpawnWeights)
		wantKey string
	}{
		{"negative rock", func(w *SpawnWeights) { w.Rock = -3 }, "gameplay.weights.rock"},
		{"negative diamond", func(w *SpawnWeights) { w.Diamond = -1 }, "gameplay.weights.diamond"},
		{"all zero", func(w *SpawnWeights) { *w = SpawnWeights{} }, "gameplay.weights"},
		{"only rocks", func(w *SpawnWeights) { *w = SpawnWeights{Rock: 1} }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCubesConfig()
			tc.mutate(&cfg.Gameplay.Weights)

			err := cfg.Validate()
			if tc.wantKey == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Key != tc.wantKey {
				t.Errorf("Validate() = %v, expected ConfigError for %s", err, tc.wantKey)
			}
		})
	}
}

func TestValidateImages(t *testing.T) {
	cfg := DefaultCubesConfig()
	cfg.Images.RockCube = ""

	var cfgErr *ConfigError
	if err := cfg.Validate(); !errors.As(err, &cfgErr) || cfgErr.Key != "images.rock_cube" {
		t.Errorf("expected images.rock_cube error, got %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultCubesConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultCubesConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset gave %+v", cfg.Difficulty)
	}
	if cfg.Gameplay.MaxEntities != 36 {
		t.Errorf("hard preset MaxEntities = %d, expected 36", cfg.Gameplay.MaxEntities)
	}

	cfg = DefaultCubesConfig()
	ApplyPreset(&cfg, ParsePreset("bogus"))
	if cfg != DefaultCubesConfig() {
		t.Error("unknown preset should leave the config unchanged")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultCubesConfig().Difficulty
	d := NewDifficultyManager(cfg)

	if lvl := d.Level(0, 0); lvl != 0 {
		t.Errorf("Level at start = %f, expected 0", lvl)
	}
	if lvl := d.Level(0, 3600); lvl != 0.5 {
		t.Errorf("Level at half time = %f, expected 0.5", lvl)
	}
	if lvl := d.Level(0, 100000); lvl != 1 {
		t.Errorf("Level should clamp at 1, got %f", lvl)
	}

	if s := d.Speed(3, 0, 0); s != 3 {
		t.Errorf("Speed at start = %d, expected 3", s)
	}
	if s := d.Speed(3, 0, 7200); s != 6 {
		t.Errorf("Speed at max = %d, expected 6", s)
	}

	if i := d.Interval(45, 0, 0); i != 45 {
		t.Errorf("Interval at start = %d, expected 45", i)
	}
	if i := d.Interval(45, 0, 7200); i != 18 {
		t.Errorf("Interval at max = %d, expected 18", i)
	}
	if i := d.Interval(1, 0, 7200); i != 1 {
		t.Errorf("Interval should never drop below 1, got %d", i)
	}

	cfg.Enabled = false
	cfg.InitialLevel = 0.3
	fixed := NewDifficultyManager(cfg)
	if fixed.IsEnabled() || fixed.Level(0, 100000) != 0.3 {
		t.Error("disabled manager should stay at the initial level")
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (stand-in for testing.T.Chdir on older Go).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
