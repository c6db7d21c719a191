package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-snake/constants"
)

// Config holds all tunables for a game instance and its terminal host
type Config struct {
	Gameplay Gameplay `yaml:"gameplay"`
	Display  Display  `yaml:"display"`
	Audio    Audio    `yaml:"audio"`
}

// Gameplay holds simulation tunables
type Gameplay struct {
	GridUnit           int           `yaml:"grid_unit"`
	FieldWidth         int           `yaml:"field_width"`
	FieldHeight        int           `yaml:"field_height"`
	TickInterval       time.Duration `yaml:"tick_interval"`
	AgingInterval      time.Duration `yaml:"aging_interval"`
	BoostFactor        float64       `yaml:"boost_factor"`
	MouseLife          int           `yaml:"mouse_life"`
	MouseTarget        int           `yaml:"mouse_target"`
	MaxMice            int           `yaml:"max_mice"`
	MouseCapLengthStep int           `yaml:"mouse_cap_length_step"`
	MaxPointValue      int           `yaml:"max_point_value"`
	GoldenAfterEaten   int           `yaml:"golden_after_eaten"`
	SpawnMaxAttempts   int           `yaml:"spawn_max_attempts"`
	AvoidPredictedPath bool          `yaml:"avoid_predicted_path"`
	Thresholds         Thresholds    `yaml:"expansion_thresholds"`
}

// Thresholds maps score tiers to the occupancy ratio that triggers expansion
type Thresholds struct {
	Low       float64 `yaml:"low"`
	Mid       float64 `yaml:"mid"`
	High      float64 `yaml:"high"`
	MidScore  int     `yaml:"mid_score"`
	HighScore int     `yaml:"high_score"`
}

// Display holds terminal layout tunables
type Display struct {
	HUDWidth    int `yaml:"hud_width"` // field units
	CellColumns int `yaml:"cell_columns"`
}

// Audio holds eat cue tunables
type Audio struct {
	Enabled   bool          `yaml:"enabled"`
	Frequency float64       `yaml:"frequency"`
	Duration  time.Duration `yaml:"duration"`
	Volume    float64       `yaml:"volume"` // linear gain, 0 is silent
}

// Default returns a Config populated from constants
func Default() Config {
	return Config{
		Gameplay: Gameplay{
			GridUnit:           constants.GridUnit,
			FieldWidth:         constants.InitialFieldWidth,
			FieldHeight:        constants.InitialFieldHeight,
			TickInterval:       constants.BaseTickInterval,
			AgingInterval:      constants.AgingInterval,
			BoostFactor:        constants.BoostFactor,
			MouseLife:          constants.InitialMouseLife,
			MouseTarget:        constants.InitialMouseTarget,
			MaxMice:            constants.MaxMice,
			MouseCapLengthStep: constants.MouseCapLengthStep,
			MaxPointValue:      constants.MaxPointValue,
			GoldenAfterEaten:   constants.GoldenAfterEaten,
			SpawnMaxAttempts:   constants.SpawnMaxAttempts,
			AvoidPredictedPath: constants.AvoidPredictedPath,
			Thresholds: Thresholds{
				Low:       constants.ExpansionThresholdLow,
				Mid:       constants.ExpansionThresholdMid,
				High:      constants.ExpansionThresholdHigh,
				MidScore:  constants.ExpansionScoreMid,
				HighScore: constants.ExpansionScoreHigh,
			},
		},
		Display: Display{
			HUDWidth:    constants.HUDWidth,
			CellColumns: constants.CellColumns,
		},
		Audio: Audio{
			Enabled:   true,
			Frequency: constants.EatCueFrequency,
			Duration:  constants.EatCueDuration,
			Volume:    constants.EatCueVolume,
		},
	}
}

// Load reads a YAML config over the defaults
// A missing file is not an error and yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Validate checks invariants the simulation relies on
func (c Config) Validate() error {
	g := c.Gameplay
	switch {
	case g.GridUnit <= 0:
		return fmt.Errorf("%w: grid_unit must be positive", ErrInvalid)
	case g.FieldWidth <= 0 || g.FieldWidth%g.GridUnit != 0:
		return fmt.Errorf("%w: field_width must be a positive multiple of grid_unit", ErrInvalid)
	case g.FieldHeight <= 0 || g.FieldHeight%g.GridUnit != 0:
		return fmt.Errorf("%w: field_height must be a positive multiple of grid_unit", ErrInvalid)
	case g.TickInterval <= 0 || g.AgingInterval <= 0:
		return fmt.Errorf("%w: intervals must be positive", ErrInvalid)
	case g.BoostFactor < 0:
		return fmt.Errorf("%w: boost_factor must not be negative", ErrInvalid)
	case g.MouseLife <= 0:
		return fmt.Errorf("%w: mouse_life must be positive", ErrInvalid)
	case g.MouseTarget <= 0 || g.MouseTarget > g.MaxMice:
		return fmt.Errorf("%w: mouse_target must be in 1..max_mice", ErrInvalid)
	case g.MouseCapLengthStep <= 0:
		return fmt.Errorf("%w: mouse_cap_length_step must be positive", ErrInvalid)
	case g.MaxPointValue <= 0:
		return fmt.Errorf("%w: max_point_value must be positive", ErrInvalid)
	case g.GoldenAfterEaten < 0:
		return fmt.Errorf("%w: golden_after_eaten must not be negative", ErrInvalid)
	case g.SpawnMaxAttempts < 0:
		return fmt.Errorf("%w: spawn_max_attempts must not be negative", ErrInvalid)
	}

	t := g.Thresholds
	if !(t.Low > 0 && t.Low <= t.Mid && t.Mid <= t.High && t.High <= 1) {
		return fmt.Errorf("%w: expansion thresholds must satisfy 0 < low <= mid <= high <= 1", ErrInvalid)
	}
	if t.MidScore < 0 || t.MidScore > t.HighScore {
		return fmt.Errorf("%w: expansion score tiers must satisfy 0 <= mid_score <= high_score", ErrInvalid)
	}

	if c.Display.HUDWidth < 0 || c.Display.CellColumns <= 0 {
		return fmt.Errorf("%w: display sizes must be positive", ErrInvalid)
	}

	a := c.Audio
	if a.Enabled && (a.Frequency <= 0 || a.Duration <= 0 || a.Volume < 0 || a.Volume > 1) {
		return fmt.Errorf("%w: audio needs positive frequency and duration, volume in 0..1", ErrInvalid)
	}
	return nil
}
