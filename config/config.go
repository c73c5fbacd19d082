// Package config loads and validates board configuration from YAML.
package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "5s" or "2m" parse.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type Config struct {
	Width      int    `yaml:"width" validate:"min=16,max=512"`
	Height     int    `yaml:"height" validate:"min=16,max=512"`
	Backend    string `yaml:"backend" validate:"oneof=emulator headless"`
	Title      string `yaml:"title"`
	Brightness int    `yaml:"brightness" validate:"min=0,max=100"`
	FrameRate  int    `yaml:"frame_rate" validate:"min=1,max=120"`
	AnimRate   int    `yaml:"anim_rate" validate:"min=1,max=120"`

	RotateEvery   Duration `yaml:"rotate_every"`
	FetchEvery    Duration `yaml:"fetch_every"`
	CrowdingEvery Duration `yaml:"crowding_every"`
}

func Default() Config {
	return Config{
		Width:         96,
		Height:        80,
		Backend:       "emulator",
		Title:         "departures",
		Brightness:    100,
		FrameRate:     30,
		AnimRate:      30,
		RotateEvery:   Duration(5 * time.Second),
		FetchEvery:    Duration(30 * time.Second),
		CrowdingEvery: Duration(time.Minute),
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Load reads the config at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
