package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ─── Generator profile ──────────────────────────────────────────────────

// LocationConfig anchors every buoy of a dataset around one base point.
type LocationConfig struct {
	BaseLat      float64 `yaml:"base_lat"`
	BaseLng      float64 `yaml:"base_lng"`
	LatSpreadDeg float64 `yaml:"lat_spread_deg"` // max |offset| from base_lat
	LngSpreadDeg float64 `yaml:"lng_spread_deg"` // max |offset| from base_lng
}

// TimelineConfig controls deployment dates and reading cadence.
type TimelineConfig struct {
	Epoch             string `yaml:"epoch"` // YYYY-MM-DD, UTC
	DeploymentWindowD int    `yaml:"deployment_window_days"`
	StartJitterHours  int    `yaml:"start_jitter_hours"`
	StepHours         []int  `yaml:"step_hours"`
}

// DeploymentConfig bounds the depth draw and names extra platforms.
type DeploymentConfig struct {
	MinDepthM int      `yaml:"min_depth_m"`
	MaxDepthM int      `yaml:"max_depth_m"`
	Platforms []string `yaml:"platforms"` // appended to the per-type platform
}

// GeneratorProfile is the top-level structure for generator.yaml.
// Every field is optional; zero values fall back to DefaultProfile.
type GeneratorProfile struct {
	Location   LocationConfig   `yaml:"location"`
	Timeline   TimelineConfig   `yaml:"timeline"`
	Deployment DeploymentConfig `yaml:"deployment"`
	// Trend biases every series linearly across its length; 0 disables it.
	Trend float64 `yaml:"trend"`
}

// DefaultProfile returns the profile used when no YAML file is given.
func DefaultProfile() *GeneratorProfile {
	return &GeneratorProfile{
		Location: LocationConfig{
			BaseLat:      -20.0,
			BaseLng:      145.0,
			LatSpreadDeg: 5,
			LngSpreadDeg: 10,
		},
		Timeline: TimelineConfig{
			Epoch:             "2022-01-01",
			DeploymentWindowD: 365,
			StartJitterHours:  24 * 30,
			StepHours:         []int{1},
		},
		Deployment: DeploymentConfig{
			MinDepthM: 10,
			MaxDepthM: 100,
			Platforms: []string{"OceanSense-X-Context"},
		},
	}
}

// EpochTime parses Timeline.Epoch as midnight UTC.
func (p *GeneratorProfile) EpochTime() (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", p.Timeline.Epoch, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeline.epoch %q: %w", p.Timeline.Epoch, err)
	}
	return t, nil
}

// Validate rejects profiles the generator cannot honour.
func (p *GeneratorProfile) Validate() error {
	if _, err := p.EpochTime(); err != nil {
		return err
	}
	if len(p.Timeline.StepHours) == 0 {
		return errors.New("timeline.step_hours must not be empty")
	}
	for _, h := range p.Timeline.StepHours {
		if h <= 0 {
			return fmt.Errorf("timeline.step_hours: %d is not positive", h)
		}
	}
	if p.Timeline.DeploymentWindowD < 0 || p.Timeline.StartJitterHours < 0 {
		return errors.New("timeline windows must not be negative")
	}
	if p.Location.LatSpreadDeg < 0 || p.Location.LngSpreadDeg < 0 {
		return errors.New("location spreads must not be negative")
	}
	if p.Deployment.MinDepthM < 0 || p.Deployment.MaxDepthM < p.Deployment.MinDepthM {
		return fmt.Errorf("deployment depth range [%d, %d] is invalid",
			p.Deployment.MinDepthM, p.Deployment.MaxDepthM)
	}
	return nil
}

// ─── Loaders ────────────────────────────────────────────────────────────

// LoadGeneratorProfile reads generator.yaml over the defaults. An empty
// path returns DefaultProfile unchanged.
func LoadGeneratorProfile(path string) (*GeneratorProfile, error) {
	cfg := DefaultProfile()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read generator profile: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse generator profile: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generator profile %s: %w", path, err)
	}
	return cfg, nil
}

// ─── Environment ────────────────────────────────────────────────────────

// Environment variables that provide flag defaults.
const (
	EnvConfig   = "REEF_DATAGEN_CONFIG"
	EnvSeed     = "REEF_DATAGEN_SEED"
	EnvLogLevel = "REEF_DATAGEN_LOG_LEVEL"
)

// EnvDefaults holds flag defaults taken from the environment.
type EnvDefaults struct {
	ConfigPath string
	Seed       int64
	LogLevel   string
}

// LoadEnvDefaults loads the given .env files (missing files are fine) and
// reads the REEF_DATAGEN_* variables. Variables already set in the process
// environment win over .env entries.
func LoadEnvDefaults(files ...string) (EnvDefaults, error) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return EnvDefaults{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	d := EnvDefaults{
		ConfigPath: os.Getenv(EnvConfig),
		LogLevel:   os.Getenv(EnvLogLevel),
	}
	if d.LogLevel == "" {
		d.LogLevel = INFO.String()
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return EnvDefaults{}, fmt.Errorf("%s=%q: %w", EnvSeed, v, err)
		}
		d.Seed = seed
	}
	return d, nil
}
