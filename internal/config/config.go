// Package config loads recognition tunables and file locations from a TOML
// file with environment overrides.
package config

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/appengine-ltd/runecast/internal/gesture"
	"github.com/appengine-ltd/runecast/internal/logging"
	"github.com/appengine-ltd/runecast/internal/recognition"
)

type Config struct {
	Recognition RecognitionConfig `toml:"recognition"`
	Storage     StorageConfig     `toml:"storage"`
	Audio       AudioConfig       `toml:"audio"`
	Log         LogConfig         `toml:"log"`
}

type RecognitionConfig struct {
	SampleIntervalMS int     `toml:"sample-interval-ms" env:"RUNECAST_SAMPLE_INTERVAL_MS"`
	Tolerance        float64 `toml:"tolerance" env:"RUNECAST_TOLERANCE"`
	BendAngle        float64 `toml:"bend-angle" env:"RUNECAST_BEND_ANGLE"`
}

type StorageConfig struct {
	DBPath        string `toml:"db" env:"RUNECAST_DB"`
	RecordingsDir string `toml:"recordings" env:"RUNECAST_RECORDINGS"`
}

type AudioConfig struct {
	SoundDir string `toml:"sounds" env:"RUNECAST_SOUNDS"`
}

type LogConfig struct {
	Level string `toml:"level" env:"RUNECAST_LOG_LEVEL"`
}

func Default() Config {
	return Config{
		Recognition: RecognitionConfig{
			SampleIntervalMS: int(gesture.DefaultSampleInterval / time.Millisecond),
			Tolerance:        gesture.DefaultTolerance,
			BendAngle:        gesture.DefaultBendAngle,
		},
		Storage: StorageConfig{
			DBPath:        DefaultDBPath(),
			RecordingsDir: DefaultRecordingDir(),
		},
		Audio: AudioConfig{SoundDir: DefaultSoundDir()},
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads the TOML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return Config{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to stat config: %w", err)
		}
	} else if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	r := c.Recognition
	if r.SampleIntervalMS < 0 {
		return fmt.Errorf("sample-interval-ms must not be negative, got %d", r.SampleIntervalMS)
	}
	if r.Tolerance < 0 || r.Tolerance >= 1 {
		return fmt.Errorf("tolerance must be in [0,1), got %.3f", r.Tolerance)
	}
	if r.BendAngle <= 0 || r.BendAngle > math.Pi {
		return fmt.Errorf("bend-angle must be in (0,pi], got %.3f", r.BendAngle)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Engine converts the recognition section into engine settings.
func (c Config) Engine() recognition.Config {
	cfg := recognition.DefaultConfig()
	cfg.SampleInterval = time.Duration(c.Recognition.SampleIntervalMS) * time.Millisecond
	cfg.Simplify = gesture.SimplifyOptions{
		Tolerance: c.Recognition.Tolerance,
		BendAngle: c.Recognition.BendAngle,
	}
	return cfg
}

// Save writes cfg as TOML, replacing path atomically.
func Save(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "config-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	cleanup = false
	return nil
}
