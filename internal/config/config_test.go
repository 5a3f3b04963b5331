package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Recognition.SampleIntervalMS != 30 || cfg.Recognition.Tolerance != 0.12 {
		t.Fatalf("unexpected defaults %+v", cfg.Recognition)
	}
}

func TestTOMLThenEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[recognition]\nsample-interval-ms = 50\ntolerance = 0.2\n\n[storage]\ndb = \"/tmp/from-toml.db\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RUNECAST_DB", "/tmp/from-env.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Recognition.SampleIntervalMS != 50 || cfg.Recognition.Tolerance != 0.2 {
		t.Fatalf("toml values not applied: %+v", cfg.Recognition)
	}
	if cfg.Recognition.BendAngle != 2.7 {
		t.Fatalf("unset key must keep default, got %v", cfg.Recognition.BendAngle)
	}
	if cfg.Storage.DBPath != "/tmp/from-env.db" {
		t.Fatalf("env must override toml, got %q", cfg.Storage.DBPath)
	}
	if got := cfg.Engine().SampleInterval; got != 50*time.Millisecond {
		t.Fatalf("engine interval=%v", got)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Recognition.Tolerance = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected tolerance error")
	}
	cfg = Default()
	cfg.Log.Level = "chatty"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected log level error")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Audio.SoundDir = "/srv/sounds"
	cfg.Recognition.BendAngle = 2.5
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Audio.SoundDir != "/srv/sounds" || got.Recognition.BendAngle != 2.5 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600, got %v", info.Mode().Perm())
	}
}
