package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseRunGun(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default YAML failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunGunConfig()) {
		t.Errorf("embedded YAML drifted from DefaultRunGunConfig():\n yaml: %+v\n code: %+v", cfg, DefaultRunGunConfig())
	}
}

func TestDefaultConstants(t *testing.T) {
	cfg := DefaultRunGunConfig()

	if cfg.Physics.Speed != 5 || cfg.Physics.JumpImpulse != -14 || cfg.Physics.Gravity != 0.8 {
		t.Errorf("unexpected physics defaults: %+v", cfg.Physics)
	}
	if cfg.Bullet.Speed != 10 || cfg.Bullet.Damage != 10 {
		t.Errorf("unexpected bullet defaults: %+v", cfg.Bullet)
	}
	if cfg.Enemy.Health != 30 || cfg.Enemy.VX != -2 {
		t.Errorf("unexpected enemy defaults: %+v", cfg.Enemy)
	}
	if cfg.Spawner.Interval != 1.0 || cfg.Frame.MaxDelta != 0.1 {
		t.Errorf("unexpected timing defaults: spawner=%+v frame=%+v", cfg.Spawner, cfg.Frame)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadRunGunCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "physics:\n  speed: 7\nenemy:\n  health: 50\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunGun(path)
	if err != nil {
		t.Fatalf("LoadRunGun() failed: %v", err)
	}
	if cfg.Physics.Speed != 7 || cfg.Enemy.Health != 50 {
		t.Errorf("overrides not applied: speed=%v health=%v", cfg.Physics.Speed, cfg.Enemy.Health)
	}
	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("unset keys should keep defaults, gravity=%v", cfg.Physics.Gravity)
	}
}

func TestLoadRunGunCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRunGun(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunGun(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("spawner:\n  interval: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadRunGun(invalid)
	if err == nil || !strings.Contains(err.Error(), "spawner interval") {
		t.Errorf("expected validation error mentioning spawner interval, got %v", err)
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := DefaultRunGunConfig()
	cfg.Player.Width = 0
	cfg.Frame.MaxDelta = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "player size") || !strings.Contains(msg, "max_delta") {
		t.Errorf("error should list every problem, got %q", msg)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyRunGunPreset(t *testing.T) {
	normal := DefaultRunGunConfig()
	ApplyRunGunPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultRunGunConfig()) {
		t.Error("normal preset should not change the config")
	}

	hard := DefaultRunGunConfig()
	ApplyRunGunPreset(&hard, DifficultyHard)
	if hard.Enemy.Health <= normal.Enemy.Health || hard.Spawner.Interval >= normal.Spawner.Interval {
		t.Errorf("hard preset should toughen enemies and spawn faster: %+v %+v", hard.Enemy, hard.Spawner)
	}

	easy := DefaultRunGunConfig()
	ApplyRunGunPreset(&easy, DifficultyEasy)
	if easy.Enemy.Health >= normal.Enemy.Health {
		t.Errorf("easy preset should weaken enemies: %+v", easy.Enemy)
	}
	if err := easy.Validate(); err != nil {
		t.Errorf("easy preset should stay valid: %v", err)
	}
}
