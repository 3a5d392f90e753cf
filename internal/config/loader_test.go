package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	want := DefaultConfig()
	if cfg.DefaultVariant != want.DefaultVariant {
		t.Errorf("DefaultVariant = %q, want %q", cfg.DefaultVariant, want.DefaultVariant)
	}
	if len(cfg.Variants) != len(want.Variants) {
		t.Fatalf("got %d variants, want %d", len(cfg.Variants), len(want.Variants))
	}
	for id, v := range want.Variants {
		got, ok := cfg.Variants[id]
		if !ok {
			t.Errorf("variant %q missing from embedded YAML", id)
			continue
		}
		if got != v {
			t.Errorf("variant %q = %+v, want %+v", id, got, v)
		}
	}
}

func TestClassicProfiles(t *testing.T) {
	classic := DefaultConfig().Variants["classic"].Profiles

	tests := []struct {
		d           Difficulty
		rng, maxAtt int
	}{
		{DifficultyEasy, 10, 5},
		{DifficultyMedium, 50, 7},
		{DifficultyHard, 100, 10},
	}

	for _, tc := range tests {
		p := classic.Profile(tc.d)
		if p.Range != tc.rng || p.MaxAttempts != tc.maxAtt {
			t.Errorf("Profile(%s) = %+v, want range=%d max=%d", tc.d, p, tc.rng, tc.maxAtt)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		label string
		want  Difficulty
		ok    bool
	}{
		{"easy", DifficultyEasy, true},
		{"Medium", DifficultyMedium, true},
		{" HARD ", DifficultyHard, true},
		{"nightmare", DifficultyEasy, false},
		{"", DifficultyEasy, false},
	}

	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			got, ok := ParseDifficulty(tc.label)
			if got != tc.want || ok != tc.ok {
				t.Errorf("ParseDifficulty(%q) = (%q, %v), want (%q, %v)", tc.label, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	data := `
variants:
  tiny:
    title: Tiny
    easy: {range: 3, max_attempts: 2}
    medium: {range: 5, max_attempts: 2}
    hard: {range: 9, max_attempts: 2}
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DefaultVariant != "tiny" {
		t.Errorf("DefaultVariant = %q, want tiny (only variant)", cfg.DefaultVariant)
	}
	if cfg.DefaultDifficulty != DifficultyEasy {
		t.Errorf("DefaultDifficulty = %q, want easy", cfg.DefaultDifficulty)
	}
	if got := cfg.Variants["tiny"].Profiles.Hard.Range; got != 9 {
		t.Errorf("tiny hard range = %d, want 9", got)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("variants: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestValidateRejectsUnplayableProfiles(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero range", func(c *Config) {
			v := c.Variants["classic"]
			v.Profiles.Medium.Range = 0
			c.Variants["classic"] = v
		}},
		{"zero attempts", func(c *Config) {
			v := c.Variants["quick"]
			v.Profiles.Hard.MaxAttempts = 0
			c.Variants["quick"] = v
		}},
		{"unknown default variant", func(c *Config) {
			c.DefaultVariant = "nope"
		}},
		{"unknown default difficulty", func(c *Config) {
			c.DefaultDifficulty = "insane"
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	data := "NUMGUESS_DB=/tmp/from-dotenv.db\nNUMGUESS_IDLE_TIMEOUT=7\n"
	if err := os.WriteFile(envFile, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvIdleTimeout, "")
	os.Unsetenv(EnvDBPath)
	os.Unsetenv(EnvIdleTimeout)
	t.Setenv(EnvSSHAddr, ":2222")

	env := LoadEnv(envFile, filepath.Join(dir, "missing.env"))

	if env.DBPath != "/tmp/from-dotenv.db" {
		t.Errorf("DBPath = %q, want value from .env", env.DBPath)
	}
	if env.IdleTimeout != 7 {
		t.Errorf("IdleTimeout = %d, want 7", env.IdleTimeout)
	}
	if env.SSHAddr != ":2222" {
		t.Errorf("SSHAddr = %q, want :2222", env.SSHAddr)
	}
	if got := Or(env.HostKey, "fallback"); got != "fallback" {
		t.Errorf("Or() = %q, want fallback", got)
	}
}
