package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{
			"provider": "memory",
			"redis": map[string]any{
				"initAddress": []any{"localhost:6379"},
			},
		},
		"simulation": map[string]any{
			"seedDays":             15,
			"dailyRainProbability": 0.5,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORAGE_PROVIDER", want: "storage.provider"},
		{envKey: "STORAGE_REDIS_INITADDRESS", want: "storage.redis.initAddress"},
		{envKey: "SIMULATION_SEEDDAYS", want: "simulation.seedDays"},
		{envKey: "SIMULATION_DAILYRAINPROBABILITY", want: "simulation.dailyRainProbability"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func writeConfigFile(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
}

func TestNew_AppliesDefaultsForAbsentKeys(t *testing.T) {
	writeConfigFile(t, "env:\n  env: test\n")

	cfg, err := New()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Storage.Provider != StorageMemory {
		t.Fatalf("default storage provider = %q, want %q", cfg.Storage.Provider, StorageMemory)
	}
	if cfg.Simulation.DailyRainProbability != 0.5 {
		t.Fatalf("default daily rain probability = %v, want 0.5", cfg.Simulation.DailyRainProbability)
	}
	if cfg.Simulation.SeedRainProbability != 0.35 {
		t.Fatalf("default seed rain probability = %v, want 0.35", cfg.Simulation.SeedRainProbability)
	}
	if cfg.Simulation.SeedDays != 15 {
		t.Fatalf("default seed days = %d, want 15", cfg.Simulation.SeedDays)
	}
}

func TestNew_KeepsExplicitZeroValues(t *testing.T) {
	writeConfigFile(t, `
simulation:
  dailyRainProbability: 0
  seedRainProbability: 0
  seedDays: 0
`)

	cfg, err := New()
	if err != nil {
		t.Fatal(err)
	}

	// A configured zero means "never rain" / "no seeded history", not "unset".
	if cfg.Simulation.DailyRainProbability != 0 {
		t.Fatalf("daily rain probability = %v, want 0", cfg.Simulation.DailyRainProbability)
	}
	if cfg.Simulation.SeedRainProbability != 0 {
		t.Fatalf("seed rain probability = %v, want 0", cfg.Simulation.SeedRainProbability)
	}
	if cfg.Simulation.SeedDays != 0 {
		t.Fatalf("seed days = %d, want 0", cfg.Simulation.SeedDays)
	}
}
