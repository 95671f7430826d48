package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse("flappy.yaml", DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded defaults drifted from DefaultConfig():\n got  %+v\n want %+v", cfg, DefaultConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestGravityTableStrictlyIncreasing(t *testing.T) {
	g := DefaultConfig().Physics.Gravity
	if len(g) != LevelCount {
		t.Fatalf("expected %d gravity levels, got %d", LevelCount, len(g))
	}
	for i := 1; i < len(g); i++ {
		if g[i] <= g[i-1] {
			t.Errorf("gravity[%d]=%v should exceed gravity[%d]=%v", i, g[i], i-1, g[i-1])
		}
	}
}

func TestGravityTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   GravityTable
		wantErr bool
	}{
		{"defaults", GravityTable{0.5, 0.98, 1.3, 1.6, 2.0, 2.5}, false},
		{"too short", GravityTable{0.5, 0.98}, true},
		{"equal neighbours", GravityTable{0.5, 0.5, 1.3, 1.6, 2.0, 2.5}, true},
		{"decreasing", GravityTable{0.5, 0.98, 1.3, 1.2, 2.0, 2.5}, true},
		{"non-positive", GravityTable{0, 0.98, 1.3, 1.6, 2.0, 2.5}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.table.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestGravityTableAtClamps(t *testing.T) {
	g := GravityTable{1, 2, 3}
	if g.At(-1) != 1 {
		t.Errorf("At(-1) = %v, expected 1", g.At(-1))
	}
	if g.At(1) != 2 {
		t.Errorf("At(1) = %v, expected 2", g.At(1))
	}
	if g.At(10) != 3 {
		t.Errorf("At(10) = %v, expected 3", g.At(10))
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Physics.Lift = 0
	cfg.Obstacles.RetireThreshold = 500

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "lift") || !strings.Contains(msg, "retire threshold") {
		t.Errorf("Validate() should mention every problem, got %q", msg)
	}
}

func TestParseYAMLPartialOverride(t *testing.T) {
	data := []byte("physics:\n  lift: 12\nfield:\n  solid_bounds: true\n")

	cfg, err := Parse("custom.yaml", data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Physics.Lift != 12 {
		t.Errorf("lift = %v, expected 12", cfg.Physics.Lift)
	}
	if !cfg.Field.SolidBounds {
		t.Error("solid_bounds should be true")
	}
	if cfg.Obstacles.Width != DefaultConfig().Obstacles.Width {
		t.Errorf("unset fields should keep defaults, obstacle width = %v", cfg.Obstacles.Width)
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
[physics]
scroll_speed = 2.0
gravity = [0.4, 0.8, 1.2, 1.6, 2.0, 2.4]

[timing]
tick_rate = 60
`)

	cfg, err := Parse("custom.toml", data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Physics.ScrollSpeed != 2 {
		t.Errorf("scroll_speed = %v, expected 2", cfg.Physics.ScrollSpeed)
	}
	if cfg.Physics.Gravity.At(0) != 0.4 {
		t.Errorf("gravity[0] = %v, expected 0.4", cfg.Physics.Gravity.At(0))
	}
	if cfg.Timing.TickRate != 60 {
		t.Errorf("tick_rate = %d, expected 60", cfg.Timing.TickRate)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	data := []byte("physics:\n  gravity: [2.5, 2.0, 1.6, 1.3, 0.98, 0.5]\n")
	if _, err := Parse("bad.yaml", data); err == nil {
		t.Error("Parse() should reject a decreasing gravity table")
	}

	if _, err := Parse("broken.yaml", []byte("physics: [")); err == nil {
		t.Error("Parse() should reject malformed YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  gap_size: 120\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Obstacles.GapSize != 120 {
		t.Errorf("gap_size = %v, expected 120", cfg.Obstacles.GapSize)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}
