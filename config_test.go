package spatialgrid

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseWorldConfig(t *testing.T) {
	data := []byte(`
width: 1024
height: 768
columns: 32
rows: 24
reserve: 4096
debug: true
groups:
  player: 0
  playerShot: 1
  enemy: 2
`)
	cfg, err := ParseWorldConfig(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 1024 || cfg.Height != 768 || cfg.Columns != 32 || cfg.Rows != 24 {
		t.Errorf("dimensions = %+v", cfg)
	}
	if cfg.Reserve != 4096 || !cfg.Debug {
		t.Errorf("reserve/debug = %d/%v", cfg.Reserve, cfg.Debug)
	}
	gid, err := cfg.Group("enemy")
	if err != nil || gid != 2 {
		t.Errorf("Group(enemy) = %d, %v", gid, err)
	}
}

func TestParseWorldConfig_Defaults(t *testing.T) {
	cfg, err := ParseWorldConfig([]byte(`columns: 8`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := DefaultWorldConfig()
	if cfg.Width != def.Width || cfg.Height != def.Height || cfg.Rows != def.Rows || cfg.Reserve != def.Reserve {
		t.Errorf("omitted keys lost their defaults: %+v", cfg)
	}
	if cfg.Columns != 8 {
		t.Errorf("Columns = %d, want 8", cfg.Columns)
	}
}

func TestParseWorldConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"zero width", "width: 0", ErrInvalidWorldSize},
		{"negative height", "height: -10", ErrInvalidWorldSize},
		{"zero columns", "columns: 0", ErrInvalidGrid},
		{"negative rows", "rows: -1", ErrInvalidGrid},
		{"negative reserve", "reserve: -5", ErrInvalidReserve},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWorldConfig([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseWorldConfig_Malformed(t *testing.T) {
	if _, err := ParseWorldConfig([]byte("width: [1, 2")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadWorldConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	if err := os.WriteFile(path, []byte("width: 640\nheight: 480\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadWorldConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("size = %vx%v", cfg.Width, cfg.Height)
	}

	if _, err := LoadWorldConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}
}

func TestNewWorldFromConfig(t *testing.T) {
	cfg := DefaultWorldConfig()
	cfg.Columns = 4
	cfg.Debug = true
	w := NewWorldFromConfig(cfg)

	if c, r := w.GridSize(); c != 4 || r != 12 {
		t.Errorf("GridSize = %dx%d", c, r)
	}
	if !w.DebugMode() {
		t.Error("debug flag not applied")
	}
}

func TestGroupUnknown(t *testing.T) {
	cfg := DefaultWorldConfig()
	if _, err := cfg.Group("ghost"); !errors.Is(err, ErrUnknownGroup) {
		t.Errorf("err = %v, want ErrUnknownGroup", err)
	}
}

func TestResolveGroup(t *testing.T) {
	groups := map[string]GroupID{"enemy": 2}
	tests := []struct {
		ref     string
		want    GroupID
		wantErr bool
	}{
		{"enemy", 2, false},
		{"7", 7, false},
		{"player", 0, true},
		{"-1", 0, true},
	}
	for _, tt := range tests {
		got, err := resolveGroup(groups, tt.ref)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("resolveGroup(%q) = %d, %v", tt.ref, got, err)
		}
	}
}

func TestShapeSpecBuild(t *testing.T) {
	shapes := []Shape{
		MakeCircle(16),
		MakeRectangle(Vec2{-16, -8}, Vec2{16, 8}),
		MakeLine(Vec2{0, 0}, Vec2{800, 0}),
	}
	for _, s := range shapes {
		got, err := SpecOf(s).Build()
		if err != nil {
			t.Fatalf("Build(%T): %v", s, err)
		}
		if got != s {
			t.Errorf("Build(SpecOf(%v)) = %v", s, got)
		}
	}

	if s, err := (ShapeSpec{}).Build(); s != nil || err != nil {
		t.Errorf("empty spec = %v, %v, want nil shape", s, err)
	}
	if s, err := (ShapeSpec{Kind: "rect", RightBottom: Vec2{2, 2}}).Build(); err != nil || s.Kind() != ShapeRectangle {
		t.Errorf("rect alias = %v, %v", s, err)
	}
	if _, err := (ShapeSpec{Kind: "hexagon"}).Build(); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("err = %v, want ErrUnknownShape", err)
	}
}
