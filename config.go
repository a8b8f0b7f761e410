package spatialgrid

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Validation errors returned by the config, script and snapshot loaders.
// Match them with errors.Is.
var (
	ErrInvalidWorldSize = errors.New("spatialgrid: world size must be positive")
	ErrInvalidGrid      = errors.New("spatialgrid: grid dimensions must be positive")
	ErrInvalidReserve   = errors.New("spatialgrid: reserve must not be negative")
	ErrUnknownShape     = errors.New("spatialgrid: unknown shape kind")
	ErrUnknownGroup     = errors.New("spatialgrid: unknown group")
)

// WorldConfig is the YAML description of a world:
//
//	width: 800
//	height: 600
//	columns: 16
//	rows: 12
//	reserve: 1024
//	debug: false
//	groups:
//	  player: 0
//	  enemy: 2
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	Reserve int     `yaml:"reserve"`
	Debug   bool    `yaml:"debug"`

	// Groups names collision groups for scripts and tools.
	Groups map[string]GroupID `yaml:"groups,omitempty"`
}

// DefaultWorldConfig returns an 800x600 world split into 16x12 cells with room
// for 1024 entities.
func DefaultWorldConfig() *WorldConfig {
	return &WorldConfig{
		Width:   800,
		Height:  600,
		Columns: 16,
		Rows:    12,
		Reserve: 1024,
	}
}

// ParseWorldConfig decodes YAML on top of DefaultWorldConfig, so omitted keys
// keep their defaults, and validates the result.
func ParseWorldConfig(data []byte) (*WorldConfig, error) {
	cfg := DefaultWorldConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse world config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("parse world config: %w", err)
	}
	return cfg, nil
}

// LoadWorldConfig reads and parses the YAML file at path.
func LoadWorldConfig(path string) (*WorldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read world config: %w", err)
	}
	return ParseWorldConfig(data)
}

// Validate checks that the world and grid dimensions are usable.
func (c *WorldConfig) Validate() error {
	if !(c.Width > 0) || !(c.Height > 0) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidWorldSize, c.Width, c.Height)
	}
	if c.Columns <= 0 || c.Rows <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, c.Columns, c.Rows)
	}
	if c.Reserve < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidReserve, c.Reserve)
	}
	return nil
}

// Group returns the id registered under name.
func (c *WorldConfig) Group(name string) (GroupID, error) {
	gid, ok := c.Groups[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
	}
	return gid, nil
}

// NewWorldFromConfig creates a world sized and configured by cfg. cfg must
// have passed Validate.
func NewWorldFromConfig(cfg *WorldConfig) *World {
	w := NewWorld()
	w.SetWorldSize(cfg.Width, cfg.Height, cfg.Columns, cfg.Rows, cfg.Reserve)
	w.SetDebugMode(cfg.Debug)
	return w
}

// resolveGroup maps a group reference to an id: a name from groups, or a
// plain non-negative integer.
func resolveGroup(groups map[string]GroupID, ref string) (GroupID, error) {
	if gid, ok := groups[ref]; ok {
		return gid, nil
	}
	n, err := strconv.ParseUint(ref, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownGroup, ref)
	}
	return GroupID(n), nil
}

// ShapeSpec is the serialized form of a Shape used by scripts and snapshots:
//
//	{kind: circle, radius: 16}
//	{kind: rectangle, leftTop: {x: -16, y: -16}, rightBottom: {x: 16, y: 16}}
//	{kind: line, start: {x: 0, y: 0}, end: {x: 800, y: 0}}
type ShapeSpec struct {
	Kind        string  `yaml:"kind"`
	Radius      float64 `yaml:"radius,omitempty"`
	LeftTop     Vec2    `yaml:"leftTop,omitempty"`
	RightBottom Vec2    `yaml:"rightBottom,omitempty"`
	Start       Vec2    `yaml:"start,omitempty"`
	End         Vec2    `yaml:"end,omitempty"`
}

// Build converts the spec into a Shape. An empty kind (or "none") yields a nil
// shape, which never collides.
func (s ShapeSpec) Build() (Shape, error) {
	switch s.Kind {
	case "", "none":
		return nil, nil
	case "circle":
		return MakeCircle(s.Radius), nil
	case "rectangle", "rect":
		return MakeRectangle(s.LeftTop, s.RightBottom), nil
	case "line":
		return MakeLine(s.Start, s.End), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, s.Kind)
	}
}

// SpecOf returns the serialized form of shape. A nil shape yields a zero spec.
func SpecOf(shape Shape) ShapeSpec {
	switch s := shape.(type) {
	case Circle:
		return ShapeSpec{Kind: ShapeCircle.String(), Radius: s.Radius}
	case Rectangle:
		return ShapeSpec{Kind: ShapeRectangle.String(), LeftTop: s.LeftTop, RightBottom: s.RightBottom}
	case Line:
		return ShapeSpec{Kind: ShapeLine.String(), Start: s.Start, End: s.End}
	default:
		return ShapeSpec{}
	}
}
