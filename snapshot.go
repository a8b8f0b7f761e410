package spatialgrid

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Snapshot is a serializable copy of a world's configuration and active
// entities. Handlers, callbacks, tweens and UserData are not captured.
type Snapshot struct {
	Width    float64          `yaml:"width"`
	Height   float64          `yaml:"height"`
	Columns  int              `yaml:"columns"`
	Rows     int              `yaml:"rows"`
	Reserve  int              `yaml:"reserve"`
	Entities []EntitySnapshot `yaml:"entities"`
}

// EntitySnapshot is the serialized state of one entity.
type EntitySnapshot struct {
	Group           GroupID   `yaml:"group"`
	X               float64   `yaml:"x"`
	Y               float64   `yaml:"y"`
	Z               float64   `yaml:"z,omitempty"`
	VX              float64   `yaml:"vx,omitempty"`
	VY              float64   `yaml:"vy,omitempty"`
	Rotation        float64   `yaml:"rotation,omitempty"`
	Shape           ShapeSpec `yaml:"shape"`
	RemoveRequested bool      `yaml:"removeRequested,omitempty"`
}

// Snapshot captures the world's size and every active entity in iteration
// order.
func (w *World) Snapshot() *Snapshot {
	s := &Snapshot{
		Width:    w.grid.width,
		Height:   w.grid.height,
		Columns:  w.grid.columns,
		Rows:     w.grid.rows,
		Reserve:  w.reserve,
		Entities: make([]EntitySnapshot, 0, len(w.active)),
	}
	for _, e := range w.active {
		s.Entities = append(s.Entities, EntitySnapshot{
			Group:           e.group,
			X:               e.X,
			Y:               e.Y,
			Z:               e.Z,
			VX:              e.VX,
			VY:              e.VY,
			Rotation:        e.Rotation,
			Shape:           SpecOf(e.shape),
			RemoveRequested: e.removeRequested,
		})
	}
	return s
}

// RestoreSnapshot builds a new world from s. Entities are re-added in order,
// so they receive fresh handles.
func RestoreSnapshot(s *Snapshot) (*World, error) {
	cfg := WorldConfig{
		Width:   s.Width,
		Height:  s.Height,
		Columns: s.Columns,
		Rows:    s.Rows,
		Reserve: max(s.Reserve, len(s.Entities)),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("restore snapshot: %w", err)
	}

	w := NewWorldFromConfig(&cfg)
	for i, es := range s.Entities {
		shape, err := es.Shape.Build()
		if err != nil {
			return nil, fmt.Errorf("restore snapshot: entity %d: %w", i, err)
		}
		e := w.Entity(w.AddEntity(es.Group, Vec2{es.X, es.Y}, shape))
		e.Z = es.Z
		e.VX = es.VX
		e.VY = es.VY
		e.Rotation = es.Rotation
		if es.RemoveRequested {
			e.RequestRemove()
		}
	}
	return w, nil
}

// Encode serializes the snapshot as YAML.
func (s *Snapshot) Encode() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a YAML snapshot produced by Encode.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &s, nil
}
