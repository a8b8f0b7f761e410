// Package persist stores spatialgrid world snapshots in the platform's
// per-application data directory using gdata.
//
// A Store whose gdata manager is nil runs in degraded mode: saves succeed
// without writing anything and loads report ErrNotFound. Games can keep
// running when the data directory is unavailable.
package persist

import (
	"errors"
	"fmt"

	"github.com/quasilyte/gdata/v2"

	"github.com/phanxgames/spatialgrid"
)

// ErrNotFound is returned by LoadWorld when no snapshot is saved under the
// requested name.
var ErrNotFound = errors.New("persist: snapshot not found")

// Snapshots are saved as properties of a single gdata object.
const worldsObject = "worlds"

// Store saves and loads named world snapshots.
type Store struct {
	manager *gdata.Manager // nil in degraded mode
}

// Open creates a Store under the data directory for appName. When gdata
// cannot be initialised, Open returns a degraded Store together with the
// error, so callers may log it and carry on.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewStore(nil), fmt.Errorf("open store %q: %w", appName, err)
	}
	return NewStore(m), nil
}

// NewStore wraps an existing manager. m may be nil.
func NewStore(m *gdata.Manager) *Store {
	return &Store{manager: m}
}

// Available reports whether snapshots are actually persisted.
func (s *Store) Available() bool {
	return s.manager != nil
}

// SaveWorld encodes snap as YAML and stores it under name, replacing any
// previous snapshot with that name.
func (s *Store) SaveWorld(name string, snap *spatialgrid.Snapshot) error {
	if s.manager == nil {
		return nil
	}
	data, err := snap.Encode()
	if err != nil {
		return fmt.Errorf("save world %q: %w", name, err)
	}
	if err := s.manager.SaveObjectProp(worldsObject, name, data); err != nil {
		return fmt.Errorf("save world %q: %w", name, err)
	}
	return nil
}

// LoadWorld reads the snapshot stored under name. Use
// spatialgrid.RestoreSnapshot to turn it back into a World.
func (s *Store) LoadWorld(name string) (*spatialgrid.Snapshot, error) {
	if !s.HasWorld(name) {
		return nil, fmt.Errorf("load world %q: %w", name, ErrNotFound)
	}
	data, err := s.manager.LoadObjectProp(worldsObject, name)
	if err != nil {
		return nil, fmt.Errorf("load world %q: %w", name, err)
	}
	snap, err := spatialgrid.DecodeSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("load world %q: %w", name, err)
	}
	return snap, nil
}

// HasWorld reports whether a snapshot is stored under name.
func (s *Store) HasWorld(name string) bool {
	if s.manager == nil {
		return false
	}
	return s.manager.ObjectPropExists(worldsObject, name)
}

// DeleteWorld removes the snapshot stored under name. Deleting a missing
// snapshot is not an error.
func (s *Store) DeleteWorld(name string) error {
	if !s.HasWorld(name) {
		return nil
	}
	if err := s.manager.DeleteObjectProp(worldsObject, name); err != nil {
		return fmt.Errorf("delete world %q: %w", name, err)
	}
	return nil
}
