package spatialgrid

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a scenario script.
type scriptStep struct {
	Action string     `yaml:"action"`
	Label  string     `yaml:"label,omitempty"`
	Group  string     `yaml:"group,omitempty"`
	X      float64    `yaml:"x,omitempty"`
	Y      float64    `yaml:"y,omitempty"`
	VX     float64    `yaml:"vx,omitempty"`
	VY     float64    `yaml:"vy,omitempty"`
	Shape  *ShapeSpec `yaml:"shape,omitempty"`
	Frames int        `yaml:"frames,omitempty"`

	gid   GroupID
	shape Shape
}

// scenarioScript is the top-level YAML structure for a script.
type scenarioScript struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner sequences world mutations across frames for automated
// scenario testing. Attach it with World.SetScriptRunner; each Update runs
// the steps up to and including the next wait before the grid is built.
//
//	steps:
//	  - {action: add, label: ball, group: ball, x: 100, y: 100, shape: {kind: circle, radius: 16}}
//	  - {action: wait, frames: 1}
//	  - {action: move, label: ball, x: 100, y: -5}
//	  - {action: velocity, label: ball, vx: 0, vy: 120}
//	  - {action: remove, label: ball}
type ScriptRunner struct {
	steps     []scriptStep
	labels    map[string]Handle
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML scenario script. groups resolves group names used
// by add steps; plain integers are accepted as well. The script is validated
// up front: unknown actions, groups, shapes and labels are errors.
func LoadScript(data []byte, groups map[string]GroupID) (*ScriptRunner, error) {
	var s scenarioScript
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}

	declared := make(map[string]bool)
	for i := range s.Steps {
		st := &s.Steps[i]
		switch st.Action {
		case "add":
			gid, err := resolveGroup(groups, st.Group)
			if err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
			if st.Shape == nil {
				return nil, fmt.Errorf("parse script: step %d: add without shape", i)
			}
			shape, err := st.Shape.Build()
			if err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
			st.gid = gid
			st.shape = shape
			if st.Label != "" {
				declared[st.Label] = true
			}
		case "move", "velocity", "remove":
			if !declared[st.Label] {
				return nil, fmt.Errorf("parse script: step %d: %s of undeclared label %q", i, st.Action, st.Label)
			}
		case "wait":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps, labels: make(map[string]Handle)}, nil
}

// SetScriptRunner attaches a ScriptRunner to the world. Pass nil to detach.
func (w *World) SetScriptRunner(runner *ScriptRunner) {
	w.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Handle returns the handle of the entity created by the add step with the
// given label.
func (r *ScriptRunner) Handle(label string) (Handle, bool) {
	h, ok := r.labels[label]
	return h, ok
}

// step advances the runner by one frame. Called from World.Update.
func (r *ScriptRunner) step(w *World) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		if r.waitCount == 0 && r.cursor >= len(r.steps) {
			r.done = true
		}
		return
	}

	for r.cursor < len(r.steps) {
		st := &r.steps[r.cursor]
		r.cursor++
		if st.Action == "wait" {
			if st.Frames > 1 {
				r.waitCount = st.Frames - 1 // this frame counts as one
			}
			break
		}
		r.exec(w, st)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

// exec applies one non-wait step. Steps naming an entity that has since been
// removed are skipped.
func (r *ScriptRunner) exec(w *World, st *scriptStep) {
	if st.Action == "add" {
		h := w.AddEntity(st.gid, Vec2{st.X, st.Y}, st.shape)
		if e := w.Entity(h); e != nil {
			e.VX, e.VY = st.VX, st.VY
		}
		if st.Label != "" {
			r.labels[st.Label] = h
		}
		return
	}

	e := w.Entity(r.labels[st.Label])
	if e == nil {
		return
	}
	switch st.Action {
	case "move":
		e.SetPosition(st.X, st.Y)
	case "velocity":
		e.VX, e.VY = st.VX, st.VY
	case "remove":
		e.RequestRemove()
	}
}
