package engine

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/happy-arcade/internal/core"
	"github.com/vovakirdan/happy-arcade/internal/input"
)

// Script is a recorded input timeline replayed without a terminal.
//
//	game: kitty
//	seed: 42
//	ticks: 600
//	steps:
//	  - {at: 0, for: 120, keys: [right]}
//	  - {at: 30, keys: [jump]}
//	  - {at: 200, for: 10, pad: {index: 0, buttons: [0], axes: [0.8]}}
//	  - {at: 300, click: {x: 0.2, y: 0.8}}
type Script struct {
	Game  string       `yaml:"game"`
	Seed  int64        `yaml:"seed"`
	Ticks int          `yaml:"ticks"`
	Steps []ScriptStep `yaml:"steps"`
}

// ScriptStep holds input for a range of ticks starting at At.
type ScriptStep struct {
	At    int          `yaml:"at"`
	For   int          `yaml:"for,omitempty"` // ticks held; default 1
	Keys  []string     `yaml:"keys,omitempty"`
	Pad   *ScriptPad   `yaml:"pad,omitempty"`
	Click *ScriptClick `yaml:"click,omitempty"` // applies on tick At only
}

// ScriptPad is one gamepad's state while a step is active.
type ScriptPad struct {
	Index   int       `yaml:"index"`
	Buttons []int     `yaml:"buttons,omitempty"` // pressed button indices
	Axes    []float64 `yaml:"axes,omitempty"`
}

// ScriptClick is a pointer press in normalized viewport coordinates.
type ScriptClick struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

var keyNames = map[string]core.Key{
	"left":    core.KeyLeft,
	"right":   core.KeyRight,
	"jump":    core.KeyJump,
	"throw":   core.KeyThrow,
	"restart": core.KeyRestart,
	"pause":   core.KeyPause,
	"boost":   core.KeyBoost,
}

// ParseKey maps a script key name to a logical key.
func ParseKey(name string) (core.Key, error) {
	k, ok := keyNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("engine: unknown key %q", name)
	}
	return k, nil
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("engine: parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScript reads a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("engine: read script %s: %w", path, err)
	}
	return ParseScript(data)
}

// Validate rejects scripts that cannot be replayed.
func (s *Script) Validate() error {
	if s.Ticks < 0 {
		return fmt.Errorf("engine: script ticks must not be negative")
	}
	for i, st := range s.Steps {
		if st.At < 0 || st.For < 0 {
			return fmt.Errorf("engine: step %d: negative tick", i)
		}
		for _, name := range st.Keys {
			if _, err := ParseKey(name); err != nil {
				return fmt.Errorf("engine: step %d: %w", i, err)
			}
		}
		if st.Pad != nil {
			if st.Pad.Index < 0 {
				return fmt.Errorf("engine: step %d: negative pad index", i)
			}
			for _, b := range st.Pad.Buttons {
				if b < 0 {
					return fmt.Errorf("engine: step %d: negative button %d", i, b)
				}
			}
		}
	}
	return nil
}

func (st ScriptStep) active(tick int) bool {
	n := st.For
	if n <= 0 {
		n = 1
	}
	return tick >= st.At && tick < st.At+n
}

// Snapshot builds the device state for a tick by merging every active
// step. Pads with the same index are merged button by button.
func (s *Script) Snapshot(tick int) input.Snapshot {
	var snap input.Snapshot
	pads := map[int]*input.Gamepad{}

	for _, st := range s.Steps {
		if !st.active(tick) {
			continue
		}
		for _, name := range st.Keys {
			if k, err := ParseKey(name); err == nil {
				snap.Press(k)
			}
		}
		if st.Pad != nil {
			gp, ok := pads[st.Pad.Index]
			if !ok {
				gp = &input.Gamepad{Index: st.Pad.Index, ID: "script"}
				pads[st.Pad.Index] = gp
			}
			for _, b := range st.Pad.Buttons {
				if b < 0 {
					continue
				}
				for len(gp.Buttons) <= b {
					gp.Buttons = append(gp.Buttons, input.Button{})
				}
				gp.Buttons[b] = input.Button{Pressed: true, Value: 1}
			}
			for i, v := range st.Pad.Axes {
				for len(gp.Axes) <= i {
					gp.Axes = append(gp.Axes, 0)
				}
				gp.Axes[i] = v
			}
		}
		if st.Click != nil && tick == st.At {
			snap.Click = &core.Vec{X: st.Click.X, Y: st.Click.Y}
		}
	}

	for _, gp := range pads {
		snap.Pads = append(snap.Pads, *gp)
	}
	sort.Slice(snap.Pads, func(i, j int) bool { return snap.Pads[i].Index < snap.Pads[j].Index })
	return snap
}

// Report summarizes a replay.
type Report struct {
	Ticks  int
	State  core.GameState
	Events map[core.EventKind]int
}

// Run replays the script on the session for Ticks ticks.
func Run(s *Session, sc *Script) Report {
	rep := Report{Events: map[core.EventKind]int{}}
	for t := 0; t < sc.Ticks; t++ {
		res := s.Tick(sc.Snapshot(t))
		for _, e := range res.Events {
			rep.Events[e.Kind]++
		}
		rep.State = res.State
		rep.Ticks++
	}
	if rep.Ticks == 0 {
		rep.State = s.Game().State()
	}
	return rep
}
