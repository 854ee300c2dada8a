// Package gamepad exposes joysticks as input.Gamepad snapshots. Devices are
// opened through github.com/0xcafed00d/joystick; on systems without a
// joystick interface no pads are ever found and the manager is idle.
package gamepad

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/0xcafed00d/joystick"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/happy-arcade/internal/core"
	"github.com/vovakirdan/happy-arcade/internal/input"
)

// MaxPads is how many joystick slots each scan tries to open.
const MaxPads = 4

const (
	axisMax = 32767
	hatX    = 6 // d-pad axes on most pads
	hatY    = 7
)

// convert turns a raw joystick state into a pad snapshot. Axes are
// normalized to [-1, 1]; hat axes also drive the standard d-pad buttons.
func convert(index int, id string, buttons int, st joystick.State) input.Gamepad {
	gp := input.Gamepad{Index: index, ID: id}

	n := core.Max(buttons, input.ButtonDPadRight+1)
	gp.Buttons = make([]input.Button, n)
	for b := 0; b < buttons && b < 32; b++ {
		if st.Buttons&(1<<uint(b)) != 0 {
			gp.Buttons[b] = input.Button{Pressed: true, Value: 1}
		}
	}

	gp.Axes = make([]float64, len(st.AxisData))
	for a, raw := range st.AxisData {
		gp.Axes[a] = core.ClampF(float64(raw)/axisMax, -1, 1)
	}

	press := func(b int, on bool) {
		if on {
			gp.Buttons[b] = input.Button{Pressed: true, Value: 1}
		}
	}
	if hx := gp.Axis(hatX); hx != 0 {
		press(input.ButtonDPadLeft, hx < -0.5)
		press(input.ButtonDPadRight, hx > 0.5)
	}
	if hy := gp.Axis(hatY); hy != 0 {
		press(input.ButtonDPadUp, hy < -0.5)
		press(input.ButtonDPadDown, hy > 0.5)
	}
	return gp
}

// Manager discovers joysticks and reads their state on demand. A device
// that fails to read is dropped; a later scan may pick it up again.
type Manager struct {
	logger   *log.Logger
	open     func(id int) (joystick.Joystick, error)
	interval time.Duration

	mu   sync.Mutex
	pads map[int]joystick.Joystick
}

// NewManager creates a manager scanning MaxPads slots every two seconds.
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		logger:   logger,
		open:     joystick.Open,
		interval: 2 * time.Second,
		pads:     make(map[int]joystick.Joystick),
	}
}

// Run scans for devices until ctx is done, then closes them.
func (m *Manager) Run(ctx context.Context) {
	m.scan()
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			m.closeAll()
			return
		case <-ticker.C:
			m.scan()
		}
	}
}

func (m *Manager) scan() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id := 0; id < MaxPads; id++ {
		if _, ok := m.pads[id]; ok {
			continue
		}
		js, err := m.open(id)
		if err != nil {
			continue
		}
		m.pads[id] = js
		m.logger.Info("gamepad connected", "index", id, "name", js.Name(),
			"buttons", js.ButtonCount(), "axes", js.AxisCount())
	}
}

func (m *Manager) closeAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, js := range m.pads {
		js.Close()
		delete(m.pads, id)
	}
}

// Snapshot reads every connected pad, ordered by index.
func (m *Manager) Snapshot() []input.Gamepad {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]input.Gamepad, 0, len(m.pads))
	for id, js := range m.pads {
		st, err := js.Read()
		if err != nil {
			js.Close()
			delete(m.pads, id)
			m.logger.Info("gamepad disconnected", "index", id, "err", err)
			continue
		}
		out = append(out, convert(id, js.Name(), js.ButtonCount(), st))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}
