package input

// Latch remembers whether a control was down on the previous tick.
type Latch struct {
	prev bool
}

// Update records the current state and reports a released-to-pressed edge.
func (l *Latch) Update(pressed bool) bool {
	edge := pressed && !l.prev
	l.prev = pressed
	return edge
}

// Reset forgets the previous state.
func (l *Latch) Reset() {
	l.prev = false
}

// PadLatches holds one latch per button for every connected pad, keyed by
// pad index. Pads that disappear from a snapshot lose their memory, so a
// button held across a reconnect fires again.
type PadLatches struct {
	pads map[int][]Latch
}

// NewPadLatches creates empty per-pad memory.
func NewPadLatches() *PadLatches {
	return &PadLatches{pads: make(map[int][]Latch)}
}

// Update refreshes the latches from the connected pads and returns, for each
// pad in order, the indices of buttons that went down this tick.
func (p *PadLatches) Update(pads []Gamepad) [][]int {
	seen := make(map[int]bool, len(pads))
	edges := make([][]int, len(pads))

	for i, gp := range pads {
		seen[gp.Index] = true
		latches := p.pads[gp.Index]
		if len(latches) < len(gp.Buttons) {
			grown := make([]Latch, len(gp.Buttons))
			copy(grown, latches)
			latches = grown
		}
		for b := range latches {
			if latches[b].Update(gp.Pressed(b)) {
				edges[i] = append(edges[i], b)
			}
		}
		p.pads[gp.Index] = latches
	}

	for idx := range p.pads {
		if !seen[idx] {
			delete(p.pads, idx)
		}
	}
	return edges
}
