// Package engine drives one game at a fixed tick: it turns raw device
// snapshots into commands, steps the game and reports what happened.
// Hosts (the terminal UI, the headless simulator) own timing and output.
package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/happy-arcade/internal/config"
	"github.com/vovakirdan/happy-arcade/internal/core"
	"github.com/vovakirdan/happy-arcade/internal/input"
	"github.com/vovakirdan/happy-arcade/internal/registry"
)

// configSourcer is implemented by games that load YAML configuration.
type configSourcer interface {
	ConfigSource() config.Source
}

type holdTicker interface {
	HoldTicks() int
}

// Session owns a game and the input aggregator that feeds it.
type Session struct {
	game    registry.Game
	agg     *input.Aggregator
	runtime core.RuntimeConfig
	logger  *log.Logger

	ticks int
	last  core.StepResult
}

// NewSession resets g and prepares it for ticking. A nil logger discards
// output.
func NewSession(g registry.Game, runtime core.RuntimeConfig, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{game: g, runtime: runtime, logger: logger}
	s.start()
	return s
}

func (s *Session) start() {
	s.game.Reset(s.runtime)
	s.agg = input.NewAggregator(s.game.Bindings())
	s.ticks = 0
	s.last = core.StepResult{State: s.game.State()}

	kv := []interface{}{"game", s.game.ID(), "seed", s.runtime.Seed, "tick_rate", s.runtime.TickRate}
	if cs, ok := s.game.(configSourcer); ok {
		kv = append(kv, "config", cs.ConfigSource())
	}
	s.logger.Info("session started", kv...)
}

// Tick samples input and advances the game by one tick in the fixed
// order: input, physics, collision, progression, camera.
func (s *Session) Tick(snap input.Snapshot) core.StepResult {
	cmd := s.agg.Sample(snap)
	res := s.game.Step(cmd)
	s.ticks++

	for _, e := range res.Events {
		s.logger.Debug("event", "tick", s.ticks, "event", e.String())
	}
	if res.State.Phase != s.last.State.Phase {
		s.logger.Info("phase changed", "tick", s.ticks, "from", s.last.State.Phase, "to", res.State.Phase)
	}
	s.last = res
	return res
}

// Restart resets the game and input memory. The first-interaction flag of
// the aggregator is kept only within one session, so a restarted session
// may signal it again.
func (s *Session) Restart() {
	s.logger.Info("session restarted", "game", s.game.ID(), "ticks", s.ticks)
	s.start()
}

// Game returns the running game.
func (s *Session) Game() registry.Game {
	return s.game
}

// Ticks returns how many ticks ran since the last (re)start.
func (s *Session) Ticks() int {
	return s.ticks
}

// Last returns the result of the most recent tick.
func (s *Session) Last() core.StepResult {
	return s.last
}

// HoldTicks returns the key hold window the game asks terminal hosts to
// use, or input.DefaultHoldTicks when it has no preference.
func (s *Session) HoldTicks() int {
	if h, ok := s.game.(holdTicker); ok && h.HoldTicks() > 0 {
		return h.HoldTicks()
	}
	return input.DefaultHoldTicks
}

// Render draws the game into dst.
func (s *Session) Render(dst *core.Screen) {
	s.game.Render(dst)
}
