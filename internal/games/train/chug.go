package train

import (
	"math"

	"github.com/vovakirdan/happy-arcade/internal/config"
	"github.com/vovakirdan/happy-arcade/internal/core"
)

// chugPacer spaces engine chugs by simulated time so that they speed up
// with the train.
type chugPacer struct {
	clock float64 // ms of simulated time
	next  float64 // ms when the next chug may play
}

// interval returns the gap after a chug at the given speed.
func chugInterval(speed float64, cfg config.TrainChug) float64 {
	return math.Max(cfg.MinMS, cfg.BaseMS/(speed*0.5))
}

// tick advances the clock by dt ms and reports a chug when one is due.
// A stopped train never chugs.
func (c *chugPacer) tick(dt, speed float64, cfg config.TrainChug) (core.Event, bool) {
	c.clock += dt
	if speed <= 0 || c.clock <= c.next {
		return core.Event{}, false
	}
	iv := chugInterval(speed, cfg)
	c.next = c.clock + iv
	return core.Event{Kind: core.EventChug, Speed: speed, Interval: iv}, true
}
