package tetrabsp

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// CameraSweep turns a view angle back and forth between two headings, easing in and out at each end. It's handy
// for flythroughs and for soaking the visibility walk with every view angle in a range.
type CameraSweep struct {
	From, To float64 // Headings in degrees; the sweep turns counter-clockwise from From to To
	tween    *gween.Tween
	reverse  bool
	current  float64
}

// NewCameraSweep creates a new CameraSweep turning from one heading to the other (in degrees) over the duration
// given in seconds, then back again.
func NewCameraSweep(fromDegrees, toDegrees float64, seconds float32) *CameraSweep {
	return &CameraSweep{
		From:    fromDegrees,
		To:      toDegrees,
		tween:   gween.New(0, 1, seconds, ease.InOutSine),
		current: fromDegrees,
	}
}

// Update advances the sweep by dt seconds and returns the new view Angle.
func (sweep *CameraSweep) Update(dt float32) Angle {

	t, finished := sweep.tween.Update(dt)

	if sweep.reverse {
		t = 1 - t
	}

	sweep.current = sweep.From + (sweep.To-sweep.From)*float64(t)

	if finished {
		sweep.reverse = !sweep.reverse
		sweep.tween.Reset()
	}

	return AngleFromDegrees(sweep.current)

}

// Degrees returns the current heading in degrees.
func (sweep *CameraSweep) Degrees() float64 {
	return sweep.current
}

// Angle returns the current heading.
func (sweep *CameraSweep) Angle() Angle {
	return AngleFromDegrees(sweep.current)
}
