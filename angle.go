package tetrabsp

import "math"

// Angle is a binary angle measurement: a full turn maps onto the full range of a uint32, so
// wrapping around 360 degrees is plain unsigned overflow. Angles grow counter-clockwise from VecX.
// Intervals of Angles are always described from their right (clockwise-most) end to their
// left end, so the width of an interval is simply left - right.
type Angle uint32

const (
	Angle0   Angle = 0
	Angle45  Angle = 0x20000000
	Angle90  Angle = 0x40000000
	Angle180 Angle = 0x80000000
	Angle270 Angle = 0xC0000000
	AngleMax Angle = 0xFFFFFFFF
)

const angleTurn = 4294967296.0 // 2^32

// AngleFromRadians converts radians into an Angle, wrapping as needed.
func AngleFromRadians(radians float64) Angle {
	return angleFromTurns(radians / (2 * math.Pi))
}

// AngleFromDegrees converts degrees into an Angle, wrapping as needed.
func AngleFromDegrees(degrees float64) Angle {
	return angleFromTurns(degrees / 360)
}

func angleFromTurns(turns float64) Angle {
	turns -= math.Floor(turns)
	return Angle(uint64(turns*angleTurn) & 0xFFFFFFFF)
}

// Radians returns the Angle in radians, in the range [0, 2*Pi).
func (a Angle) Radians() float64 {
	return float64(a) / angleTurn * 2 * math.Pi
}

// Degrees returns the Angle in degrees, in the range [0, 360).
func (a Angle) Degrees() float64 {
	return ToDegrees(a.Radians())
}

// Within returns if the Angle lies inside the interval starting at right and sweeping
// counter-clockwise for span.
func (a Angle) Within(right, span Angle) bool {
	return a-right <= span
}

// PointToAngle returns the Angle from the origin towards the target point.
func PointToAngle(origin, target Vector) Angle {
	return target.Sub(origin).Angle()
}
