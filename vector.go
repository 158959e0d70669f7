package tetrabsp

import (
	"math"
)

// VecX represents a unit vector pointing along the map's X axis (east).
var VecX = NewVector(1, 0)

// VecY represents a unit vector pointing along the map's Y axis (north).
var VecY = NewVector(0, 1)

// Vector represents a 2D map-space Vector, used for vertex positions, the camera position and directions.
// Any Vector functions that modify the calling Vector return copies of the modified Vector, meaning you can do method-chaining easily.
// Vectors are most efficient when copied, so try not to store pointers to them.
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
}

// NewVector creates a new Vector with the specified x and y components.
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// NewVectorFromAngle creates a new unit Vector pointing in the direction of the provided Angle.
func NewVectorFromAngle(angle Angle) Vector {
	rad := angle.Radians()
	return Vector{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Add returns a copy of the calling vector, added together with the other Vector provided.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	return vec
}

// Cross returns the Z component of the 3D cross product of the two Vectors; it is positive if other lies
// counter-clockwise of the calling Vector.
func (vec Vector) Cross(other Vector) float64 {
	return vec.X*other.Y - vec.Y*other.X
}

func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	return vec
}

// Magnitude returns the length of the Vector.
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y)
}

// MagnitudeSquared returns the squared length of the Vector; this is faster than Magnitude() as it avoids using math.Sqrt().
func (vec Vector) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y
}

func (vec Vector) Distance(other Vector) float64 {
	return vec.Sub(other).Magnitude()
}

func (vec Vector) DistanceSquared(other Vector) float64 {
	return vec.Sub(other).MagnitudeSquared()
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < 1e-8 {
		// If it's 0, then don't modify the vector
		return vec
	}
	vec.X, vec.Y = vec.X/l, vec.Y/l
	return vec
}

// Lerp returns a Vector linearly interpolated from the calling Vector towards the other one by the percentage given (0 to 1).
func (vec Vector) Lerp(other Vector, percentage float64) Vector {
	vec.X += (other.X - vec.X) * percentage
	vec.Y += (other.Y - vec.Y) * percentage
	return vec
}

// Equals returns true if the two Vectors are close enough in all values.
func (vec Vector) Equals(other Vector) bool {

	eps := 1e-8

	if math.Abs(vec.X-other.X) > eps || math.Abs(vec.Y-other.Y) > eps {
		return false
	}

	return true

}

// IsZero returns true if the values in the Vector are extremely close to 0.
func (vec Vector) IsZero() bool {
	return vec.Equals(Vector{})
}

// Rotate returns a copy of the Vector, rotated counter-clockwise by the angle provided (in radians).
func (vec Vector) Rotate(angle float64) Vector {
	cos, sin := math.Cos(angle), math.Sin(angle)
	vec.X, vec.Y = vec.X*cos-vec.Y*sin, vec.X*sin+vec.Y*cos
	return vec
}

// Angle returns the direction the Vector points in as a binary Angle, measured counter-clockwise from VecX.
func (vec Vector) Angle() Angle {
	return AngleFromRadians(math.Atan2(vec.Y, vec.X))
}

// Scale scales a Vector by the given scalar.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	return vec
}

// Divide divides a Vector by the given scalar.
func (vec Vector) Divide(scalar float64) Vector {
	vec.X /= scalar
	vec.Y /= scalar
	return vec
}

// Dot returns the dot product of a Vector and another Vector.
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y
}

// Floats returns a [2]float64 array consisting of the Vector's contents.
func (vec Vector) Floats() [2]float64 {
	return [2]float64{vec.X, vec.Y}
}
