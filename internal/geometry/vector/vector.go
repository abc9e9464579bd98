// Package vector provides 3D vector operations
package vector

import (
	"fmt"
	"math"
)

// NewVec3 creates a new 3D vector with the given components
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Vec3 is a 3-component vector. The zero value is the zero vector and
// assignment copies all three components.
type Vec3 struct{ X, Y, Z float64 }

// Set overwrites all three components
func (v *Vec3) Set(x, y, z float64) {
	v.X, v.Y, v.Z = x, y, z
}

// Add returns the sum of two vectors
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference between two vectors
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul scales a vector by a scalar
func (v Vec3) Mul(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Magnitude returns the vector's Euclidean norm. When the sum of squares
// overflows or underflows, the components are scaled by the largest one
// first.
func (v Vec3) Magnitude() float64 {
	sq := v.Dot(v)
	if sq != 0 && !math.IsInf(sq, 0) {
		return math.Sqrt(sq)
	}

	m := v.maxAbs()
	if m == 0 || math.IsInf(m, 0) || math.IsNaN(m) {
		return m
	}
	s := Vec3{v.X / m, v.Y / m, v.Z / m}
	return m * math.Sqrt(s.Dot(s))
}

func (v Vec3) maxAbs() float64 {
	return math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of two vectors
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Unit returns the unit vector in the same direction. The zero vector has
// no direction: Unit returns the zero vector and false.
func (v Vec3) Unit() (Vec3, bool) {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec3{}, false
	}
	if math.IsInf(mag, 0) {
		// finite components whose norm exceeds MaxFloat64
		if m := v.maxAbs(); !math.IsInf(m, 0) {
			return Vec3{v.X / m, v.Y / m, v.Z / m}.Unit()
		}
	}
	return Vec3{v.X / mag, v.Y / mag, v.Z / mag}, true
}

// Normalize returns a unit vector in the same direction
func (v Vec3) Normalize() Vec3 {
	u, _ := v.Unit()
	return u
}

// String formats the vector as "(x, y, z)" with four decimals
func (v Vec3) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}
