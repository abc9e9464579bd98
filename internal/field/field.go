// Package field defines electric and magnetic field vectors. Both embed
// vector.Vec3, so construction, component access, Set and Magnitude come
// from the shared vector type; each field adds its own derived quantity.
package field

import "fields/internal/geometry/vector"

// Electric is an electric field vector E.
type Electric struct {
	vector.Vec3
}

// NewElectric creates an electric field with the given components.
func NewElectric(ex, ey, ez float64) Electric {
	return Electric{vector.NewVec3(ex, ey, ez)}
}

// InnerProduct returns E·E, the square of the field's magnitude.
func (e Electric) InnerProduct() float64 {
	return e.Dot(e.Vec3)
}

// Magnetic is a magnetic field vector B.
type Magnetic struct {
	vector.Vec3
}

// NewMagnetic creates a magnetic field with the given components.
func NewMagnetic(bx, by, bz float64) Magnetic {
	return Magnetic{vector.NewVec3(bx, by, bz)}
}

// UnitVector returns B/|B|. A field of exactly zero magnitude has no
// direction; the result is then (0, 0, 0) and false.
func (b Magnetic) UnitVector() (vector.Vec3, bool) {
	return b.Unit()
}
