package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fields/internal/geometry/vector"
)

func TestElectricInnerProduct(t *testing.T) {
	tests := []struct {
		name string
		e    Electric
		want float64
	}{
		{"default", Electric{}, 0},
		{"components", NewElectric(1e5, 10.9, 170), 10000029018.81},
		{"set", NewElectric(3, 4, 12), 169},
		{"negative", NewElectric(-1, -2, -2), 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.e.InnerProduct()
			assert.InEpsilon(t, tt.want+1, got+1, 1e-12)

			mag := tt.e.Magnitude()
			assert.InDelta(t, mag*mag, got, 1e-9*math.Max(1, got))
		})
	}
}

func TestElectricLargeComponents(t *testing.T) {
	e := NewElectric(1e5, 10.9, 1.7e2)
	assert.Equal(t, "(100000.0000, 10.9000, 170.0000)", e.String())
	assert.InEpsilon(t, 1.00000029e10, e.InnerProduct(), 1e-5)
	assert.InEpsilon(t, 10000029018.81, e.InnerProduct(), 1e-12)
}

func TestElectricPromotedOps(t *testing.T) {
	var e Electric
	assert.Equal(t, 0.0, e.Magnitude())

	e.X = 3
	e.Y = 4
	e.Z = 12
	assert.Equal(t, 3.0, e.X)
	assert.Equal(t, 13.0, e.Magnitude())

	cp := e
	cp.Set(1, 1, 1)
	assert.Equal(t, NewElectric(3, 4, 12), e)
}

func TestMagneticUnitVector(t *testing.T) {
	u, ok := Magnetic{}.UnitVector()
	assert.False(t, ok)
	assert.Equal(t, vector.Vec3{}, u)

	b := NewMagnetic(0.3, -1.2, 2.4)
	u, ok = b.UnitVector()
	require.True(t, ok)
	assert.InDelta(t, 0.1111, u.X, 1e-4)
	assert.InDelta(t, -0.4444, u.Y, 1e-4)
	assert.InDelta(t, 0.8889, u.Z, 1e-4)
	assert.InDelta(t, 1, u.Magnitude(), 1e-12)
	// component ratios preserved
	assert.InDelta(t, b.Y/b.X, u.Y/u.X, 1e-12)
	assert.InDelta(t, b.Z/b.X, u.Z/u.X, 1e-12)

	var set Magnetic
	set.Set(5, 0, 0)
	u, ok = set.UnitVector()
	require.True(t, ok)
	assert.Equal(t, vector.NewVec3(1, 0, 0), u)
}

func TestMagneticZeroIsExact(t *testing.T) {
	// tiny but non-zero fields still have a direction
	u, ok := NewMagnetic(0, 0, 1e-150).UnitVector()
	require.True(t, ok)
	assert.InDelta(t, 1, u.Z, 1e-12)

	// squares underflow, the field is still non-zero
	u, ok = NewMagnetic(0, 0, 1e-300).UnitVector()
	require.True(t, ok)
	assert.Equal(t, vector.NewVec3(0, 0, 1), u)

	// squares overflow
	u, ok = NewMagnetic(1e200, 0, 0).UnitVector()
	require.True(t, ok)
	assert.Equal(t, vector.NewVec3(1, 0, 0), u)
}
