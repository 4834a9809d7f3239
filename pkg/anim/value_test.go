package anim

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calenhad/poseblend/pkg/math"
)

func TestValueKindComponentCount(t *testing.T) {
	require.Equal(t, 1, KindScalar.ComponentCount())
	require.Equal(t, 3, KindVector.ComponentCount())
	require.Equal(t, 4, KindQuaternion.ComponentCount())
}

func TestValueBlendScalar(t *testing.T) {
	a := ScalarValue(2)
	b := ScalarValue(6)
	require.InDelta(t, 3.0, a.Blend(b, 0.25).Float(), 1e-6)
}

func TestValueBlendVector(t *testing.T) {
	a := VectorValue(math.Vec3{X: 0, Y: 0, Z: 0})
	b := VectorValue(math.Vec3{X: 0, Y: 5, Z: 0})
	r := a.Blend(b, 0.3).Vec3()
	require.InDelta(t, 1.5, r.Y, 1e-6)
}

func TestValueBlendQuaternionSlerps(t *testing.T) {
	a := QuatValue(math.QuatIdentity())
	b := QuatValue(math.QuatFromAxisAngle(math.Vec3{Y: 1}, float32(stdmath.Pi/2)))
	r := a.Blend(b, 0.5).Quat()
	require.InDelta(t, stdmath.Cos(stdmath.Pi/8), float64(r.W), 1e-3)
}

func TestValueFromShortBuffer(t *testing.T) {
	// Fewer components than the kind expects: missing ones stay zero
	// rather than reading out of bounds.
	v := valueFrom([]float32{1, 2}, KindQuaternion)
	require.Equal(t, [4]float32{1, 2, 0, 0}, v.Data)

	// Extra components are ignored.
	s := valueFrom([]float32{3, 4, 5}, KindScalar)
	require.Equal(t, [4]float32{3, 0, 0, 0}, s.Data)
}
