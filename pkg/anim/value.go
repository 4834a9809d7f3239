// Package anim implements per-frame animation evaluation and blending:
// clips advance playback time over keyframe tracks, their sampled values
// are weight-blended into resolved scene targets, and multiple layered
// evaluators can compose a single pose through a shared controller.
package anim

import "github.com/calenhad/poseblend/pkg/math"

// ValueKind tags a Value with its blend behavior.
type ValueKind uint8

const (
	// KindScalar is a single float component.
	KindScalar ValueKind = iota
	// KindVector is a 3-component vector, blended per component.
	KindVector
	// KindQuaternion is a rotation, blended with shortest-path slerp.
	KindQuaternion
)

// ComponentCount returns the number of float components for the kind.
func (k ValueKind) ComponentCount() int {
	switch k {
	case KindVector:
		return 3
	case KindQuaternion:
		return 4
	default:
		return 1
	}
}

// Value is a blendable property value. The kind selects how Blend
// interpolates; Data holds up to four components.
type Value struct {
	Kind ValueKind
	Data [4]float32
}

// ScalarValue wraps a float in a Value.
func ScalarValue(s float32) Value {
	return Value{Kind: KindScalar, Data: [4]float32{s}}
}

// VectorValue wraps a Vec3 in a Value.
func VectorValue(v math.Vec3) Value {
	return Value{Kind: KindVector, Data: [4]float32{v.X, v.Y, v.Z}}
}

// QuatValue wraps a quaternion in a Value.
func QuatValue(q math.Quat) Value {
	return Value{Kind: KindQuaternion, Data: [4]float32{q.X, q.Y, q.Z, q.W}}
}

// Float returns the scalar component.
func (v Value) Float() float32 {
	return v.Data[0]
}

// Vec3 returns the vector components.
func (v Value) Vec3() math.Vec3 {
	return math.Vec3{X: v.Data[0], Y: v.Data[1], Z: v.Data[2]}
}

// Quat returns the quaternion components.
func (v Value) Quat() math.Quat {
	return math.Quat{X: v.Data[0], Y: v.Data[1], Z: v.Data[2], W: v.Data[3]}
}

// Blend interpolates from v toward sample by weight. Vectors and scalars
// lerp; quaternions slerp along the shortest path.
func (v Value) Blend(sample Value, weight float32) Value {
	switch v.Kind {
	case KindQuaternion:
		return QuatValue(v.Quat().Slerp(sample.Quat(), weight))
	case KindVector:
		return VectorValue(v.Vec3().Lerp(sample.Vec3(), weight))
	default:
		return ScalarValue(v.Data[0] + weight*(sample.Data[0]-v.Data[0]))
	}
}

// valueFrom builds a tagged Value from a raw snapshot buffer. Extra
// components beyond the kind's count are ignored; missing ones stay zero.
func valueFrom(buf []float32, kind ValueKind) Value {
	v := Value{Kind: kind}
	n := kind.ComponentCount()
	if n > len(buf) {
		n = len(buf)
	}
	copy(v.Data[:n], buf[:n])
	return v
}
