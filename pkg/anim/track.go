package anim

// Track is a shared, immutable collection of curves plus the decoded
// sample arrays they index into. Tracks are created by the authoring
// pipeline and outlive every clip built from them.
type Track struct {
	Name    string
	Curves  []Curve
	Samples [][]float32
}

// Duration returns the last key time across all curves.
func (t *Track) Duration() float32 {
	var dur float32
	for i := range t.Curves {
		in := t.Samples[t.Curves[i].Input]
		if len(in) > 0 && in[len(in)-1] > dur {
			dur = in[len(in)-1]
		}
	}
	return dur
}

// Stride returns the per-key component count of curve ci's output array.
func (t *Track) Stride(ci int) int {
	c := &t.Curves[ci]
	in := t.Samples[c.Input]
	out := t.Samples[c.Output]
	if len(in) == 0 {
		return 0
	}
	n := len(out) / len(in)
	if c.Interp == InterpCubic {
		n /= 3
	}
	return n
}

// sample evaluates curve ci at time tm into dst, which must hold
// Stride(ci) components. Sampling is a pure function of time.
func (t *Track) sample(ci int, tm float32, dst []float32) {
	c := &t.Curves[ci]
	keys := t.Samples[c.Input]
	out := t.Samples[c.Output]
	stride := len(dst)
	if len(keys) == 0 || stride == 0 {
		return
	}

	k0, k1, u := bracket(keys, tm)

	switch c.Interp {
	case InterpStep:
		copy(dst, keyAt(out, k0, stride))
	case InterpCubic:
		if k0 == k1 {
			copy(dst, cubicKeyValue(out, k0, stride))
			return
		}
		hermite(dst, out, k0, k1, keys[k1]-keys[k0], u, stride)
	default: // InterpLinear
		if k0 == k1 {
			copy(dst, keyAt(out, k0, stride))
			return
		}
		a := keyAt(out, k0, stride)
		b := keyAt(out, k1, stride)
		for i := 0; i < stride; i++ {
			dst[i] = a[i] + u*(b[i]-a[i])
		}
	}
}

// bracket finds the keys surrounding tm and the normalized position u
// between them. Outside the key range it clamps to the nearest key.
func bracket(keys []float32, tm float32) (k0, k1 int, u float32) {
	if tm <= keys[0] {
		return 0, 0, 0
	}
	last := len(keys) - 1
	if tm >= keys[last] {
		return last, last, 0
	}

	// Binary search for the first key strictly after tm.
	lo, hi := 0, last
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if keys[mid] <= tm {
			lo = mid
		} else {
			hi = mid
		}
	}

	span := keys[hi] - keys[lo]
	if span > 0 {
		u = (tm - keys[lo]) / span
	}
	return lo, hi, u
}

func keyAt(out []float32, key, stride int) []float32 {
	off := key * stride
	return out[off : off+stride]
}

// cubicKeyValue returns the value block of a cubic key, skipping the
// in-tangent block that precedes it.
func cubicKeyValue(out []float32, key, stride int) []float32 {
	off := key*stride*3 + stride
	return out[off : off+stride]
}

// hermite evaluates the cubic Hermite basis between keys k0 and k1 with
// key spacing d, writing the result into dst.
func hermite(dst, out []float32, k0, k1 int, d, u float32, stride int) {
	v0 := cubicKeyValue(out, k0, stride)
	v1 := cubicKeyValue(out, k1, stride)
	// Out-tangent of k0 follows its value block, in-tangent of k1 leads it.
	b0 := out[k0*stride*3+2*stride : k0*stride*3+3*stride]
	a1 := out[k1*stride*3 : k1*stride*3+stride]

	u2 := u * u
	u3 := u2 * u
	h00 := 2*u3 - 3*u2 + 1
	h10 := u3 - 2*u2 + u
	h01 := -2*u3 + 3*u2
	h11 := u3 - u2

	for i := 0; i < stride; i++ {
		dst[i] = h00*v0[i] + d*h10*b0[i] + h01*v1[i] + d*h11*a1[i]
	}
}
