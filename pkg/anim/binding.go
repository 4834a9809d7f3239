package anim

// binding is the per-target accumulator record. One exists per resolved
// path while at least one curve-path drives it; records live in the
// evaluator's arena and are addressed by stable integer index so the
// per-frame loop never hashes path strings.
type binding struct {
	path   string
	target TargetHandle
	// value is the authoritative blended value for this frame.
	value Value
	// curves counts the curve-paths currently driving this target.
	curves int
	// blends counts contributions this frame; zero means the next
	// blendIn overwrites instead of interpolating.
	blends int
}

// blendIn folds one clip's sample into the accumulator. The first
// contribution of a frame overwrites regardless of weight; full weight
// overwrites unconditionally; anything between interpolates from the
// current accumulator toward the sample.
func (b *binding) blendIn(sample Value, weight float32) {
	if b.blends == 0 || weight >= 1 {
		b.value = sample
	} else {
		b.value = b.value.Blend(sample, weight)
	}
	b.blends++
}
