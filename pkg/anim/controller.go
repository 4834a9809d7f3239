package anim

// Controller composes the transform contributions of several layered
// Evaluators driving one entity into a single pose. It is owned by the
// entity's animation host; each layer's evaluator holds only a
// non-owning reference plus its layer id.
//
// A target's accumulated value is committed to the live property
// exactly when every layer registered as interested in it has
// contributed for the current frame cycle. The expected layer count is
// snapshotted when a cycle's first contribution arrives, so interest
// changes mid-cycle take effect on the next cycle.
type Controller struct {
	states map[string]*layerState
}

// layerState is the cross-layer accumulator for one transform path.
type layerState struct {
	target TargetHandle
	// base is the property value before any layer touched it, captured
	// once and restored when the last interested layer unbinds.
	base Value
	// sum is the running cross-layer total for the current cycle.
	sum Value
	// layers holds the ids of layers registered as interested.
	layers map[int]struct{}
	// expected is the layer count snapshotted at cycle start.
	expected int
	// count is the number of contributions received this cycle,
	// muted layers included.
	count int
	// seeded reports whether sum holds a real contribution this
	// cycle; muted layers count toward the gate without seeding.
	seeded bool
}

// NewController creates an empty cross-layer controller.
func NewController() *Controller {
	return &Controller{states: make(map[string]*layerState)}
}

// RegisterInterest declares that layer drives the transform at path.
// The first registration for a path captures the property's
// pre-animation base value. Re-registering with a different handle,
// as a rebind after a scene swap does, retargets the state and
// re-captures the base from the new property.
func (c *Controller) RegisterInterest(path string, layer int, target TargetHandle) {
	st, ok := c.states[path]
	if !ok {
		st = &layerState{
			target: target,
			base:   target.Get(),
			layers: make(map[int]struct{}),
		}
		c.states[path] = st
	} else if st.target != target {
		st.target = target
		st.base = target.Get()
	}
	st.layers[layer] = struct{}{}
}

// UnregisterInterest withdraws a layer from path. When the last layer
// leaves, the cached base value is written back to the property and the
// state is dropped.
func (c *Controller) UnregisterInterest(path string, layer int) {
	st, ok := c.states[path]
	if !ok {
		return
	}
	delete(st.layers, layer)
	if len(st.layers) == 0 {
		st.target.Set(st.base)
		delete(c.states, path)
	}
}

// Contribute folds one layer's already intra-layer-blended value into
// the running total for path. The first effective contribution of a
// cycle overwrites; full weight overwrites; fractional weight blends.
// A muted (zero weight) layer counts toward the completion gate but
// leaves the total untouched. Once contributions reach the snapshotted
// layer count the total is pushed to the live property and the cycle
// resets; a cycle in which every layer was muted commits nothing.
func (c *Controller) Contribute(path string, v Value, weight float32, layer int) {
	st, ok := c.states[path]
	if !ok {
		return
	}

	if st.count == 0 {
		st.expected = len(st.layers)
	}
	switch {
	case weight <= 0:
	case !st.seeded || weight >= 1:
		st.sum = v
		st.seeded = true
	default:
		st.sum = st.sum.Blend(v, weight)
	}
	st.count++

	if st.count >= st.expected {
		if st.seeded {
			st.target.Set(st.sum)
		}
		st.count = 0
		st.seeded = false
	}
}

// Interested returns how many layers currently drive path. Zero means
// no cross-layer state exists for it.
func (c *Controller) Interested(path string) int {
	st, ok := c.states[path]
	if !ok {
		return 0
	}
	return len(st.layers)
}
