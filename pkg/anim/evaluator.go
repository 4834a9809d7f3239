package anim

import "sort"

// clipBinding pairs one of a clip's snapshot buffers with the arena
// index of the target it drives.
type clipBinding struct {
	curve  int
	target int
}

// clipEntry is a clip plus its resolved curve-path bindings.
type clipEntry struct {
	clip     *Clip
	bindings []clipBinding
}

// Evaluator owns a set of active clips, binds their curves to resolved
// targets, and blends their sampled values into a coherent output every
// update. When attached to a Controller it acts as one layer of a
// multi-layer pose; otherwise it commits directly to the scene.
//
// All methods must be called from the single simulation goroutine.
type Evaluator struct {
	resolver TargetResolver

	ctrl        *Controller
	layer       int
	layerWeight float32

	clips []*clipEntry

	// bindings is an arena addressed by stable index; freed slots are
	// nil and recycled through free. byPath is consulted only at the
	// resolve boundary, never in the per-frame loop.
	bindings []*binding
	byPath   map[string]int
	free     []int

	// scratch buffers reused across updates
	order   []int
	touched []int
}

// Option configures an Evaluator at construction.
type Option func(*Evaluator)

// WithLayer attaches the evaluator to ctrl as layer id. Transform
// targets are then composed through the controller instead of being
// written directly.
func WithLayer(ctrl *Controller, id int) Option {
	return func(e *Evaluator) {
		e.ctrl = ctrl
		e.layer = id
	}
}

// WithLayerWeight sets the weight this evaluator's layer contributes
// with during cross-layer composition. Defaults to 1.
func WithLayerWeight(w float32) Option {
	return func(e *Evaluator) {
		e.layerWeight = w
	}
}

// NewEvaluator creates an evaluator over the given resolver.
func NewEvaluator(resolver TargetResolver, opts ...Option) *Evaluator {
	e := &Evaluator{
		resolver:    resolver,
		layerWeight: 1,
		byPath:      make(map[string]int),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetLayerWeight changes the cross-layer contribution weight.
func (e *Evaluator) SetLayerWeight(w float32) { e.layerWeight = w }

// AddClip binds every curve-path of the clip's track to a target and
// appends the clip to the active list. Paths the resolver cannot map
// are skipped silently.
func (e *Evaluator) AddClip(c *Clip) {
	entry := &clipEntry{clip: c}
	e.bindClip(entry)
	e.clips = append(e.clips, entry)
}

func (e *Evaluator) bindClip(entry *clipEntry) {
	track := entry.clip.Track()
	for ci := range track.Curves {
		for _, path := range track.Curves[ci].Paths {
			idx, ok := e.bind(path)
			if !ok {
				continue
			}
			entry.bindings = append(entry.bindings, clipBinding{curve: ci, target: idx})
		}
	}
}

// bind resolves path to an arena index, creating the binding record on
// first reference and bumping its reference count otherwise.
func (e *Evaluator) bind(path string) (int, bool) {
	if idx, ok := e.byPath[path]; ok {
		e.bindings[idx].curves++
		return idx, true
	}

	target, ok := e.resolver.Resolve(path)
	if !ok {
		return 0, false
	}

	b := &binding{
		path:   path,
		target: target,
		value:  Value{Kind: target.Kind()},
		curves: 1,
	}

	var idx int
	if n := len(e.free); n > 0 {
		idx = e.free[n-1]
		e.free = e.free[:n-1]
		e.bindings[idx] = b
	} else {
		idx = len(e.bindings)
		e.bindings = append(e.bindings, b)
	}
	e.byPath[path] = idx

	if e.ctrl != nil && target.IsTransform() {
		e.ctrl.RegisterInterest(path, e.layer, target)
	}
	return idx, true
}

// release drops one reference to the binding at idx. When the count
// reaches zero the record is removed, the resolver is asked to
// unresolve the path, and the arena slot is recycled.
func (e *Evaluator) release(idx int) {
	if idx < 0 || idx >= len(e.bindings) {
		return
	}
	b := e.bindings[idx]
	if b == nil {
		return
	}
	b.curves--
	if b.curves > 0 {
		return
	}

	delete(e.byPath, b.path)
	e.bindings[idx] = nil
	e.free = append(e.free, idx)

	if e.ctrl != nil && b.target.IsTransform() {
		e.ctrl.UnregisterInterest(b.path, e.layer)
	}
	e.resolver.Unresolve(b.path)
}

// RemoveClip removes the clip at index i, releasing every binding it
// drove. Out-of-range indices are ignored.
func (e *Evaluator) RemoveClip(i int) {
	if i < 0 || i >= len(e.clips) {
		return
	}
	entry := e.clips[i]
	for _, cb := range entry.bindings {
		e.release(cb.target)
	}
	e.clips = append(e.clips[:i], e.clips[i+1:]...)
}

// RemoveClips removes every active clip in index order.
func (e *Evaluator) RemoveClips() {
	for len(e.clips) > 0 {
		e.RemoveClip(0)
	}
}

// FindClip returns the first clip with the given name, or nil.
func (e *Evaluator) FindClip(name string) *Clip {
	for _, entry := range e.clips {
		if entry.clip.Name() == name {
			return entry.clip
		}
	}
	return nil
}

// ClipCount returns the number of active clips.
func (e *Evaluator) ClipCount() int { return len(e.clips) }

// ClipAt returns the clip at index i, or nil when out of range.
func (e *Evaluator) ClipAt(i int) *Clip {
	if i < 0 || i >= len(e.clips) {
		return nil
	}
	return e.clips[i].clip
}

// BoundTargets returns the number of live target bindings.
func (e *Evaluator) BoundTargets() int { return len(e.byPath) }

// Rebind rebuilds the binding table after the resolver's underlying
// bindings changed, e.g. a scene-graph node swap. Clip playback state
// (time, weight, order) is preserved; only bindings are redone, in the
// original clip order.
func (e *Evaluator) Rebind() {
	e.resolver.Rebind()

	if e.ctrl != nil {
		for _, b := range e.bindings {
			if b != nil && b.target.IsTransform() {
				e.ctrl.UnregisterInterest(b.path, e.layer)
			}
		}
	}
	e.bindings = e.bindings[:0]
	e.free = e.free[:0]
	e.byPath = make(map[string]int)

	for _, entry := range e.clips {
		entry.bindings = entry.bindings[:0]
		e.bindClip(entry)
	}
}

// Update advances every active clip by dt and blends their samples into
// the bound targets, committing the result at the end of the pass.
func (e *Evaluator) Update(dt float32) {
	e.update(dt, true)
}

// Tick advances clip clocks by dt without blending or writing output.
// Used to keep an evaluator's internal time running while it is muted
// from visual contribution, or to force-advance during seeks.
func (e *Evaluator) Tick(dt float32) {
	e.update(dt, false)
}

func (e *Evaluator) update(dt float32, output bool) {
	// Stable sort by blend order: ties keep insertion order, which
	// decides each target's first contributor of the frame.
	order := e.order[:0]
	for i := range e.clips {
		order = append(order, i)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return e.clips[order[i]].clip.BlendOrder() < e.clips[order[j]].clip.BlendOrder()
	})
	e.order = order

	for _, ci := range order {
		c := e.clips[ci].clip
		if c.effectiveWeight() <= 0 {
			continue
		}
		if c.Playing() {
			c.AddTime(dt)
		} else {
			// Paused clips hold their pose; refresh without advancing.
			c.AddTime(0)
		}
	}

	if !output {
		return
	}

	touched := e.touched[:0]
	for _, ci := range order {
		entry := e.clips[ci]
		w := entry.clip.effectiveWeight()
		if w <= 0 {
			continue
		}
		for _, cb := range entry.bindings {
			b := e.bindings[cb.target]
			if b == nil {
				continue
			}
			if b.blends == 0 {
				touched = append(touched, cb.target)
			}
			b.blendIn(valueFrom(entry.clip.snapshot[cb.curve], b.target.Kind()), w)
		}
	}

	for _, idx := range touched {
		b := e.bindings[idx]
		if b == nil || b.blends == 0 {
			continue
		}
		if e.ctrl != nil && b.target.IsTransform() {
			e.ctrl.Contribute(b.path, b.value, e.layerWeight, e.layer)
		} else {
			b.target.Set(b.value)
		}
		b.blends = 0
	}
	e.touched = touched[:0]

	e.resolver.Advance(dt)
}
