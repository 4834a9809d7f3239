package anim

// Test fakes: an in-memory resolver with call counters, standing in for
// the host scene graph.

type fakeTarget struct {
	kind      ValueKind
	transform bool
	value     Value
	sets      int
}

func (t *fakeTarget) ComponentCount() int { return t.kind.ComponentCount() }
func (t *fakeTarget) Kind() ValueKind     { return t.kind }
func (t *fakeTarget) Get() Value          { return t.value }
func (t *fakeTarget) IsTransform() bool   { return t.transform }

func (t *fakeTarget) Set(v Value) {
	t.value = v
	t.sets++
}

type fakeResolver struct {
	targets    map[string]*fakeTarget
	resolves   map[string]int
	unresolves map[string]int
	rebinds    int
	advanced   float32
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		targets:    make(map[string]*fakeTarget),
		resolves:   make(map[string]int),
		unresolves: make(map[string]int),
	}
}

func (r *fakeResolver) add(path string, kind ValueKind, transform bool) *fakeTarget {
	t := &fakeTarget{kind: kind, transform: transform, value: Value{Kind: kind}}
	r.targets[path] = t
	return t
}

func (r *fakeResolver) Resolve(path string) (TargetHandle, bool) {
	r.resolves[path]++
	t, ok := r.targets[path]
	if !ok {
		return nil, false
	}
	return t, true
}

func (r *fakeResolver) Unresolve(path string) { r.unresolves[path]++ }
func (r *fakeResolver) Rebind()               { r.rebinds++ }
func (r *fakeResolver) Advance(dt float32)    { r.advanced += dt }

// vecTrack builds a single-curve linear track driving the given paths
// with 3-component keys.
func vecTrack(name string, paths []string, keys []float32, values [][3]float32) *Track {
	out := make([]float32, 0, len(values)*3)
	for _, v := range values {
		out = append(out, v[0], v[1], v[2])
	}
	return &Track{
		Name: name,
		Curves: []Curve{
			{Paths: paths, Input: 0, Output: 1, Interp: InterpLinear},
		},
		Samples: [][]float32{keys, out},
	}
}

// constVecTrack builds a track that holds a single constant value.
func constVecTrack(name, path string, v [3]float32) *Track {
	return vecTrack(name, []string{path}, []float32{0}, [][3]float32{v})
}

// quatTrack builds a single-curve linear track with 4-component keys.
func quatTrack(name, path string, keys []float32, values [][4]float32) *Track {
	out := make([]float32, 0, len(values)*4)
	for _, v := range values {
		out = append(out, v[0], v[1], v[2], v[3])
	}
	return &Track{
		Name: name,
		Curves: []Curve{
			{Paths: []string{path}, Input: 0, Output: 1, Interp: InterpLinear},
		},
		Samples: [][]float32{keys, out},
	}
}
