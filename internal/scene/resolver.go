package scene

import (
	"strings"

	"github.com/calenhad/poseblend/pkg/anim"
)

// Resolver maps animation target paths onto a node hierarchy. Paths
// have the form "node/child.property" where property is one of
// position, rotation, scale, or "params.<name>" for a named scalar.
type Resolver struct {
	root    *Node
	handles map[string]*handle

	// frameTime accumulates Advance deltas for host bookkeeping.
	frameTime float32
}

// NewResolver creates a resolver rooted at root.
func NewResolver(root *Node) *Resolver {
	return &Resolver{
		root:    root,
		handles: make(map[string]*handle),
	}
}

// Root returns the hierarchy the resolver binds against.
func (r *Resolver) Root() *Node { return r.root }

// SetRoot swaps the hierarchy. Callers must Rebind evaluators built on
// this resolver afterwards.
func (r *Resolver) SetRoot(root *Node) { r.root = root }

// FrameTime returns the total animated time reported through Advance.
func (r *Resolver) FrameTime() float32 { return r.frameTime }

// Resolve maps path to a property handle, or reports false when the
// node or property does not exist. Results are cached until Rebind.
func (r *Resolver) Resolve(path string) (anim.TargetHandle, bool) {
	if h, ok := r.handles[path]; ok {
		return h, true
	}

	dot := strings.IndexByte(path, '.')
	if dot < 0 {
		return nil, false
	}
	node := r.root.Find(path[:dot])
	if node == nil {
		return nil, false
	}
	prop := path[dot+1:]

	h := &handle{node: node}
	switch {
	case prop == "position" || prop == "scale":
		h.prop = prop
		h.kind = anim.KindVector
		h.transform = true
	case prop == "rotation":
		h.prop = prop
		h.kind = anim.KindQuaternion
		h.transform = true
	case strings.HasPrefix(prop, "params."):
		h.param = prop[len("params."):]
		h.kind = anim.KindScalar
	default:
		return nil, false
	}

	r.handles[path] = h
	return h, true
}

// Unresolve drops the cached handle for path.
func (r *Resolver) Unresolve(path string) {
	delete(r.handles, path)
}

// Rebind discards every cached handle so the next Resolve walks the
// current hierarchy again.
func (r *Resolver) Rebind() {
	r.handles = make(map[string]*handle)
}

// Advance records evaluated frame time.
func (r *Resolver) Advance(dt float32) {
	r.frameTime += dt
}

// handle is a writable view of one node property.
type handle struct {
	node      *Node
	prop      string
	param     string
	kind      anim.ValueKind
	transform bool
}

func (h *handle) ComponentCount() int  { return h.kind.ComponentCount() }
func (h *handle) Kind() anim.ValueKind { return h.kind }
func (h *handle) IsTransform() bool    { return h.transform }

func (h *handle) Get() anim.Value {
	switch {
	case h.param != "":
		return anim.ScalarValue(h.node.Params[h.param])
	case h.prop == "position":
		return anim.VectorValue(h.node.Position)
	case h.prop == "scale":
		return anim.VectorValue(h.node.Scale)
	default:
		return anim.QuatValue(h.node.Rotation)
	}
}

func (h *handle) Set(v anim.Value) {
	switch {
	case h.param != "":
		h.node.Params[h.param] = v.Float()
	case h.prop == "position":
		h.node.Position = v.Vec3()
	case h.prop == "scale":
		h.node.Scale = v.Vec3()
	default:
		h.node.Rotation = v.Quat()
	}
}

// compile-time interface checks
var (
	_ anim.TargetResolver = (*Resolver)(nil)
	_ anim.TargetHandle   = (*handle)(nil)
)
