package anim

// TargetHandle is a writable property resolved from a target path.
// Handles are produced by the host's TargetResolver; the evaluator
// never constructs them.
type TargetHandle interface {
	// ComponentCount returns the number of float components the
	// property holds.
	ComponentCount() int
	// Kind returns the blend behavior for the property.
	Kind() ValueKind
	// Get reads the property's current value.
	Get() Value
	// Set writes a value to the live property.
	Set(Value)
	// IsTransform reports whether the property is part of an entity
	// transform and participates in cross-layer composition.
	IsTransform() bool
}

// TargetResolver maps target paths to writable property handles. It is
// an external collaborator: resolution failure is a normal condition,
// not an error, since clips are commonly shared across rigs with
// differing node sets.
type TargetResolver interface {
	// Resolve maps a path to a handle. The second result is false when
	// the path does not exist in the host scene.
	Resolve(path string) (TargetHandle, bool)
	// Unresolve notifies the resolver that no curve drives path anymore.
	Unresolve(path string)
	// Rebind invalidates all previously resolved handles, e.g. after a
	// scene-graph node swap.
	Rebind()
	// Advance notifies the resolver that a frame of dt seconds was
	// evaluated, allowing cache bookkeeping.
	Advance(dt float32)
}
