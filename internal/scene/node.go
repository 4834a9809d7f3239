// Package scene provides a minimal node hierarchy that hosts animation
// targets for the demo tool and integration tests. Each node carries a
// transform (position, rotation, scale) and named scalar parameters.
package scene

import (
	"strings"

	"github.com/calenhad/poseblend/pkg/math"
)

// Node is one element of the hierarchy.
type Node struct {
	Name     string
	Position math.Vec3
	Rotation math.Quat
	Scale    math.Vec3
	Params   map[string]float32

	children []*Node
}

// NewNode creates a node with an identity transform.
func NewNode(name string) *Node {
	return &Node{
		Name:     name,
		Rotation: math.QuatIdentity(),
		Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
		Params:   make(map[string]float32),
	}
}

// AddChild attaches child to n.
func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
}

// Child returns the direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Find walks a slash-separated path from n. A leading segment equal to
// n's own name is accepted, so "root/arm" and "arm" both work from a
// node named root. Returns nil when any segment is missing.
func (n *Node) Find(path string) *Node {
	if path == "" {
		return n
	}
	segs := strings.Split(path, "/")
	if segs[0] == n.Name {
		segs = segs[1:]
	}
	cur := n
	for _, seg := range segs {
		cur = cur.Child(seg)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Ensure returns the node at the slash-separated path, creating missing
// nodes along the way.
func (n *Node) Ensure(path string) *Node {
	if path == "" {
		return n
	}
	segs := strings.Split(path, "/")
	if segs[0] == n.Name {
		segs = segs[1:]
	}
	cur := n
	for _, seg := range segs {
		next := cur.Child(seg)
		if next == nil {
			next = NewNode(seg)
			cur.AddChild(next)
		}
		cur = next
	}
	return cur
}
