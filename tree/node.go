/*
Package tree implements a small general purpose tree type.

Styling and layout operate on several trees (styled tree, box tree). In a
fully object oriented language we would subclass a tree type for every kind
of tree in use, but in Go we resort to composition, thus including a generic
tree node in every node (sub-)type. Node types set the payload to the
enclosing struct, making the sub-type available from the generic node.

Trees are built and walked by a single goroutine; nodes are not safe for
concurrent mutation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tree

import "fmt"

// Node is the base type our trees are built of.
type Node[T comparable] struct {
	parent   *Node[T]   // parent node of this node
	children []*Node[T] // ordered children
	Payload  T          // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a child node. The child is connected to this node as its
// parent. It returns the parent node to allow for chaining.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		node.children = append(node.children, ch)
		ch.parent = node
	}
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	if node == nil {
		return 0
	}
	return len(node.children)
}

// Child returns the n-th child of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || node.ChildCount() <= n {
		return nil, false
	}
	return node.children[n], true
}

// LastChild returns the last child of a node, if any.
func (node *Node[T]) LastChild() (*Node[T], bool) {
	return node.Child(node.ChildCount() - 1)
}

// Children returns a slice with all children of a node.
// Clients must not modify the returned slice.
func (node *Node[T]) Children() []*Node[T] {
	return node.children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// TopDown walks a (sub-)tree in pre-order, calling f for every node.
// Children are visited in order. If f returns false, the children of the
// current node are skipped.
func (node *Node[T]) TopDown(f func(*Node[T]) bool) {
	if node == nil {
		return
	}
	if !f(node) {
		return
	}
	for _, ch := range node.children {
		ch.TopDown(f)
	}
}

// Size returns the number of nodes in the (sub-)tree rooted at node.
func (node *Node[T]) Size() int {
	n := 0
	node.TopDown(func(*Node[T]) bool {
		n++
		return true
	})
	return n
}
