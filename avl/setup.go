// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
//
// the root can change on any insert or delete, the Tree is the
// stable handle callers keep
type Tree[V any] struct {
	root *Node[V]

	// allocator data
	pool       *Node[V] // linked list of reclaimed nodes
	totalNodes int      // total nodes created
	freeNodes  int      // number of nodes in the pool
}

// Node - a node in the tree
type Node[V any] struct {
	left   *Node[V] // left sub-tree
	right  *Node[V] // right sub-tree
	key    int      // key part for ordering
	value  V        // value part for data storage
	height int      // 1 for a leaf
	size   int      // nodes in this sub-tree including this one
}

// New - create an initially empty tree
func New[V any]() *Tree[V] {
	return &Tree[V]{
		root: nil,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[V]) IsEmpty() bool {
	return nil == tree || nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[V]) Count() int {
	if nil == tree {
		return 0
	}
	return size(tree.root)
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[V]) Height() int {
	if nil == tree {
		return 0
	}
	return height(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree[V]) Root() *Node[V] {
	if nil == tree {
		return nil
	}
	return tree.root
}

// Key - read the key from a node item
func (p *Node[V]) Key() int {
	return p.key
}

// Value - read the value from a node item
func (p *Node[V]) Value() V {
	return p.value
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node[V]) Height() int {
	return height(p)
}

// Size - number of nodes in the sub-tree rooted at this node
func (p *Node[V]) Size() int {
	return size(p)
}

// Balance - right height minus left height, negative when left heavy
func (p *Node[V]) Balance() int {
	return balance(p)
}

// Left - left child or nil
func (p *Node[V]) Left() *Node[V] {
	if nil == p {
		return nil
	}
	return p.left
}

// Right - right child or nil
func (p *Node[V]) Right() *Node[V] {
	if nil == p {
		return nil
	}
	return p.right
}

// height of a possibly absent sub-tree
func height[V any](p *Node[V]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// node count of a possibly absent sub-tree
func size[V any](p *Node[V]) int {
	if nil == p {
		return 0
	}
	return p.size
}

func balance[V any](p *Node[V]) int {
	if nil == p {
		return 0
	}
	return height(p.right) - height(p.left)
}

// recompute the cached fields from the children
func (p *Node[V]) update() {
	p.height = 1 + max(height(p.left), height(p.right))
	p.size = 1 + size(p.left) + size(p.right)
}
