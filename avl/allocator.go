// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Stats - allocator counters for a tree
type Stats struct {
	Nodes     int // nodes currently linked into the tree
	Allocated int // nodes created since New or the last Free
	Pooled    int // reclaimed nodes waiting for reuse
}

// Stats - return the allocator counters
func (tree *Tree[V]) Stats() Stats {
	if nil == tree {
		return Stats{}
	}
	return Stats{
		Nodes:     size(tree.root),
		Allocated: tree.totalNodes,
		Pooled:    tree.freeNodes,
	}
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (tree *Tree[V]) newNode(key int, value V) *Node[V] {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			fault.Panicf("avl: pool corrupt: empty list with %d free nodes", tree.freeNodes)
		}
		tree.totalNodes += 1
		return &Node[V]{
			key:    key,
			value:  value,
			height: 1,
			size:   1,
		}
	}
	p := tree.pool
	tree.pool = p.right
	p.key = key
	p.value = value
	p.height = 1
	p.size = 1
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	tree.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the pool
func (tree *Tree[V]) freeNode(node *Node[V]) {
	var zero V

	node.right = tree.pool // use as free list pointer
	node.left = nil
	node.key = 0
	node.value = zero
	node.height = 0
	node.size = 0
	tree.freeNodes += 1

	tree.pool = node
}

// Free - release every node and empty the tree
//
// nodes are released children first, then the node itself, and the
// reclaimed node pool is dropped.  A nil or already empty tree is
// left unchanged.
func (tree *Tree[V]) Free() {
	if nil == tree {
		return
	}
	release(tree.root)
	tree.root = nil

	// unlink the pool so nothing keeps the nodes alive
	for p := tree.pool; nil != p; {
		next := p.right
		p.right = nil
		p = next
	}
	tree.pool = nil
	tree.freeNodes = 0
	tree.totalNodes = 0
}

// internal: post-order release of a sub-tree
func release[V any](p *Node[V]) {
	if nil == p {
		return
	}
	release(p.left)
	release(p.right)

	var zero V
	p.left = nil
	p.right = nil
	p.value = zero
}
