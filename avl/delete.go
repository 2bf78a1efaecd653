// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns the value that was stored and true, or the zero value and
// false if the key was not in the tree
func (tree *Tree[V]) Delete(key int) (V, bool) {
	if nil == tree {
		var zero V
		return zero, false
	}
	var q *Node[V]
	tree.root, q = remove(key, tree.root)
	if nil == q {
		var zero V
		return zero, false
	}
	value := q.value // preserve the value part
	tree.freeNode(q) // return deleted node to pool
	return value, true
}

// internal delete routine
// returns the new sub-tree root and the detached node (nil if not found)
func remove[V any](key int, p *Node[V]) (*Node[V], *Node[V]) {
	if nil == p { // key not in tree
		return nil, nil
	}

	var q *Node[V]
	switch {
	case key < p.key:
		p.left, q = remove(key, p.left)
	case key > p.key:
		p.right, q = remove(key, p.right)
	default: // found: delete p
		q = p
		if nil == p.right {
			return p.left, q
		}
		if nil == p.left {
			return p.right, q
		}

		// two children: the lowest node of the right branch takes
		// the place of p, node identities are kept so no value is
		// copied
		var r *Node[V]
		right := p.right
		right, r = removeFirst(right)
		r.left = p.left
		r.right = right
		p.left = nil
		p.right = nil
		p = r
	}
	if nil == q {
		return p, nil
	}
	return rebalance(p), q
}

// delete: detach the lowest node of a sub-tree
// returns the new sub-tree root and the detached node
func removeFirst[V any](p *Node[V]) (*Node[V], *Node[V]) {
	if nil == p.left {
		r := p.right
		p.right = nil
		return r, p
	}
	var q *Node[V]
	p.left, q = removeFirst(p.left)
	return rebalance(p), q
}

// delete: tree balancer
//
// a branch has shrunk by at most one level, so the heavy side child's
// own balance selects single or double rotation
func rebalance[V any](p *Node[V]) *Node[V] {
	p.update()
	b := balance(p)

	if b < -1 { // left heavy
		if balance(p.left) > 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		// single LL rotation
		return rotateRight(p)
	}
	if b > 1 { // right heavy
		if balance(p.right) < 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		// single RR rotation
		return rotateLeft(p)
	}
	return p
}
