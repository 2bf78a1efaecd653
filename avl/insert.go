// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree or overwrite the value of
// an existing key
//
// returns false only if the tree itself is nil
func (tree *Tree[V]) Insert(key int, value V) bool {
	if nil == tree {
		return false
	}
	tree.root = tree.insert(key, value, tree.root)
	return true
}

// internal routine for insert
// returns the possibly updated root of the sub-tree
func (tree *Tree[V]) insert(key int, value V, p *Node[V]) *Node[V] {
	if nil == p { // insert new node
		return tree.newNode(key, value)
	}

	switch {
	case key > p.key:
		p.right = tree.insert(key, value, p.right)
	case key < p.key:
		p.left = tree.insert(key, value, p.left)
	default:
		// same key: shape is unchanged
		p.value = value
		return p
	}

	p.update()

	// negative: left branch is higher
	b := balance(p)

	switch {
	case b < -1 && key < p.left.key:
		// single LL rotation
		return rotateRight(p)

	case b > 1 && key > p.right.key:
		// single RR rotation
		return rotateLeft(p)

	case b < -1 && key > p.left.key:
		// double LR rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p)

	case b > 1 && key < p.right.key:
		// double RL rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p)
	}
	return p
}
