// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Lookup - find the value stored for a key
//
// returns the zero value and false if the key is not present or the
// tree is empty
func (tree *Tree[V]) Lookup(key int) (V, bool) {
	if nil == tree {
		var zero V
		return zero, false
	}
	return lookup(key, tree.root)
}

func lookup[V any](key int, tree *Node[V]) (V, bool) {
	if nil == tree {
		var zero V
		return zero, false
	}

	switch {
	case key < tree.key:
		return lookup(key, tree.left)
	case key > tree.key:
		return lookup(key, tree.right)
	default:
		return tree.value, true
	}
}

// Search - find a specific item
//
// returns the node and its zero based in-order index, or nil and -1
func (tree *Tree[V]) Search(key int) (*Node[V], int) {
	if nil == tree {
		return nil, -1
	}
	return search(key, tree.root, 0)
}

func search[V any](key int, tree *Node[V], index int) (*Node[V], int) {
	if nil == tree {
		return nil, -1
	}

	switch {
	case key < tree.key:
		return search(key, tree.left, index)
	case key > tree.key:
		return search(key, tree.right, index+size(tree.left)+1)
	default:
		return tree, index + size(tree.left)
	}
}
