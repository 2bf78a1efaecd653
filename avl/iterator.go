// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree[V]) First() *Node[V] {
	return tree.Root().first()
}

// internal: lowest node in a sub-tree
func (p *Node[V]) first() *Node[V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[V]) Last() *Node[V] {
	return tree.Root().last()
}

// internal: highest node in a sub-tree
func (p *Node[V]) last() *Node[V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Walk - call fn for each item in ascending key order
//
// stops early if fn returns false
func (tree *Tree[V]) Walk(fn func(key int, value V) bool) {
	walk(tree.Root(), fn)
}

func walk[V any](p *Node[V], fn func(key int, value V) bool) bool {
	if nil == p {
		return true
	}
	if !walk(p.left, fn) {
		return false
	}
	if !fn(p.key, p.value) {
		return false
	}
	return walk(p.right, fn)
}

// Keys - all keys in ascending order
func (tree *Tree[V]) Keys() []int {
	keys := make([]int, 0, tree.Count())
	tree.Walk(func(key int, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
