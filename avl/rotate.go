// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotate right around a left heavy node
//
//	      D              B
//	     / \            / \
//	    B   E    →     A   D
//	   / \                / \
//	  A   C              C   E
//
// returns the new root of the sub-tree
func rotateRight[V any](p *Node[V]) *Node[V] {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	// p is now below p1 so must be updated first
	p.update()
	p1.update()

	return p1
}

// rotate left around a right heavy node, the mirror of rotateRight
func rotateLeft[V any](p *Node[V]) *Node[V] {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	p.update()
	p1.update()

	return p1
}
