// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - recompute every cached field and verify the ordering and
// balance of the whole tree
//
// returns nil for a consistent tree, otherwise one of the fault
// Err… values wrapped with the key of the offending node
func (tree *Tree[V]) Check() error {
	_, _, err := check(tree.Root(), nil, nil)
	return err
}

// internal: consistency checker
// low and high are the exclusive key bounds inherited from ancestors
// returns the recomputed height and size
func check[V any](p *Node[V], low *int, high *int) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if (nil != low && p.key <= *low) || (nil != high && p.key >= *high) {
		return 0, 0, fmt.Errorf("%w  at key: %d", fault.ErrKeyOrder, p.key)
	}

	lh, ls, err := check(p.left, low, &p.key)
	if nil != err {
		return 0, 0, err
	}
	rh, rs, err := check(p.right, &p.key, high)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + max(lh, rh)
	if h != p.height {
		return 0, 0, fmt.Errorf("%w  at key: %d  actual: %d  expected: %d", fault.ErrHeightMismatch, p.key, p.height, h)
	}
	s := 1 + ls + rs
	if s != p.size {
		return 0, 0, fmt.Errorf("%w  at key: %d  actual: %d  expected: %d", fault.ErrSizeMismatch, p.key, p.size, s)
	}
	if rh-lh > 1 || lh-rh > 1 {
		return 0, 0, fmt.Errorf("%w  at key: %d  left: %d  right: %d", fault.ErrUnbalanced, p.key, lh, rh)
	}
	return h, s, nil
}
