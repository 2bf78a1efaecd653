// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree mapping integer keys to values of
// any type
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree (a leaf is height 1
// and an absent child is height 0) and the number of nodes in its
// sub-tree.  Insertion descends to the leaf position and rebalances
// on the way back up with single or double rotations selected by the
// inserted key.  Deletion rebalances by the balance factor of the
// child on the heavy side.
//
// Values belong to the caller: the tree stores them, returns them
// and forgets them, but never copies or inspects them.  Inserting an
// existing key overwrites the value in place.
package avl
