// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// spaces added for each level of the tree
const indentStep = 5

// Print - preorder dump of the keys to standard output
//
// each key is on its own line indented five columns deeper than its
// parent
func (tree *Tree[V]) Print() {
	_ = tree.Fprint(os.Stdout)
}

// Fprint - preorder dump of the keys to a writer
func (tree *Tree[V]) Fprint(w io.Writer) error {
	return printNodes(w, tree.Root(), 0)
}

func printNodes[V any](w io.Writer, p *Node[V], indent int) error {
	if nil == p {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s%4d\n", strings.Repeat(" ", indent), p.key); nil != err {
		return err
	}
	if err := printNodes(w, p.left, indent+indentStep); nil != err {
		return err
	}
	return printNodes(w, p.right, indent+indentStep)
}

// to control the graph routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Graph - display an ASCII graphic representation of the tree
//
// the right branch is drawn above a node and the left branch below
// returns the maximum depth of the tree
func (tree *Tree[V]) Graph(w io.Writer, printData bool) int {
	return graph(w, tree.Root(), "", root, printData)
}

// internal graph - returns the maximum depth of the tree
func graph[V any](w io.Writer, tree *Node[V], prefix string, br branch, printData bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = graph(w, tree.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printData {
		fmt.Fprintf(w, "%d → %v h:%d %+2d/[%d]\n", tree.key, tree.value, tree.height, balance(tree), tree.size)
	} else {
		fmt.Fprintf(w, "%d\n", tree.key)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = graph(w, tree.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	} else {
		return 1 + ld
	}
}
