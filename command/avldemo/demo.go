// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
)

// value stored for each key
func itemValue(key int) string {
	return fmt.Sprintf("item:%d", key)
}

// populate a tree with sequential keys, printing it after each
// insertion, then apply the configured deletions and report the
// lookups
func run(w io.Writer, options *Configuration, lookups []int, log *logger.L) error {

	fmt.Fprintf(w, "AVL Driver\n")

	tree := avl.New[string]()
	defer tree.Free()

	show := func() error {
		if !options.PrintEach {
			return nil
		}
		if options.Graph {
			tree.Graph(w, false)
		} else if err := tree.Fprint(w); nil != err {
			return err
		}
		_, err := fmt.Fprintf(w, "%s\n", options.Separator)
		return err
	}

	for i := 0; i < options.Count; i += 1 {
		key := options.First + i
		tree.Insert(key, itemValue(key))
		log.Debugf("insert: %d  count: %d  height: %d", key, tree.Count(), tree.Height())

		if err := tree.Check(); nil != err {
			log.Criticalf("after insert: %d  error: %s", key, err)
			return err
		}
		if err := show(); nil != err {
			return err
		}
	}
	log.Infof("inserted: %d  height: %d", tree.Count(), tree.Height())

	for _, key := range options.Delete {
		value, ok := tree.Delete(key)
		if !ok {
			log.Warnf("delete: %d  not found", key)
			fmt.Fprintf(w, "delete: %d: not found\n", key)
			continue
		}
		log.Debugf("delete: %d  value: %q", key, value)
		fmt.Fprintf(w, "delete: %d: %s\n", key, value)

		if err := tree.Check(); nil != err {
			log.Criticalf("after delete: %d  error: %s", key, err)
			return err
		}
		if err := show(); nil != err {
			return err
		}
	}

	for _, key := range lookups {
		if value, ok := tree.Lookup(key); ok {
			fmt.Fprintf(w, "%d: %s\n", key, value)
		} else {
			fmt.Fprintf(w, "%d: not found\n", key)
		}
	}

	stats := tree.Stats()
	log.Infof("nodes: %d  allocated: %d  pooled: %d", stats.Nodes, stats.Allocated, stats.Pooled)

	return nil
}
