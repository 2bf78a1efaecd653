// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
)

func TestRunPrintEach(t *testing.T) {
	options := &Configuration{
		First:     10,
		Count:     3,
		PrintEach: true,
		Separator: "----",
	}
	buffer := bytes.Buffer{}

	err := run(&buffer, options, []int{20, 99}, logger.New(logCategory))
	assert.NoError(t, err, "run")

	expected := strings.Join([]string{
		"AVL Driver",
		"  10",
		"----",
		"  10",
		"       11",
		"----",
		"  11",
		"       10",
		"       12",
		"----",
		"20: not found",
		"99: not found",
		"",
	}, "\n")
	assert.Equal(t, expected, buffer.String(), "output")
}

func TestRunDeleteAndLookup(t *testing.T) {
	options := &Configuration{
		First:     0,
		Count:     15,
		PrintEach: false,
		Delete:    []int{7, 100},
	}
	buffer := bytes.Buffer{}

	err := run(&buffer, options, []int{3, 7, 14}, logger.New(logCategory))
	assert.NoError(t, err, "run")

	expected := strings.Join([]string{
		"AVL Driver",
		"delete: 7: item:7",
		"delete: 100: not found",
		"3: item:3",
		"7: not found",
		"14: item:14",
		"",
	}, "\n")
	assert.Equal(t, expected, buffer.String(), "output")
}

func TestRunGraph(t *testing.T) {
	options := &Configuration{
		Count:     2,
		PrintEach: true,
		Graph:     true,
		Separator: "==",
	}
	buffer := bytes.Buffer{}

	err := run(&buffer, options, nil, logger.New(logCategory))
	assert.NoError(t, err, "run")
	assert.Equal(t, "AVL Driver\n|------+ 0\n==\n       /------+ 1\n|------+ 0\n==\n", buffer.String(), "output")
}
