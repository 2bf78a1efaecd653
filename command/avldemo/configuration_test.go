// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

func TestDefaultConfiguration(t *testing.T) {
	options, err := getConfiguration("")
	if !assert.NoError(t, err, "defaults") {
		return
	}

	wd, _ := os.Getwd()
	assert.Equal(t, 0, options.First, "first")
	assert.Equal(t, 15, options.Count, "count")
	assert.True(t, options.PrintEach, "print each")
	assert.False(t, options.Graph, "graph")
	assert.Equal(t, defaultSeparator, options.Separator, "separator")
	assert.Empty(t, options.Delete, "delete")
	assert.Equal(t, filepath.Join(wd, "log"), options.Logging.Directory, "log directory")
	assert.Equal(t, "avldemo.log", options.Logging.File, "log file")
	assert.Equal(t, "critical", options.Logging.Levels[logger.DefaultTag], "default level")
}

func TestFileConfiguration(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "avldemo.conf")
	err := os.WriteFile(fileName, []byte(`
return {
    first = 100,
    count = 7,
    print_each = false,
    delete = { 101, 103 },
    logging = {
        directory = "logs",
        levels = { main = "trace" },
    },
}
`), 0600)
	if !assert.NoError(t, err, "write") {
		return
	}

	options, err := getConfiguration(fileName)
	if !assert.NoError(t, err, "parse") {
		return
	}
	assert.Equal(t, 100, options.First, "first")
	assert.Equal(t, 7, options.Count, "count")
	assert.False(t, options.PrintEach, "print each")
	assert.Equal(t, []int{101, 103}, options.Delete, "delete")
	assert.Equal(t, filepath.Join(dir, "logs"), options.Logging.Directory, "log directory relative to file")
	assert.Equal(t, "trace", options.Logging.Levels["main"], "main level")
	assert.Equal(t, "critical", options.Logging.Levels[logger.DefaultTag], "default level kept")

	// defaults are not altered by a file
	options, err = getConfiguration("")
	assert.NoError(t, err, "defaults")
	assert.Equal(t, "info", options.Logging.Levels["main"], "main level")
}

func TestBadConfiguration(t *testing.T) {
	dir := t.TempDir()

	_, err := getConfiguration(filepath.Join(dir, "missing.conf"))
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")

	fileName := filepath.Join(dir, "negative.conf")
	_ = os.WriteFile(fileName, []byte(`return { count = -1 }`), 0600)
	_, err = getConfiguration(fileName)
	assert.True(t, errors.Is(err, fault.ErrInvalidCount), "negative count: %v", err)

	fileName = filepath.Join(dir, "path.conf")
	_ = os.WriteFile(fileName, []byte(`return { logging = { file = "a/b.log" } }`), 0600)
	_, err = getConfiguration(fileName)
	assert.Error(t, err, "log file with directory")
}

func TestApplyOptions(t *testing.T) {
	options, err := getConfiguration("")
	if !assert.NoError(t, err, "defaults") {
		return
	}

	err = applyOptions(options, map[string][]string{
		"count":   {"3", "9"},
		"first":   {"-4"},
		"quiet":   {""},
		"graph":   {""},
		"verbose": {""},
	})
	assert.NoError(t, err, "apply")
	assert.Equal(t, 9, options.Count, "last count wins")
	assert.Equal(t, -4, options.First, "first")
	assert.False(t, options.PrintEach, "quiet")
	assert.True(t, options.Graph, "graph")
	assert.True(t, options.Logging.Console, "console")
	assert.Equal(t, "debug", options.Logging.Levels["main"], "verbose level")

	err = applyOptions(options, map[string][]string{"count": {"many"}})
	assert.True(t, errors.Is(err, fault.ErrInvalidCount), "bad count: %v", err)

	err = applyOptions(options, map[string][]string{"count": {"-2"}})
	assert.True(t, errors.Is(err, fault.ErrInvalidCount), "negative count: %v", err)

	err = applyOptions(options, map[string][]string{"first": {"x"}})
	assert.True(t, errors.Is(err, fault.ErrInvalidKey), "bad first: %v", err)
}

func TestParseKeys(t *testing.T) {
	keys, err := parseKeys([]string{"1", "-7", "300"})
	assert.NoError(t, err, "parse")
	assert.Equal(t, []int{1, -7, 300}, keys, "keys")

	keys, err = parseKeys(nil)
	assert.NoError(t, err, "empty")
	assert.Empty(t, keys, "no keys")

	_, err = parseKeys([]string{"1", "two"})
	assert.True(t, errors.Is(err, fault.ErrInvalidKey), "bad key: %v", err)
	assert.True(t, fault.IsErrInvalid(err), "class")
}
