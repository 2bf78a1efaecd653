// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories are relative to the configuration file,
// or the current directory if there is none)
const (
	defaultFirst     = 0
	defaultCount     = 15
	defaultSeparator = "======================================"

	defaultLogDirectory = "log"
	defaultLogFile      = "avldemo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - all items that can be set from the Lua file
type Configuration struct {
	First     int                  `gluamapper:"first" json:"first"`
	Count     int                  `gluamapper:"count" json:"count"`
	PrintEach bool                 `gluamapper:"print_each" json:"print_each"`
	Graph     bool                 `gluamapper:"graph" json:"graph"`
	Separator string               `gluamapper:"separator" json:"separator"`
	Delete    []int                `gluamapper:"delete" json:"delete"`
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// a blank file name gives the defaults
func getConfiguration(configurationFileName string) (*Configuration, error) {

	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	options := &Configuration{
		First:     defaultFirst,
		Count:     defaultCount,
		PrintEach: true,
		Separator: defaultSeparator,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	dataDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}

	if "" != configurationFileName {
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the main directory
		dataDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
			return nil, err
		}
	}

	if options.Count < 0 {
		return nil, fmt.Errorf("%w: %d", fault.ErrInvalidCount, options.Count)
	}

	if !util.IsPlainName(options.Logging.File) {
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	options.Logging.Directory = util.EnsureAbsolute(dataDirectory, options.Logging.Directory)

	return options, nil
}

// command-line options override the file
func applyOptions(options *Configuration, flags map[string][]string) error {

	if n := flags["count"]; len(n) > 0 {
		count, err := strconv.Atoi(n[len(n)-1])
		if nil != err || count < 0 {
			return fmt.Errorf("%w: %q", fault.ErrInvalidCount, n[len(n)-1])
		}
		options.Count = count
	}

	if n := flags["first"]; len(n) > 0 {
		first, err := strconv.Atoi(n[len(n)-1])
		if nil != err {
			return fmt.Errorf("%w: %q", fault.ErrInvalidKey, n[len(n)-1])
		}
		options.First = first
	}

	if len(flags["quiet"]) > 0 {
		options.PrintEach = false
	}
	if len(flags["graph"]) > 0 {
		options.Graph = true
	}
	if len(flags["verbose"]) > 0 {
		levels := make(map[string]string, len(options.Logging.Levels)+1)
		for k, v := range options.Logging.Levels {
			levels[k] = v
		}
		levels["main"] = "debug"
		options.Logging.Levels = levels
		options.Logging.Console = true
	}
	return nil
}

// convert the remaining arguments to lookup keys
func parseKeys(arguments []string) ([]int, error) {
	keys := make([]int, 0, len(arguments))
	for _, s := range arguments {
		key, err := strconv.Atoi(s)
		if nil != err {
			return nil, fmt.Errorf("%w: %q", fault.ErrInvalidKey, s)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
