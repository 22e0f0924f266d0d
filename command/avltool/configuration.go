// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultKeys = keysInteger

	defaultTrials      = 100
	defaultSize        = 900
	defaultLimit       = 20000
	defaultDeleteEvery = 2

	defaultLogDirectory = "log"
	defaultLogFile      = "avltool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// key types
const (
	keysInteger = "integer"
	keysString  = "string"
)

// fresh map each time as the parsed levels are merged into it
func defaultLogLevels() map[string]string {
	return map[string]string{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
}

// Operation - one step of a script
type Operation struct {
	Action string      `gluamapper:"action" json:"action"`
	Value  interface{} `gluamapper:"value" json:"value"`
}

// StressType - randomised build and delete trials
type StressType struct {
	Trials      int   `gluamapper:"trials" json:"trials"`
	Size        int   `gluamapper:"size" json:"size"`
	Limit       int   `gluamapper:"limit" json:"limit"`
	Workers     int   `gluamapper:"workers" json:"workers"`
	DeleteEvery int   `gluamapper:"delete_every" json:"delete_every"`
	Seed        int64 `gluamapper:"seed" json:"seed"`
}

// Configuration - the top level table returned by the Lua file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Keys          string               `gluamapper:"keys" json:"keys"`
	Initial       []interface{}        `gluamapper:"initial" json:"initial"`
	Operations    []Operation          `gluamapper:"operations" json:"operations"`
	Stress        StressType           `gluamapper:"stress" json:"stress"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		Keys:          defaultKeys,

		Stress: StressType{
			Trials:      defaultTrials,
			Size:        defaultSize,
			Limit:       defaultLimit,
			Workers:     0,
			DeleteEvery: defaultDeleteEvery,
			Seed:        0,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Keys = strings.ToLower(options.Keys)
	switch options.Keys {
	case keysInteger, keysString:
	default:
		return nil, fault.ErrInvalidKeyType
	}

	if err := options.Stress.validate(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrNotADirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if !util.IsDirectory(options.DataDirectory) {
		return nil, fault.ErrNotADirectory
	}

	// log file must be a simple name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fault.ErrNotAPlainFileName
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// check stress limits, zero workers means one per CPU
func (s *StressType) validate() error {
	if s.Trials < 1 || s.Size < 1 || s.DeleteEvery < 1 || s.Limit < 2 {
		return fault.ErrInvalidStressParameter
	}
	if s.Workers <= 0 {
		s.Workers = runtime.NumCPU()
	}
	if s.Workers > s.Trials {
		s.Workers = s.Trials
	}
	return nil
}
