// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// command descriptions for help
var commands = []struct {
	name        string
	arguments   string
	description string
}{
	{"run", "", "build from 'initial' then apply each of 'operations'"},
	{"build", "VALUE...", "build a tree from the values and show it"},
	{"stress", "", "randomised add/remove trials using the 'stress' table"},
	{"help", "", "this message"},
}

// processCommand - dispatch the first argument
func processCommand(log *logger.L, out io.Writer, arguments []string, conf *Configuration, verbose bool, stop <-chan struct{}) error {

	command := arguments[0]
	arguments = arguments[1:]

	log.Infof("command: %s  arguments: %q", command, arguments)

	switch command {

	case "run":
		switch conf.Keys {
		case keysInteger:
			return runScript(log, out, conf, toInteger, verbose)
		case keysString:
			return runScript(log, out, conf, toString, verbose)
		}
		return fault.ErrInvalidKeyType

	case "build":
		items := argumentItems(arguments)
		switch conf.Keys {
		case keysInteger:
			return buildTree(log, out, items, toInteger, verbose)
		case keysString:
			return buildTree(log, out, items, toString, verbose)
		}
		return fault.ErrInvalidKeyType

	case "stress":
		return runStress(log, out, conf.Stress, stop)

	case "help":
		printHelp(out)
		return nil

	default:
		return fault.ErrNotFoundCommand
	}
}

// list the commands
func printHelp(out io.Writer) {
	fmt.Fprintf(out, "commands:\n")
	for _, c := range commands {
		fmt.Fprintf(out, "  %-8s %-10s %s\n", c.name, c.arguments, c.description)
	}
}
