// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/bitmark-inc/minerd/difficulty"
)

// threads used when the command line value is unusable
const defaultThreadCount = 5

// parseThreadCount - decode the thread count argument
//
// an unparseable or non-positive value is not fatal: the default
// count is substituted and usedDefault reports the fallback so the
// caller can warn
func parseThreadCount(argument string) (threads int, usedDefault bool) {
	threads, err := strconv.Atoi(argument)
	if nil != err || threads < 1 {
		return defaultThreadCount, true
	}
	return threads, false
}

// parseDifficulty - decode and range check the difficulty argument
func parseDifficulty(argument string) (difficulty.Difficulty, error) {
	level, err := strconv.Atoi(argument)
	if nil != err {
		return difficulty.Difficulty{}, err
	}
	return difficulty.New(level)
}
