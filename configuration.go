// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/minerd/configuration"
	"github.com/bitmark-inc/minerd/digest"
	"github.com/bitmark-inc/minerd/fault"
	"github.com/bitmark-inc/minerd/mine"
)

// logging defaults
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "minerd.log"
	defaultLogCount     = 10
	defaultLogSize      = 1048576
)

// Configuration - the tunables read from the optional Lua
// configuration file
type Configuration struct {
	BatchSize        int                  `gluamapper:"batch_size" json:"batch_size"`
	ProgressInterval int                  `gluamapper:"progress_interval" json:"progress_interval"`
	Scheduling       string               `gluamapper:"scheduling" json:"scheduling"`
	Algorithm        string               `gluamapper:"algorithm" json:"algorithm"`
	Logging          logger.Configuration `gluamapper:"logging" json:"logging"`
}

// getConfiguration - defaults overlaid with the configuration file,
// if one was given
func getConfiguration(fileName string) (*Configuration, error) {

	options := &Configuration{
		BatchSize:        mine.DefaultBatchSize,
		ProgressInterval: mine.DefaultProgressInterval,
		Scheduling:       mine.SchedulingBlock,
		Algorithm:        digest.SHA1,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "error",
			},
		},
	}

	if "" != fileName {
		fileName, err := filepath.Abs(filepath.Clean(fileName))
		if nil != err {
			return nil, err
		}

		if err := configuration.ParseConfigurationFile(fileName, options); nil != err {
			return nil, err
		}
	}

	if options.ProgressInterval < 0 {
		return nil, fault.ErrInvalidProgressInterval
	}

	// the logger cannot create its own directory
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}
