// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/minerd/fault"
	"github.com/bitmark-inc/minerd/mine"
	"github.com/bitmark-inc/minerd/reporter"
)

// limits on console progress markers so a fast search cannot flood
// the terminal
const (
	progressMarkRate  = rate.Limit(20) // marks per second
	progressMarkBurst = 20
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] threads difficulty 'block data'", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: at most one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// the configuration file is optional; defaults apply without one
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault initialise failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// ------------------
	// start of real main
	// ------------------

	if 3 != len(arguments) {
		exitwithstatus.Message("usage: %s [options] threads difficulty 'block data'", program)
	}

	threads, usedDefault := parseThreadCount(arguments[0])
	if usedDefault {
		fmt.Printf("ERROR: Invalid thread count, using %d threads instead.\n", defaultThreadCount)
		log.Warnf("invalid thread count: %q  using default: %d", arguments[0], defaultThreadCount)
	}

	mask, err := parseDifficulty(arguments[1])
	if nil != err {
		fault.Criticalf("invalid difficulty: %q  error: %s", arguments[1], err)
		exitwithstatus.Message("%s: invalid difficulty: %q  error: %s", program, arguments[1], err)
	}

	message := arguments[2]
	if "" == message {
		fault.Criticalf("empty block data")
		exitwithstatus.Message("%s: error: %s", program, fault.ErrEmptyMessage)
	}

	quiet := len(options["quiet"]) > 0
	verbose := len(options["verbose"]) > 0

	if verbose {
		fmt.Printf("version: %s\n", version)
		fmt.Printf("batch size: %d\n", masterConfiguration.BatchSize)
		fmt.Printf("progress interval: %d\n", masterConfiguration.ProgressInterval)
		fmt.Printf("scheduling: %s\n", masterConfiguration.Scheduling)
		fmt.Printf("algorithm: %s\n", masterConfiguration.Algorithm)
	}

	if !quiet {
		fmt.Printf("\nDifficulty Mask: %s\n", mask.BinaryString())
		fmt.Printf("Number of threads: %d\n", threads)
	}

	// progress marks are rate limited; dropped marks only thin the
	// display, the search itself is never throttled
	limiter := rate.NewLimiter(progressMarkRate, progressMarkBurst)
	progress := func(generated uint64) {
		if !quiet && limiter.Allow() {
			fmt.Print(".")
		}
	}

	if verbose {
		progress = func(generated uint64) {
			fmt.Printf("[%d nonces generated]\n", generated)
		}
	}

	search, err := mine.NewSearch(mine.SearchConfig{
		Message:          message,
		Difficulty:       mask,
		Workers:          threads,
		BatchSize:        masterConfiguration.BatchSize,
		ProgressInterval: uint64(masterConfiguration.ProgressInterval),
		Scheduling:       masterConfiguration.Scheduling,
		Algorithm:        masterConfiguration.Algorithm,
		Progress:         progress,
	})
	if nil != err {
		fault.Criticalf("search setup failed with error: %s", err)
		exitwithstatus.Message("%s: search setup failed with error: %s", program, err)
	}

	// turn Signals into an early stop
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-ch
		log.Infof("received signal: %v", sig)
		search.Stop()
	}()

	result, err := search.Run()
	if nil != err {
		fault.Criticalf("search failed with error: %s", err)
		exitwithstatus.Message("%s: search failed with error: %s", program, err)
	}
	signal.Stop(ch)

	if !quiet {
		fmt.Printf("\n\n")
	}

	summary := reporter.Summarise(result)
	for _, line := range summary.Lines() {
		fmt.Println(line)
	}

	if !result.Found {
		if result.Exhausted {
			fault.Criticalf("%s", fault.ErrNonceSpaceExhausted)
			exitwithstatus.Message("%s: error: %s", program, fault.ErrNonceSpaceExhausted)
		}
		log.Critical("no solution found")
		exitwithstatus.Exit(1)
	}
}
