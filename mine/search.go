// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/minerd/background"
	"github.com/bitmark-inc/minerd/difficulty"
	"github.com/bitmark-inc/minerd/digest"
	"github.com/bitmark-inc/minerd/fault"
)

// SearchConfig - parameters for a nonce search
//
// zero values for BatchSize, ProgressInterval, Scheduling and
// Algorithm select the defaults
type SearchConfig struct {
	Message          string                 // block data, must not be empty
	Difficulty       difficulty.Difficulty  // leading 32 bit mask to satisfy
	Workers          int                    // worker goroutines, at least 1
	BatchSize        int                    // nonces per batch
	ProgressInterval uint64                 // nonces between progress callbacks
	Scheduling       string                 // "block" or "spin"
	Algorithm        string                 // digest algorithm name
	Progress         func(generated uint64) // called on the producer goroutine
}

// WorkerResult - per-worker accounting after the search has finished
type WorkerResult struct {
	ID        uint32
	Processed uint64 // nonces from fully scanned batches
	Solved    bool
	Nonce     uint64
	Digest    digest.Digest
}

// Result - outcome of a completed search
//
// when Found is false the search was stopped or ran off the end of
// the nonce space without a solution; Exhausted distinguishes the
// latter
type Result struct {
	Found     bool
	Exhausted bool
	WinnerID  uint32
	Nonce     uint64
	Digest    digest.Digest
	Workers   []WorkerResult
	Generated uint64 // nonces staged or abandoned by the producer
	Elapsed   time.Duration
}

// Search - a single-use nonce search
//
// all shared state hangs off this struct so independent searches can
// run side by side; Run may be called once
type Search struct {
	message  []byte
	mask     difficulty.Difficulty
	slot     *taskSlot
	producer *producer
	workers  []*worker
	monitor  *speedMonitor
	started  uint32
	log      *logger.L
}

// NewSearch - validate the configuration and assemble a search
func NewSearch(cfg SearchConfig) (*Search, error) {

	if "" == cfg.Message {
		return nil, fault.ErrEmptyMessage
	}
	if cfg.Workers < 1 {
		return nil, fault.ErrInvalidThreadCount
	}

	batchSize := cfg.BatchSize
	if 0 == batchSize {
		batchSize = DefaultBatchSize
	}
	if batchSize < 1 {
		return nil, fault.ErrInvalidBatchSize
	}

	progressInterval := cfg.ProgressInterval
	if 0 == progressInterval {
		progressInterval = DefaultProgressInterval
	}

	hasher, err := digest.NewHasher(cfg.Algorithm)
	if nil != err {
		return nil, err
	}

	slot, err := newTaskSlot(cfg.Scheduling)
	if nil != err {
		return nil, err
	}

	s := &Search{
		message: []byte(cfg.Message),
		mask:    cfg.Difficulty,
		slot:    slot,
		log:     logger.New("mine"),
	}

	s.producer = &producer{
		slot:             slot,
		batchSize:        batchSize,
		progressInterval: progressInterval,
		progress:         cfg.Progress,
		log:              logger.New("producer"),
	}

	s.workers = make([]*worker, cfg.Workers)
	for i := range s.workers {
		s.workers[i] = &worker{
			id:      uint32(i),
			slot:    slot,
			message: s.message,
			mask:    cfg.Difficulty,
			hasher:  hasher,
			log:     logger.New(fmt.Sprintf("worker-%d", i)),
		}
	}

	s.monitor = &speedMonitor{
		workers: s.workers,
		log:     logger.New("speed"),
	}

	return s, nil
}

// Run - execute the search to completion and collect the result
//
// blocks until a worker commits a solution, Stop is called from
// another goroutine, or the nonce space is exhausted
func (s *Search) Run() (*Result, error) {

	if !atomic.CompareAndSwapUint32(&s.started, 0, 1) {
		return nil, fault.ErrSearchAlreadyRun
	}

	s.log.Infof("searching: workers: %d  mask: %s", len(s.workers), s.mask)

	start := time.Now()

	monitor := background.Start(background.Processes{s.monitor}, nil)

	processes := make(background.Processes, 0, 1+len(s.workers))
	processes = append(processes, s.producer)
	for _, w := range s.workers {
		processes = append(processes, w)
	}

	// the search stops itself: wait for the join rather than signalling
	background.Start(processes, nil).Wait()

	monitor.Stop()

	elapsed := time.Since(start)

	result := &Result{
		Exhausted: s.producer.exhausted,
		Workers:   make([]WorkerResult, len(s.workers)),
		Generated: s.producer.cursor,
		Elapsed:   elapsed,
	}
	for i, w := range s.workers {
		result.Workers[i] = WorkerResult{
			ID:        w.id,
			Processed: w.processed.Uint64(),
			Solved:    w.solved,
			Nonce:     w.nonce,
			Digest:    w.digest,
		}
		if w.solved {
			result.Found = true
			result.WinnerID = w.id
			result.Nonce = w.nonce
			result.Digest = w.digest
		}
	}

	if result.Found {
		s.log.Infof("finished: winner: %d  nonce: %d  elapsed: %s",
			result.WinnerID, result.Nonce, elapsed)
	} else {
		s.log.Warnf("finished: no solution  elapsed: %s", elapsed)
	}

	return result, nil
}

// Stop - terminate a running search early
//
// safe to call from any goroutine and at any time; a no-op once the
// search has already terminated
func (s *Search) Stop() {
	s.slot.terminate()
}
