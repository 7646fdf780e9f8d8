// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mine

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// interval between interim hash rate samples
const speedSampleInterval = 10 * time.Second

// speedMonitor - periodic log of the aggregate hash rate
//
// reads the worker counters through their atomic accessors, so a
// sample taken mid-batch is merely a little stale, never torn
type speedMonitor struct {
	workers []*worker
	log     *logger.L
}

// Run - sample until shut down
func (m *speedMonitor) Run(args interface{}, shutdown <-chan struct{}) {
	log := m.log
	log.Info("starting…")

	lastCount := uint64(0)
	lastTime := time.Now()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(speedSampleInterval):
			total := uint64(0)
			for _, w := range m.workers {
				total += w.processed.Uint64()
			}
			now := time.Now()
			seconds := now.Sub(lastTime).Seconds()
			if seconds > 0 {
				log.Infof("interim rate: %.2f hashes/sec", float64(total-lastCount)/seconds)
			}
			lastCount = total
			lastTime = now
		}
	}

	log.Info("finished")
}
