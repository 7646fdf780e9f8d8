// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mine

import (
	"math"

	"github.com/bitmark-inc/logger"
)

// DefaultProgressInterval - nonces generated between progress
// callbacks when the configuration does not override it
const DefaultProgressInterval = 1000000

// producer - stages batches of consecutive nonces into the slot
//
// the cursor only ever moves forward; a nonce is never staged twice.
// cursor and exhausted are written on the producer goroutine and read
// by Run only after the background join, so no locking is needed.
type producer struct {
	slot             *taskSlot
	batchSize        int
	progressInterval uint64
	progress         func(generated uint64)
	cursor           uint64
	exhausted        bool
	log              *logger.L
}

// Run - generate batches until the search terminates or the nonce
// space runs out
func (p *producer) Run(args interface{}, shutdown <-chan struct{}) {
	log := p.log
	log.Info("starting…")

	size := uint64(p.batchSize)

loop:
	for {
		if p.cursor > math.MaxUint64-size {
			// running off the end of uint64 stops the search
			// rather than re-issuing nonces
			log.Warn("nonce space exhausted")
			p.exhausted = true
			break loop
		}

		b := newBatch(p.cursor, p.batchSize)
		previous := p.cursor
		p.cursor += size

		if nil != p.progress && previous/p.progressInterval != p.cursor/p.progressInterval {
			p.progress(p.cursor)
		}

		if !p.slot.put(b) {
			break loop
		}
	}

	// release any workers still parked on an empty slot; a no-op when
	// a worker already terminated the search
	p.slot.terminate()

	log.Info("finished")
}
