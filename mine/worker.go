// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mine

import (
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/minerd/counter"
	"github.com/bitmark-inc/minerd/difficulty"
	"github.com/bitmark-inc/minerd/digest"
)

// worker - claims batches from the slot and tests each nonce
//
// processed counts only fully scanned batches: a worker that commits
// a solution, or backs out of a batch because another worker already
// did, abandons the partial batch uncounted.  solution fields are
// written only by the worker that wins the terminate transition and
// read only after the background join.
type worker struct {
	id        uint32
	slot      *taskSlot
	message   []byte
	mask      difficulty.Difficulty
	hasher    digest.Hasher
	processed counter.Counter
	solved    bool
	nonce     uint64
	digest    digest.Digest
	log       *logger.L
}

// Run - scan batches until termination
//
// the shutdown channel is unused: termination is carried by the slot
// flag so idle and mid-batch workers stop the same way
func (w *worker) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	log.Info("starting…")

	// block data with room for a decimal nonce appended
	buffer := make([]byte, 0, len(w.message)+20)

loop:
	for {
		b, ok := w.slot.take()
		if !ok {
			break loop
		}

		for _, nonce := range b.nonces {
			if w.slot.isStopped() {
				break loop
			}

			buffer = append(buffer[:0], w.message...)
			buffer = strconv.AppendUint(buffer, nonce, 10)

			d := w.hasher.Digest(buffer)
			if w.mask.MeetsMask(d.Front32()) {
				if w.slot.terminate() {
					w.solved = true
					w.nonce = nonce
					w.digest = d
					log.Infof("solution: nonce: %d  digest: %s", nonce, d)
				}
				break loop
			}
		}

		w.processed.Add(uint64(b.size()))
	}

	log.Info("finished")
}
