// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mine

// DefaultBatchSize - nonces per batch when the configuration does
// not override it
const DefaultBatchSize = 120

// batch - a run of consecutive nonce values handed from the producer
// to one worker
//
// a batch is written once by the producer and read once by the worker
// that claims it; an abandoned batch is simply dropped for the
// collector to reclaim
type batch struct {
	nonces []uint64
}

// newBatch - create a batch covering [start .. start+size-1]
func newBatch(start uint64, size int) *batch {
	nonces := make([]uint64, size)
	for i := range nonces {
		nonces[i] = start + uint64(i)
	}
	return &batch{nonces: nonces}
}

// size - number of nonces covered by the batch
func (b *batch) size() int {
	return len(b.nonces)
}
