// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Minerd - command line proof-of-work nonce search
//
// usage:
//
//	minerd [options] threads difficulty 'block data'
//
// a producer goroutine generates batches of consecutive nonces and a
// pool of worker goroutines appends each nonce, in decimal, to the
// block data, hashes the result and tests the leading 32 bits of the
// digest against the difficulty mask.  the first worker to find a
// satisfying nonce wins and the whole search shuts down.
//
// difficulty is a level from 0 (every digest acceptable) to 32 (only
// an all zero leading word acceptable).  an invalid thread count
// falls back to a default with a warning; empty block data is fatal.
//
// an optional Lua configuration file tunes batch size, progress
// interval, worker scheduling, digest algorithm and logging.
package main
