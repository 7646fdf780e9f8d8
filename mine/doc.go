// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mine - parallel nonce search
//
// a single producer generates fixed size batches of consecutive
// nonce values and stages them, one at a time, into a hand-off slot.
// a pool of workers claims staged batches, hashes the block data with
// each nonce appended, and tests the leading 32 bits of the digest
// against a difficulty mask.  the first worker to commit a solution
// terminates the search and wakes everything that is still waiting.
package mine
