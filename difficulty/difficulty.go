// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package difficulty - the search target expressed as a bit mask
//
// A difficulty level N in [0,32] maps to an unsigned 32 bit mask with
// N leading zero bits and 32-N trailing one bits.  The leading 32 bits
// of a digest meet the target iff all bits outside the mask are zero,
// i.e. the top N bits of the digest are zero.
package difficulty

import (
	"fmt"

	"github.com/bitmark-inc/minerd/fault"
)

// limits for the difficulty level
const (
	MinimumLevel = 0
	MaximumLevel = 32
)

// Difficulty - level and its derived mask
type Difficulty struct {
	level int
	mask  uint32
}

// New - create a difficulty from a level in [MinimumLevel, MaximumLevel]
func New(level int) (Difficulty, error) {
	if level < MinimumLevel || level > MaximumLevel {
		return Difficulty{}, fault.ErrInvalidDifficultyLevel
	}

	// note: a variable shift of 32 on a uint32 yields zero, so
	// level 0 produces 0xffffffff and level 32 produces 0x00000000
	mask := (uint32(1) << uint(MaximumLevel-level)) - 1

	return Difficulty{
		level: level,
		mask:  mask,
	}, nil
}

// Level - the number of leading zero bits required of a digest
func (difficulty Difficulty) Level() int {
	return difficulty.level
}

// Mask - the difficulty as a 32 bit mask value
func (difficulty Difficulty) Mask() uint32 {
	return difficulty.mask
}

// MeetsMask - check the leading 32 bits of a digest against the mask
//
// the test is: front AND mask == front, i.e. no bit outside the
// mask's one-bits may be set
func (difficulty Difficulty) MeetsMask(front uint32) bool {
	return front&difficulty.mask == front
}

// String - the mask as big endian hex for use by the fmt package (for %s)
func (difficulty Difficulty) String() string {
	return fmt.Sprintf("%08x", difficulty.mask)
}

// GoString - level and mask for use by the fmt package (for %#v)
func (difficulty Difficulty) GoString() string {
	return fmt.Sprintf("<difficulty:%d:%08x>", difficulty.level, difficulty.mask)
}

// BinaryString - the mask as 32 binary digits, most significant first
//
// this is the form printed on the console at startup
func (difficulty Difficulty) BinaryString() string {
	buffer := make([]byte, MaximumLevel)
	for i := 0; i < MaximumLevel; i += 1 {
		if 0 == difficulty.mask&(uint32(1)<<uint(31-i)) {
			buffer[i] = '0'
		} else {
			buffer[i] = '1'
		}
	}
	return string(buffer)
}
