// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty_test

import (
	"math/bits"
	"strings"
	"testing"

	"github.com/bitmark-inc/minerd/difficulty"
	"github.com/bitmark-inc/minerd/fault"
)

// every level must yield exactly level leading zero bits
// followed by all one bits
func TestMaskShape(t *testing.T) {

	for level := difficulty.MinimumLevel; level <= difficulty.MaximumLevel; level += 1 {

		d, err := difficulty.New(level)
		if nil != err {
			t.Fatalf("level: %d  unexpected error: %v", level, err)
		}

		mask := d.Mask()

		if 32 != level {
			leading := bits.LeadingZeros32(mask)
			if level != leading {
				t.Errorf("level: %d  leading zero bits: %d  mask: %08x", level, leading, mask)
			}
			ones := bits.OnesCount32(mask)
			if 32-level != ones {
				t.Errorf("level: %d  one bits: %d  mask: %08x", level, ones, mask)
			}
			// the one bits must be contiguous at the bottom
			if 0 != mask&(mask+1) {
				t.Errorf("level: %d  mask not contiguous: %08x", level, mask)
			}
		} else if 0 != mask {
			t.Errorf("level: 32  mask is not zero: %08x", mask)
		}
	}
}

// specific known masks
func TestMaskValues(t *testing.T) {

	testCases := []struct {
		level    int
		expected uint32
	}{
		{0, 0xffffffff},
		{1, 0x7fffffff},
		{8, 0x00ffffff},
		{24, 0x000000ff},
		{31, 0x00000001},
		{32, 0x00000000},
	}

	for i, testCase := range testCases {
		d, err := difficulty.New(testCase.level)
		if nil != err {
			t.Fatalf("%d: unexpected error: %v", i, err)
		}
		if testCase.expected != d.Mask() {
			t.Errorf("%d: level: %d  mask: %08x  expected: %08x",
				i, testCase.level, d.Mask(), testCase.expected)
		}
	}
}

// out of range levels must be rejected
func TestInvalidLevels(t *testing.T) {

	for _, level := range []int{-1, -32, 33, 100} {
		_, err := difficulty.New(level)
		if fault.ErrInvalidDifficultyLevel != err {
			t.Errorf("level: %d  error: %v  expected: %v",
				level, err, fault.ErrInvalidDifficultyLevel)
		}
	}
}

// the mask test must accept exactly the values whose top bits are zero
func TestMeetsMask(t *testing.T) {

	d, err := difficulty.New(24)
	if nil != err {
		t.Fatalf("unexpected error: %v", err)
	}

	accepted := []uint32{0x00000000, 0x00000001, 0x000000ff}
	rejected := []uint32{0x00000100, 0x80000000, 0xffffffff, 0x00010000}

	for _, front := range accepted {
		if !d.MeetsMask(front) {
			t.Errorf("front: %08x rejected by level 24 mask", front)
		}
	}
	for _, front := range rejected {
		if d.MeetsMask(front) {
			t.Errorf("front: %08x accepted by level 24 mask", front)
		}
	}

	// level 0 accepts everything
	d0, _ := difficulty.New(0)
	for _, front := range append(accepted, rejected...) {
		if !d0.MeetsMask(front) {
			t.Errorf("front: %08x rejected by level 0 mask", front)
		}
	}

	// level 32 accepts only zero
	d32, _ := difficulty.New(32)
	if !d32.MeetsMask(0) {
		t.Error("zero rejected by level 32 mask")
	}
	if d32.MeetsMask(1) {
		t.Error("one accepted by level 32 mask")
	}
}

// console rendering of the mask
func TestBinaryString(t *testing.T) {

	d, err := difficulty.New(24)
	if nil != err {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := strings.Repeat("0", 24) + strings.Repeat("1", 8)
	if expected != d.BinaryString() {
		t.Errorf("binary: %q  expected: %q", d.BinaryString(), expected)
	}

	if "000000ff" != d.String() {
		t.Errorf("hex: %q  expected: %q", d.String(), "000000ff")
	}
}
