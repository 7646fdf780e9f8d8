// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/minerd/fault"
)

// test that errors can be compared by identity
func TestComparison(t *testing.T) {

	e1 := error(fault.ErrEmptyMessage)
	if e1 != fault.ErrEmptyMessage {
		t.Errorf("error mismatch: %v", e1)
	}
	if e1 == error(fault.ErrInvalidDifficultyLevel) {
		t.Errorf("unexpected error match: %v", e1)
	}
}

// test the error classification predicates
func TestClasses(t *testing.T) {

	if !fault.IsErrInvalid(fault.ErrEmptyMessage) {
		t.Error("empty message is not classed as invalid")
	}
	if !fault.IsErrExists(fault.ErrAlreadyInitialised) {
		t.Error("already initialised is not classed as exists")
	}
	if !fault.IsErrNotFound(fault.ErrNotInitialised) {
		t.Error("not initialised is not classed as not found")
	}
	if !fault.IsErrProcess(fault.ErrNonceSpaceExhausted) {
		t.Error("nonce space exhausted is not classed as process")
	}
	if fault.IsErrProcess(fault.ErrEmptyMessage) {
		t.Error("empty message is wrongly classed as process")
	}
}
