// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/minerd/background"
)

type bg1 struct {
	count int
}

const (
	initialCount1 = 246
	finalCount1   = 987654321
	initialCount2 = 777
	finalCount2   = 897645312
)

func TestBackgroundStop(t *testing.T) {

	proc1 := &bg1{
		count: initialCount1,
	}
	proc2 := &bg1{
		count: initialCount2,
	}

	// list of background processes to start
	processes := background.Processes{
		proc1,
		proc2,
	}

	p := background.Start(processes, t)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	if finalCount1 != proc1.count {
		t.Fatalf("stop failed: final value expected: %d  actual: %d", finalCount1, proc1.count)
	}
	if finalCount2 != proc2.count {
		t.Fatalf("stop failed: final value expected: %d  actual: %d", finalCount2, proc2.count)
	}
}

func (state *bg1) Run(args interface{}, shutdown <-chan struct{}) {

	t := args.(*testing.T)

	n := 0
	if initialCount1 == state.count {
		n = 1
	} else if initialCount2 == state.count {
		n = 2
	} else {
		t.Errorf("initialisation failed: unexpected initial count: %d", state.count)
	}

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		state.count += 9
		time.Sleep(time.Millisecond)
	}

	// mark the stop operation
	switch n {
	case 1:
		state.count = finalCount1
	case 2:
		state.count = finalCount2
	default:
		t.Errorf("unexpected n: %d", n)
	}
}

// a process that finishes of its own accord, ignoring shutdown
type bg2 struct {
	done bool
}

func (state *bg2) Run(args interface{}, shutdown <-chan struct{}) {
	time.Sleep(10 * time.Millisecond)
	state.done = true
}

func TestBackgroundWait(t *testing.T) {

	proc1 := &bg2{}
	proc2 := &bg2{}

	processes := background.Processes{
		proc1,
		proc2,
	}

	p := background.Start(processes, nil)
	p.Wait()

	if !proc1.done || !proc2.done {
		t.Fatalf("wait returned before processes finished: %v %v", proc1.done, proc2.done)
	}
}
