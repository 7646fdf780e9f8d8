// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mine

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/minerd/fault"
)

// scheduling policies for waiters on the hand-off slot
const (
	SchedulingBlock = "block" // park on a condition variable
	SchedulingSpin  = "spin"  // release the lock, yield, retry
)

// taskSlot - single-slot hand-off between the producer and the workers
//
// one mutex guards all fields; two condition variables share it:
// staging releases the producer when the slot drains, ready releases
// a worker when a batch is staged.  batch == nil means EMPTY.
//
// the stopped flag is write-once: the transition happens exactly once,
// under the lock, and both condition variables are broadcast so every
// waiter re-checks and backs out.  reads take the atomic fast path so
// workers can poll mid-batch without contending for the lock.
type taskSlot struct {
	sync.Mutex
	staging *sync.Cond // producer side: wait while FULL
	ready   *sync.Cond // worker side: wait while EMPTY
	batch   *batch     // nil ⇔ EMPTY
	stopped uint32     // 0 running, 1 terminated
	spin    bool
}

// newTaskSlot - create an empty slot with the given scheduling policy
func newTaskSlot(policy string) (*taskSlot, error) {
	slot := &taskSlot{}
	slot.staging = sync.NewCond(slot)
	slot.ready = sync.NewCond(slot)

	switch policy {
	case "", SchedulingBlock:
		// blocking waits are the default
	case SchedulingSpin:
		slot.spin = true
	default:
		return nil, fault.ErrInvalidSchedulingPolicy
	}
	return slot, nil
}

// put - stage a batch, blocking while the slot is full
//
// returns false, leaving the slot untouched, if the search terminated
// while waiting
func (slot *taskSlot) put(b *batch) bool {
	slot.Lock()
	for nil != slot.batch && !slot.isStopped() {
		slot.wait(slot.staging)
	}
	if slot.isStopped() {
		slot.Unlock()
		return false
	}
	slot.batch = b
	slot.ready.Signal()
	slot.Unlock()
	return true
}

// take - claim the staged batch, blocking while the slot is empty
//
// on termination returns nil, false after signalling the worker side
// again so the wake-up propagates through any remaining waiters
func (slot *taskSlot) take() (*batch, bool) {
	slot.Lock()
	for nil == slot.batch && !slot.isStopped() {
		slot.wait(slot.ready)
	}
	if slot.isStopped() {
		slot.ready.Signal()
		slot.Unlock()
		return nil, false
	}
	b := slot.batch
	slot.batch = nil
	slot.staging.Signal()
	slot.Unlock()
	return b, true
}

// terminate - write-once stop transition
//
// returns true only for the caller that performed the transition; all
// later calls are no-ops.  both condition variables are broadcast so
// the producer and every idle worker wake and back out.
func (slot *taskSlot) terminate() bool {
	slot.Lock()
	defer slot.Unlock()

	if slot.isStopped() {
		return false
	}
	atomic.StoreUint32(&slot.stopped, 1)
	slot.staging.Broadcast()
	slot.ready.Broadcast()
	return true
}

// isStopped - lock-free read of the termination flag
func (slot *taskSlot) isStopped() bool {
	return 0 != atomic.LoadUint32(&slot.stopped)
}

// wait - park under the configured policy; the lock is held on entry
// and on return
//
// the spin policy never sleeps on the condition variable, so spinning
// waiters notice termination on their next flag check rather than by
// broadcast
func (slot *taskSlot) wait(cond *sync.Cond) {
	if slot.spin {
		slot.Unlock()
		runtime.Gosched()
		slot.Lock()
	} else {
		cond.Wait()
	}
}
