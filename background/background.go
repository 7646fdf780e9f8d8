// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - runs a set of goroutines and waits for them
//
// A process either runs until told to shut down (use Stop) or
// finishes of its own accord when its work is done (use Wait).
package background

// Process - type signature for a background process
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// the shutdown and completed channels for a single process
type task struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle type for the stop/wait operations
type T struct {
	tasks []task
}

// Start - run a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		tasks: make([]task, len(processes)),
	}

	// start each background
	for i, p := range processes {
		shutdown := make(chan struct{})
		finished := make(chan struct{})
		register.tasks[i].shutdown = shutdown
		register.tasks[i].finished = finished
		go func(p Process, shutdown <-chan struct{}, finished chan<- struct{}) {
			p.Run(args, shutdown)
			close(finished)
		}(p, shutdown, finished)
	}
	return register
}

// Stop - signal all background tasks to shut down, then wait for them
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	for _, tsk := range t.tasks {
		close(tsk.shutdown)
	}

	t.Wait()
}

// Wait - wait for all background tasks to finish of their own accord
//
// used where the processes terminate themselves, e.g. when a search
// completes; such processes simply ignore their shutdown channel
func (t *T) Wait() {

	if nil == t {
		return
	}

	for _, tsk := range t.tasks {
		<-tsk.finished
	}
}
