// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reporter - turn a finished search into console output
package reporter

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/minerd/mine"
)

// Summary - aggregate view of a finished search
type Summary struct {
	Found           bool
	WinnerID        uint32
	Nonce           uint64
	Digest          string
	TotalHashes     uint64
	Elapsed         time.Duration
	HashesPerSecond float64
}

// Summarise - aggregate the per-worker accounting of a result
//
// the hash total counts only fully scanned batches, matching the
// per-worker counters
func Summarise(result *mine.Result) Summary {
	summary := Summary{
		Found:    result.Found,
		WinnerID: result.WinnerID,
		Nonce:    result.Nonce,
		Digest:   result.Digest.String(),
		Elapsed:  result.Elapsed,
	}

	for _, w := range result.Workers {
		summary.TotalHashes += w.Processed
	}

	// guard against a search that finished inside one clock tick
	if seconds := result.Elapsed.Seconds(); seconds > 0 {
		summary.HashesPerSecond = float64(summary.TotalHashes) / seconds
	}

	return summary
}

// Lines - the summary formatted for the console, one line per entry
func (summary Summary) Lines() []string {
	lines := make([]string, 0, 4)

	if summary.Found {
		lines = append(lines,
			fmt.Sprintf("Solution found by thread %d:", summary.WinnerID),
			fmt.Sprintf("Nonce: %d", summary.Nonce),
			fmt.Sprintf("Hash: %s", summary.Digest),
		)
	} else {
		lines = append(lines, "No solution found")
	}

	lines = append(lines, fmt.Sprintf("%d hashes in %.2fs (%.2f hashes/sec)",
		summary.TotalHashes,
		summary.Elapsed.Seconds(),
		summary.HashesPerSecond,
	))

	return lines
}
