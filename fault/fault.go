// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrEmptyMessage            = InvalidError("message is empty")
	ErrInvalidAlgorithm        = InvalidError("digest algorithm is invalid")
	ErrInvalidBatchSize        = InvalidError("batch size is invalid")
	ErrInvalidDifficultyLevel  = InvalidError("difficulty level is invalid")
	ErrInvalidLoggerChannel    = InvalidError("logger channel failed")
	ErrInvalidProgressInterval = InvalidError("progress interval is invalid")
	ErrInvalidSchedulingPolicy = InvalidError("scheduling policy is invalid")
	ErrInvalidThreadCount      = InvalidError("thread count is invalid")
	ErrNonceSpaceExhausted     = ProcessError("nonce space exhausted without solution")
	ErrNotInitialised          = NotFoundError("not initialised")
	ErrSearchAlreadyRun        = ProcessError("search has already run")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
