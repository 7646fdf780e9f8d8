// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value
