// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/minerd/configuration"
)

type testSettings struct {
	BatchSize  int    `gluamapper:"batch_size"`
	Scheduling string `gluamapper:"scheduling"`
	Algorithm  string `gluamapper:"algorithm"`
}

const luaFile = `
local M = {}
M.batch_size = 256
M.scheduling = "spin"
return M
`

func TestParseConfigurationFile(t *testing.T) {

	dir, err := ioutil.TempDir("", "configuration-test")
	if nil != err {
		t.Fatalf("tempdir error: %v", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.lua")
	err = ioutil.WriteFile(fileName, []byte(luaFile), 0600)
	if nil != err {
		t.Fatalf("write error: %v", err)
	}

	// defaults survive for keys absent from the file
	settings := testSettings{
		BatchSize:  120,
		Scheduling: "block",
		Algorithm:  "sha1",
	}

	err = configuration.ParseConfigurationFile(fileName, &settings)
	if nil != err {
		t.Fatalf("parse error: %v", err)
	}

	assert.Equal(t, 256, settings.BatchSize, "wrong batch size")
	assert.Equal(t, "spin", settings.Scheduling, "wrong scheduling")
	assert.Equal(t, "sha1", settings.Algorithm, "default algorithm was not preserved")
}

func TestParseMissingFile(t *testing.T) {

	settings := testSettings{}
	err := configuration.ParseConfigurationFile("/nonexistent/path/test.lua", &settings)
	assert.Error(t, err, "missing file did not error")
}
