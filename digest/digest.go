// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/bitmark-inc/minerd/fault"
)

// Length - number of bytes in a digest
//
// all algorithms produce exactly this many bytes so the leading 32
// bit extraction is uniform
const Length = 20

// supported algorithm names for the configuration file
const (
	SHA1   = "sha1"
	SHA256 = "sha256"
	Argon2 = "argon2"
)

// internal argon2id parameters (only for the argon2 algorithm)
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // KiB
	argon2Threads = 1
)

// Digest - type for a digest
// stored and displayed as big endian
type Digest [Length]byte

// Hasher - the one-way function used by the search
//
// implementations are stateless and safe for concurrent use without
// synchronisation
type Hasher interface {
	Digest(data []byte) Digest
}

// NewHasher - select the digest algorithm by name
// an empty name selects SHA-1, the default
func NewHasher(algorithm string) (Hasher, error) {
	switch algorithm {
	case "", SHA1:
		return sha1Hasher{}, nil
	case SHA256:
		return sha256Hasher{}, nil
	case Argon2:
		return argon2Hasher{}, nil
	default:
		return nil, fault.ErrInvalidAlgorithm
	}
}

// Front32 - the leading 32 bits of the digest as a big endian word
//
// this is the part compared against the difficulty mask
func (digest Digest) Front32() uint32 {
	return binary.BigEndian.Uint32(digest[:4])
}

// String - convert a binary digest to upper case hex for use by the
// fmt package (for %s)
func (digest Digest) String() string {
	return fmt.Sprintf("%X", digest[:])
}

// GoString - convert a binary digest to hex string for use by the fmt
// package (for %#v)
func (digest Digest) GoString() string {
	return "<digest:" + digest.String() + ">"
}

// SHA-1, the default algorithm
type sha1Hasher struct{}

func (sha1Hasher) Digest(data []byte) Digest {
	return Digest(sha1.Sum(data))
}

// SHA-256 truncated to Length bytes
type sha256Hasher struct{}

func (sha256Hasher) Digest(data []byte) Digest {
	sum := sha256.Sum256(data)
	var digest Digest
	copy(digest[:], sum[:Length])
	return digest
}

// memory-hard alternative; the data doubles as the salt so the
// function stays a pure function of its input
type argon2Hasher struct{}

func (argon2Hasher) Digest(data []byte) Digest {
	sum := argon2.IDKey(data, data, argon2Time, argon2Memory, argon2Threads, Length)
	var digest Digest
	copy(digest[:], sum)
	return digest
}
