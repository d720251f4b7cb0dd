// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/merkle"
)

func TestDigest(t *testing.T) {
	d := merkle.NewDigest([]byte("hello world"))

	// printf '%s' 'hello world' | sha3sum -a 256
	stringDigest := "644BCC7E564373040999AAC89E7622F3CA71FBA1D972FD94A31C3BFBF24E3938"

	var expected merkle.Digest
	n, err := fmt.Sscan(stringDigest, &expected)
	require.NoError(t, err, "hex to digest error")
	require.Equal(t, 1, n, "scanned item count")

	assert.Equal(t, expected, d, "digest")
	assert.Equal(t, stringDigest, fmt.Sprintf("%s", d), "string form")
	assert.Equal(t, "<SHA3-256:"+stringDigest+">", fmt.Sprintf("%#v", d), "go string form")
	assert.False(t, d.IsZero(), "non-zero digest")
	assert.True(t, merkle.Digest{}.IsZero(), "zero digest")
}

func TestDigestText(t *testing.T) {
	d := merkle.NewDigest([]byte("text"))

	b, err := json.Marshal(d)
	require.NoError(t, err, "marshal")

	var recovered merkle.Digest
	err = json.Unmarshal(b, &recovered)
	require.NoError(t, err, "unmarshal")
	assert.Equal(t, d, recovered, "json round trip")

	err = recovered.UnmarshalText([]byte("0011"))
	assert.Equal(t, fault.ErrInvalidHashLength, err, "short text")

	err = recovered.UnmarshalText([]byte("zz4BCC7E564373040999AAC89E7622F3CA71FBA1D972FD94A31C3BFBF24E3938"))
	assert.Equal(t, fault.ErrInvalidHexString, err, "bad hex")
}

func TestDigestFromBytes(t *testing.T) {
	var d merkle.Digest
	buffer := make([]byte, merkle.DigestLength)
	buffer[0] = 0xaa
	buffer[31] = 0x55

	err := merkle.DigestFromBytes(&d, buffer)
	require.NoError(t, err, "from bytes")
	assert.Equal(t, byte(0xaa), d[0], "first byte")
	assert.Equal(t, byte(0x55), d[31], "last byte")

	err = merkle.DigestFromBytes(&d, buffer[1:])
	assert.True(t, fault.IsErrLength(err), "short buffer: %v", err)

	err = merkle.DigestFromBytes(&d, append(buffer, 0))
	assert.True(t, fault.IsErrLength(err), "long buffer: %v", err)
}
