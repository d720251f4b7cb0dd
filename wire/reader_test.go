// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/wire"
)

func TestLittleEndian(t *testing.T) {
	buffer := []byte{
		0x01,
		0x02, 0x01,
		0x04, 0x03, 0x02, 0x01,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
		0xff,
	}
	r := wire.NewReader(buffer)

	u8, err := r.Uint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), u8, "uint8")

	u16, err := r.Uint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), u16, "uint16")

	u32, err := r.Uint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), u32, "uint32")

	u64, err := r.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), u64, "uint64")

	i8, err := r.Int8()
	require.NoError(t, err)
	assert.Equal(t, int8(-1), i8, "int8")

	assert.True(t, r.Done(), "all consumed")
	assert.Equal(t, len(buffer), r.Offset(), "offset")
}

func TestTruncatedRead(t *testing.T) {
	r := wire.NewReader([]byte{0x01, 0x02, 0x03})

	_, err := r.Uint32()
	assert.True(t, fault.IsErrTruncated(err), "uint32 from 3 bytes: %v", err)
	assert.Equal(t, 0, r.Offset(), "failed read must not advance")

	_, err = r.Uint64()
	assert.True(t, fault.IsErrTruncated(err), "uint64 from 3 bytes: %v", err)

	_, err = r.Bytes(4)
	assert.True(t, fault.IsErrTruncated(err), "bytes: %v", err)

	var key [32]byte
	err = r.Fixed(key[:])
	assert.True(t, fault.IsErrTruncated(err), "fixed: %v", err)

	u16, err := r.Uint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0201), u16, "uint16")

	_, err = r.Uint16()
	assert.True(t, fault.IsErrTruncated(err), "uint16 from 1 byte: %v", err)

	empty := wire.NewReader(nil)
	_, err = empty.Uint8()
	assert.True(t, fault.IsErrTruncated(err), "empty: %v", err)
}

func TestPeek(t *testing.T) {
	r := wire.NewReader([]byte{0x10, 0x00, 0x00, 0x00, 0xaa})

	n, err := r.PeekUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(16), n, "peeked value")
	assert.Equal(t, 0, r.Offset(), "peek must not advance")

	n, err = r.Uint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(16), n, "read value")

	_, err = r.PeekUint32()
	assert.True(t, fault.IsErrTruncated(err), "peek past end: %v", err)
	assert.Equal(t, 4, r.Offset(), "failed peek must not advance")
}

func TestBytesAreCopied(t *testing.T) {
	buffer := []byte{0x01, 0x02, 0x03}
	r := wire.NewReader(buffer)

	b, err := r.Bytes(2)
	require.NoError(t, err)
	buffer[0] = 0xff
	assert.Equal(t, []byte{0x01, 0x02}, b, "result shares source")

	b, err = r.Bytes(0)
	require.NoError(t, err)
	assert.Nil(t, b, "zero length read")
}

func TestSubReaderIsBounded(t *testing.T) {
	r := wire.NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})

	sub, err := r.Sub(4)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Offset(), "parent advanced")
	assert.Equal(t, 4, sub.Remaining(), "sub size")

	_, err = sub.Uint64()
	assert.True(t, fault.IsErrTruncated(err), "sub read beyond bound: %v", err)

	v, err := sub.Uint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04030201), v, "sub value")
	assert.True(t, sub.Done(), "sub exhausted")

	_, err = r.Sub(3)
	assert.True(t, fault.IsErrTruncated(err), "oversized sub: %v", err)
}
