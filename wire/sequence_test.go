// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire_test

import (
	"testing"

	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/wire"
)

func readUint16(r *wire.Reader) (uint16, error) {
	return r.Uint16()
}

func writeUint16(marshalUtil *marshalutil.MarshalUtil, item uint16) {
	marshalUtil.WriteUint16(item)
}

func TestPrefixedSequence(t *testing.T) {
	items := []uint16{0x0102, 0x0304, 0x0506}

	m := marshalutil.New()
	err := wire.WritePrefixedSequence(m, wire.Prefix8, items, writeUint16)
	require.NoError(t, err)

	expected := []byte{0x03, 0x02, 0x01, 0x04, 0x03, 0x06, 0x05}
	assert.Equal(t, expected, m.Bytes(), "packed sequence")

	r := wire.NewReader(m.Bytes())
	recovered, err := wire.ReadPrefixedSequence(r, wire.Prefix8, readUint16)
	require.NoError(t, err)
	assert.Equal(t, items, recovered, "round trip")
	assert.True(t, r.Done(), "all consumed")
}

func TestPrefixFollowsLiveCollection(t *testing.T) {
	items := []uint16{1, 2}

	m := marshalutil.New()
	require.NoError(t, wire.WritePrefixedSequence(m, wire.Prefix8, items, writeUint16))
	assert.Equal(t, byte(2), m.Bytes()[0], "initial count")

	items = append(items, 3)
	m = marshalutil.New()
	require.NoError(t, wire.WritePrefixedSequence(m, wire.Prefix8, items, writeUint16))
	assert.Equal(t, byte(3), m.Bytes()[0], "count after append")
}

func TestEmptySequence(t *testing.T) {
	m := marshalutil.New()
	require.NoError(t, wire.WritePrefixedSequence(m, wire.Prefix8, []uint16{}, writeUint16))
	assert.Equal(t, []byte{0x00}, m.Bytes(), "empty sequence")

	recovered, err := wire.ReadPrefixedSequence(wire.NewReader(m.Bytes()), wire.Prefix8, readUint16)
	require.NoError(t, err)
	assert.Equal(t, 0, len(recovered), "no elements")
}

func TestTruncatedSequence(t *testing.T) {
	// claims three elements, carries one and a half
	r := wire.NewReader([]byte{0x03, 0x01, 0x00, 0x02})
	_, err := wire.ReadPrefixedSequence(r, wire.Prefix8, readUint16)
	assert.True(t, fault.IsErrTruncated(err), "truncated sequence: %v", err)
}

func TestPrefixOverflow(t *testing.T) {
	items := make([]uint16, 256)
	err := wire.WritePrefixedSequence(marshalutil.New(), wire.Prefix8, items, writeUint16)
	assert.True(t, fault.IsErrLength(err), "256 items in 8 bit prefix: %v", err)

	err = wire.WritePrefixedBytes(marshalutil.New(), wire.Prefix16, make([]byte, 0x10000))
	assert.True(t, fault.IsErrLength(err), "65536 bytes in 16 bit prefix: %v", err)

	assert.NoError(t, wire.CheckPrefix(wire.Prefix8, 255), "255 fits")
	assert.NoError(t, wire.CheckPrefix(wire.Prefix16, 65535), "65535 fits")
}

func TestPrefixedBytes(t *testing.T) {
	m := marshalutil.New()
	require.NoError(t, wire.WritePrefixedBytes(m, wire.Prefix16, []byte("hello")))
	assert.Equal(t, []byte{0x05, 0x00, 'h', 'e', 'l', 'l', 'o'}, m.Bytes(), "packed blob")

	b, err := wire.ReadPrefixedBytes(wire.NewReader(m.Bytes()), wire.Prefix16)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), b, "blob")

	_, err = wire.ReadPrefixedBytes(wire.NewReader([]byte{0x06, 0x00, 'h'}), wire.Prefix16)
	assert.True(t, fault.IsErrTruncated(err), "short blob: %v", err)
}

func TestReserved(t *testing.T) {
	m := marshalutil.New()
	wire.WriteReserved(m, 4)
	assert.Equal(t, []byte{0, 0, 0, 0}, m.Bytes(), "reserved padding")
}
