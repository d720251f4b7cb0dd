// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/account"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/transactionrecord"
)

// header offsets used to corrupt records
const (
	reserved1Offset = 4
	networkOffset   = 109
	typeOffset      = 110
)

func packHello(t *testing.T) transactionrecord.Packed {
	packed, err := transactionrecord.New(makeHeader(20000, 1234567890), &transactionrecord.Transfer{
		Recipient: recipient,
		Message:   []byte("hello"),
	}).Pack()
	require.NoError(t, err)
	return packed
}

func TestUnpackTruncated(t *testing.T) {
	packed := packHello(t)
	for n := 0; n < len(packed); n += 1 {
		_, _, err := packed[:n].Unpack()
		require.Error(t, err, "length: %d", n)
		assert.True(t, fault.IsErrTruncated(err), "length: %d error: %s", n, err)
	}
}

func TestUnpackEmbeddedTruncated(t *testing.T) {
	packed, err := makeInner()[0].Pack()
	require.NoError(t, err)
	for n := 0; n < len(packed); n += 1 {
		_, _, err := packed[:n].UnpackEmbedded()
		assert.ErrorIs(t, err, fault.ErrTruncatedInput, "length: %d", n)
	}
}

func TestUnpackDeclaredSize(t *testing.T) {
	packed := packHello(t)

	// smaller than a header
	binary.LittleEndian.PutUint32(packed, transactionrecord.HeaderSize-1)
	_, _, err := packed.Unpack()
	assert.ErrorIs(t, err, fault.ErrInvalidSize)
	assert.True(t, fault.IsErrLength(err))

	// too small for the body it declares
	packed = packHello(t)
	binary.LittleEndian.PutUint32(packed, uint32(len(packed)-1))
	_, _, err = packed.Unpack()
	assert.True(t, fault.IsErrTruncated(err), "error: %s", err)

	// larger than the body: one unread byte inside the entity
	packed = packHello(t)
	packed = append(packed, 0x00)
	binary.LittleEndian.PutUint32(packed, uint32(len(packed)))
	_, _, err = packed.Unpack()
	assert.ErrorIs(t, err, fault.ErrSizeMismatch)

	// trailing data beyond the declared size is left for the caller
	packed = append(packHello(t), 0xff, 0xff)
	_, n, err := packed.Unpack()
	require.NoError(t, err)
	assert.Equal(t, len(packed)-2, n)
}

func TestUnpackUnknownDiscriminants(t *testing.T) {
	packed := packHello(t)
	binary.LittleEndian.PutUint16(packed[typeOffset:], 0x1234)
	_, _, err := packed.Unpack()
	assert.ErrorIs(t, err, fault.ErrUnknownTransactionType)
	assert.True(t, fault.IsErrDiscriminant(err))

	packed = packHello(t)
	packed[networkOffset] = 0x55
	_, _, err = packed.Unpack()
	assert.ErrorIs(t, err, fault.ErrUnknownNetwork)

	h := transactionrecord.HeaderSize
	tests := []struct {
		body     transactionrecord.Body
		offset   int
		value    byte
		expected error
	}{
		{&transactionrecord.MosaicSupplyChange{}, 16, 2, fault.ErrUnknownAction},
		{&transactionrecord.MosaicAlias{}, 16, 2, fault.ErrUnknownAction},
		{&transactionrecord.AddressAlias{}, 33, 0xff, fault.ErrUnknownAction},
		{&transactionrecord.AccountLink{}, 32, 2, fault.ErrUnknownAction},
		{&transactionrecord.SecretLock{}, 56, 4, fault.ErrUnknownHashAlgorithm},
		{&transactionrecord.SecretProof{}, 34, 4, fault.ErrUnknownHashAlgorithm},
		{transactionrecord.NewRootNamespace("a", 1, 1), 16, 2, fault.ErrUnknownRegistrationType},
	}

	for i, item := range tests {
		packed, err := transactionrecord.New(makeHeader(0, 0), item.body).Pack()
		require.NoError(t, err, "%d: pack", i)
		packed[h+item.offset] = item.value
		_, _, err = packed.Unpack()
		assert.ErrorIs(t, err, item.expected, "%d: %s", i, item.body.Type())
		assert.True(t, fault.IsErrDiscriminant(err), "%d: class", i)
	}
}

// reserved padding is ignored when decoding and written as zero
func TestReservedFields(t *testing.T) {
	packed := packHello(t)
	packed[reserved1Offset] = 0x77
	packed[transactionrecord.HeaderSize+28] = 0x88 // transfer body padding

	tx, _, err := packed.Unpack()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x77), tx.Reserved1, "header padding kept")

	repacked, err := tx.Pack()
	require.NoError(t, err)
	assert.Equal(t, packHello(t), repacked, "canonical padding")
}

func TestPackCountOverflow(t *testing.T) {
	tests := []transactionrecord.Body{
		&transactionrecord.Transfer{Mosaics: make([]transactionrecord.Mosaic, 256)},
		&transactionrecord.Transfer{Message: make([]byte, 0x10000)},
		&transactionrecord.SecretProof{Proof: make([]byte, 0x10000)},
		transactionrecord.NewRootNamespace(strings.Repeat("n", 256), 1, 1),
		&transactionrecord.AccountMosaicRestriction{Deletions: make([]transactionrecord.UnresolvedMosaicId, 256)},
		&transactionrecord.MultisigAccountModification{Additions: make([]account.PublicKey, 256)},
	}
	for i, body := range tests {
		_, err := transactionrecord.New(makeHeader(0, 0), body).Pack()
		assert.ErrorIs(t, err, fault.ErrCountOverflow, "%d: %s", i, body.Type())
	}

	// the largest counts still fit
	_, err := transactionrecord.New(makeHeader(0, 0), &transactionrecord.Transfer{
		Mosaics: make([]transactionrecord.Mosaic, 255),
		Message: bytes.Repeat([]byte{'m'}, 0xffff),
	}).Pack()
	assert.NoError(t, err)
}

func TestPackInvalid(t *testing.T) {
	_, err := transactionrecord.New(makeHeader(0, 0), nil).Pack()
	assert.ErrorIs(t, err, fault.ErrInvalidStructPointer)

	_, err = transactionrecord.NewEmbedded(makeEmbeddedHeader(signer), nil).Pack()
	assert.ErrorIs(t, err, fault.ErrInvalidStructPointer)

	registration := transactionrecord.NewRootNamespace("x", 1, 1)
	registration.RegistrationType = 7
	_, err = transactionrecord.New(makeHeader(0, 0), registration).Pack()
	assert.ErrorIs(t, err, fault.ErrUnknownRegistrationType)
}

func TestPackedTypePeek(t *testing.T) {
	_, ok := transactionrecord.Packed{0x01, 0x02}.Type()
	assert.False(t, ok, "too short")
	_, ok = transactionrecord.Packed{0x01, 0x02}.EmbeddedType()
	assert.False(t, ok, "too short")

	tag, ok := packHello(t).Type()
	assert.True(t, ok)
	assert.Equal(t, transactionrecord.TransferTag, tag)
}
