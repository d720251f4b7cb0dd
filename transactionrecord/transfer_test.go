// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/merkle"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/transactionrecord"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/util"
)

// test the packing/unpacking of a transfer carrying only a message
//
// ensures that pack->unpack returns the same original value
func TestPackTransfer(t *testing.T) {

	r := transactionrecord.New(makeHeader(20000, 1234567890), &transactionrecord.Transfer{
		Recipient: recipient,
		Message:   []byte("hello"),
	})

	expected := []byte{
		0xa5, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5,
		0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5,
		0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5,
		0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5,
		0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5,
		0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5,
		0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5,
		0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5, 0xa5,
		0x55, 0xb2, 0x98, 0x88, 0x17, 0xf7, 0xea, 0xec,
		0x37, 0x74, 0x1b, 0x82, 0x44, 0x71, 0x63, 0xca,
		0xaa, 0x5a, 0x9d, 0xb2, 0xb6, 0xf0, 0xce, 0x72,
		0x26, 0x26, 0x33, 0x8e, 0x5e, 0x3f, 0xd7, 0xf7,
		0x00, 0x00, 0x00, 0x00, 0x01, 0x90, 0x54, 0x41,
		0x20, 0x4e, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xd2, 0x02, 0x96, 0x49, 0x00, 0x00, 0x00, 0x00,
		0x90, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
		0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17,
		0x18, 0x00, 0x05, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x68, 0x65, 0x6c, 0x6c, 0x6f,
	}

	expectedTxId := merkle.Digest{
		0x5f, 0x24, 0x3d, 0xf0, 0x4e, 0xf8, 0x0f, 0xe4,
		0x13, 0x65, 0xf4, 0x2d, 0xec, 0x3a, 0x54, 0x9c,
		0x78, 0xfc, 0x8e, 0x41, 0xae, 0x82, 0x7b, 0x13,
		0xb1, 0x0a, 0x99, 0xd7, 0xa2, 0x0d, 0xca, 0xc1,
	}

	assert.Equal(t, 37, r.Body.Size(), "body size")
	assert.Equal(t, 165, r.Size(), "transaction size")

	packed, err := r.Pack()
	require.NoError(t, err, "pack")

	if !bytes.Equal(packed, expected) {
		t.Errorf("pack record: %x  expected: %x", packed, expected)
		t.Errorf("*** GENERATED Packed:\n%s", util.FormatBytes("expected", packed))
		t.Fatal("fatal error")
	}

	tag, ok := packed.Type()
	require.True(t, ok, "type peek")
	assert.Equal(t, transactionrecord.TransferTag, tag, "record type")

	txId := packed.MakeLink()
	if txId != expectedTxId {
		t.Errorf("pack tx id: %#v  expected: %#v", txId, expectedTxId)
		t.Errorf("*** GENERATED tx id:\n%s", util.FormatBytes("expectedTxId", txId[:]))
	}

	unpacked, n, err := packed.Unpack()
	require.NoError(t, err, "unpack")
	assert.Equal(t, len(packed), n, "bytes consumed")

	transfer, ok := unpacked.Body.(*transactionrecord.Transfer)
	require.True(t, ok, "did not unpack to Transfer")

	// display a JSON version for information
	item := struct {
		TxId        merkle.Digest
		Transaction *transactionrecord.Transaction
	}{
		TxId:        txId,
		Transaction: unpacked,
	}
	b, err := json.MarshalIndent(item, "", "  ")
	require.NoError(t, err, "json")
	t.Logf("Transfer: JSON: %s", b)

	assert.Nil(t, transfer.Mosaics, "no mosaics")
	if !reflect.DeepEqual(r, unpacked) {
		t.Errorf("different, original: %v  recovered: %v", r, unpacked)
	}
}

func TestTransferWithMosaics(t *testing.T) {
	body := &transactionrecord.Transfer{
		Recipient: recipient,
		Mosaics: []transactionrecord.Mosaic{
			{MosaicId: 0x85bbea6cc462b244, Amount: 1000},
			{MosaicId: 0x0dc67fbe1cad29e3, Amount: 1},
		},
		Message: []byte{0x00, 'm', 's', 'g'},
	}
	assert.Equal(t, 32+2*16+4, body.Size(), "body size")

	packed, err := transactionrecord.New(makeHeader(1, 2), body).Pack()
	require.NoError(t, err)

	// mosaic count and message length follow the recipient
	offset := transactionrecord.HeaderSize + 25
	assert.Equal(t, byte(2), packed[offset], "mosaic count")
	assert.Equal(t, []byte{0x04, 0x00}, []byte(packed[offset+1:offset+3]), "message length")
	assert.Equal(t, []byte{0x44, 0xb2, 0x62, 0xc4, 0x6c, 0xea, 0xbb, 0x85}, []byte(packed[offset+7:offset+15]), "first mosaic id")

	unpacked, _, err := packed.Unpack()
	require.NoError(t, err)
	assert.Equal(t, body, unpacked.Body)
}

// three concatenated records are walked using the consumed count
func TestUnpackConcatenated(t *testing.T) {
	var stream []byte
	var expected []*transactionrecord.Transaction
	for i := 0; i < 3; i += 1 {
		tx := transactionrecord.New(makeHeader(transactionrecord.Amount(i), 0), &transactionrecord.Transfer{
			Recipient: recipient,
			Message:   bytes.Repeat([]byte{'x'}, i+1),
		})
		packed, err := tx.Pack()
		require.NoError(t, err)
		stream = append(stream, packed...)
		expected = append(expected, tx)
	}

	for i := 0; i < 3; i += 1 {
		tx, n, err := transactionrecord.Packed(stream).Unpack()
		require.NoError(t, err, "record: %d", i)
		assert.Equal(t, expected[i], tx, "record: %d", i)
		stream = stream[n:]
	}
	assert.Empty(t, stream, "all consumed")
}

// empty and nil collections pack identically and decode as nil
func TestTransferEmptyCollections(t *testing.T) {
	empty, err := transactionrecord.New(makeHeader(0, 0), &transactionrecord.Transfer{
		Recipient: recipient,
		Mosaics:   []transactionrecord.Mosaic{},
		Message:   []byte{},
	}).Pack()
	require.NoError(t, err, "pack empty")

	absent, err := transactionrecord.New(makeHeader(0, 0), &transactionrecord.Transfer{
		Recipient: recipient,
	}).Pack()
	require.NoError(t, err, "pack nil")
	assert.Equal(t, absent, empty, "same bytes")

	unpacked, _, err := empty.Unpack()
	require.NoError(t, err, "unpack")
	transfer := unpacked.Body.(*transactionrecord.Transfer)
	assert.Nil(t, transfer.Mosaics, "mosaics")
	assert.Nil(t, transfer.Message, "message")
}
