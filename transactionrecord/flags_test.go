// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/account"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/transactionrecord"
)

func TestMosaicFlagsRoundTrip(t *testing.T) {
	tests := []struct {
		flags    transactionrecord.MosaicFlags
		name     string
		byteForm byte
	}{
		{transactionrecord.MosaicFlagNone, "None", 0x00},
		{transactionrecord.MosaicFlagTransferable, "Transferable", 0x02},
		{transactionrecord.MosaicFlagsAll, "SupplyMutable|Transferable|Restrictable", 0x07},
		{transactionrecord.MosaicFlagSupplyMutable | 0x80, "SupplyMutable|0x80", 0x81},
		{0xf8, "0xf8", 0xf8},
	}

	for i, item := range tests {
		assert.Equal(t, item.name, item.flags.String(), "%d: name", i)

		body := &transactionrecord.MosaicDefinition{Flags: item.flags}
		packed, err := transactionrecord.New(makeHeader(0, 0), body).Pack()
		require.NoError(t, err, "%d: pack", i)
		assert.Equal(t, item.byteForm, packed[transactionrecord.HeaderSize+20], "%d: flags byte", i)

		tx, _, err := packed.Unpack()
		require.NoError(t, err, "%d: unpack", i)
		assert.Equal(t, item.flags, tx.Body.(*transactionrecord.MosaicDefinition).Flags, "%d: flags", i)
	}
}

func TestMosaicFlagsQueries(t *testing.T) {
	flags := transactionrecord.MosaicFlagSupplyMutable | transactionrecord.MosaicFlagRestrictable | 0x10
	assert.True(t, flags.Has(transactionrecord.MosaicFlagSupplyMutable))
	assert.True(t, flags.Has(transactionrecord.MosaicFlagSupplyMutable|transactionrecord.MosaicFlagRestrictable))
	assert.False(t, flags.Has(transactionrecord.MosaicFlagTransferable))
	assert.Equal(t, transactionrecord.MosaicFlags(0x10), flags.Unknown())
	assert.Equal(t, transactionrecord.MosaicFlags(0), transactionrecord.MosaicFlagsAll.Unknown())
}

func TestRestrictionFlagsRoundTrip(t *testing.T) {
	tests := []struct {
		flags transactionrecord.AccountRestrictionFlags
		name  string
	}{
		{0, "None"},
		{transactionrecord.RestrictionFlagAddress | transactionrecord.RestrictionFlagBlock, "Address|Block"},
		{transactionrecord.RestrictionFlagsAll, "Address|MosaicId|TransactionType|Outgoing|Block"},
		{transactionrecord.RestrictionFlagMosaicId | 0x0100, "MosaicId|0x100"},
	}

	for i, item := range tests {
		assert.Equal(t, item.name, item.flags.String(), "%d: name", i)

		body := &transactionrecord.AccountAddressRestriction{
			Flags:     item.flags,
			Additions: []account.UnresolvedAddress{recipient},
		}
		packed, err := transactionrecord.New(makeHeader(0, 0), body).Pack()
		require.NoError(t, err, "%d: pack", i)
		h := transactionrecord.HeaderSize
		assert.Equal(t, uint16(item.flags), binary.LittleEndian.Uint16(packed[h:]), "%d: flags field", i)

		tx, _, err := packed.Unpack()
		require.NoError(t, err, "%d: unpack", i)
		assert.Equal(t, body, tx.Body, "%d: body", i)
	}
}
