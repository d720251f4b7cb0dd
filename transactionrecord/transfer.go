// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/marshalutil"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/account"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/wire"
)

// Transfer - move mosaics and/or a message to a recipient
//
// no mosaics or an empty message decode as nil slices
type Transfer struct {
	Recipient account.UnresolvedAddress `json:"recipient"`
	Mosaics   []Mosaic                  `json:"mosaics"`
	Message   []byte                    `json:"message"`
}

// recipient + mosaic count + message length + reserved
const transferFixedSize = account.AddressSize + 1 + 2 + reservedSize

// Type - transfer tag
func (transfer *Transfer) Type() TagType {
	return TransferTag
}

// Size - packed body size
func (transfer *Transfer) Size() int {
	return transferFixedSize + len(transfer.Mosaics)*MosaicSize + len(transfer.Message)
}

func (transfer *Transfer) pack(marshalUtil *marshalutil.MarshalUtil) error {
	packAddress(marshalUtil, transfer.Recipient)
	if err := wire.WritePrefix(marshalUtil, wire.Prefix8, len(transfer.Mosaics)); nil != err {
		return errors.Wrap(err, "mosaics")
	}
	if err := wire.WritePrefix(marshalUtil, wire.Prefix16, len(transfer.Message)); nil != err {
		return errors.Wrap(err, "message")
	}
	wire.WriteReserved(marshalUtil, reservedSize)
	wire.WriteSequence(marshalUtil, transfer.Mosaics, packMosaic)
	marshalUtil.WriteBytes(transfer.Message)
	return nil
}

func unpackTransfer(r *wire.Reader) (Body, error) {
	transfer := &Transfer{}

	recipient, err := unpackAddress(r)
	if nil != err {
		return nil, errors.Wrap(err, "recipient")
	}
	transfer.Recipient = recipient

	mosaicCount, err := wire.ReadPrefix(r, wire.Prefix8)
	if nil != err {
		return nil, err
	}
	messageSize, err := wire.ReadPrefix(r, wire.Prefix16)
	if nil != err {
		return nil, err
	}
	if err := skipReserved(r); nil != err {
		return nil, err
	}

	transfer.Mosaics, err = wire.ReadSequence(r, mosaicCount, unpackMosaic)
	if nil != err {
		return nil, errors.Wrap(err, "mosaics")
	}
	transfer.Message, err = r.Bytes(messageSize)
	if nil != err {
		return nil, errors.Wrap(err, "message")
	}
	return transfer, nil
}
