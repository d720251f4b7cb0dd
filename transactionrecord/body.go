// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/iotaledger/hive.go/marshalutil"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/account"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/merkle"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/wire"
)

// Body - the type specific part of a transaction
//
// the set of bodies is closed: only types in this package implement it
type Body interface {
	// the tag written to the header
	Type() TagType

	// packed size computed from the current field values
	Size() int

	// append the packed body
	pack(marshalUtil *marshalutil.MarshalUtil) error
}

// scalar field types
type Amount uint64
type BlockDuration uint64
type MosaicId uint64
type MosaicNonce uint32
type NamespaceId uint64
type Timestamp uint64
type UnresolvedMosaicId uint64

// byte sizes for various fields
const (
	amountSize        = 8
	blockDurationSize = 8
	mosaicIdSize      = 8
	namespaceIdSize   = 8
	hash256Size       = merkle.DigestLength
	reservedSize      = 4

	MosaicSize = mosaicIdSize + amountSize
)

// Mosaic - an amount of an (unresolved) mosaic
type Mosaic struct {
	MosaicId UnresolvedMosaicId `json:"id,string"`
	Amount   Amount             `json:"amount,string"`
}

func packMosaic(marshalUtil *marshalutil.MarshalUtil, mosaic Mosaic) {
	marshalUtil.WriteUint64(uint64(mosaic.MosaicId))
	marshalUtil.WriteUint64(uint64(mosaic.Amount))
}

func unpackMosaic(r *wire.Reader) (Mosaic, error) {
	id, err := r.Uint64()
	if nil != err {
		return Mosaic{}, err
	}
	amount, err := r.Uint64()
	if nil != err {
		return Mosaic{}, err
	}
	return Mosaic{
		MosaicId: UnresolvedMosaicId(id),
		Amount:   Amount(amount),
	}, nil
}

// element codecs for sequences of fixed width values

func packAddress(marshalUtil *marshalutil.MarshalUtil, address account.Address) {
	marshalUtil.WriteBytes(address[:])
}

func unpackAddress(r *wire.Reader) (account.Address, error) {
	var address account.Address
	err := r.Fixed(address[:])
	return address, err
}

func packPublicKey(marshalUtil *marshalutil.MarshalUtil, key account.PublicKey) {
	marshalUtil.WriteBytes(key[:])
}

func unpackPublicKey(r *wire.Reader) (account.PublicKey, error) {
	var key account.PublicKey
	err := r.Fixed(key[:])
	return key, err
}

func packHash(marshalUtil *marshalutil.MarshalUtil, hash merkle.Digest) {
	marshalUtil.WriteBytes(hash[:])
}

func unpackHash(r *wire.Reader) (merkle.Digest, error) {
	var hash merkle.Digest
	err := r.Fixed(hash[:])
	return hash, err
}

func packMosaicId(marshalUtil *marshalutil.MarshalUtil, id UnresolvedMosaicId) {
	marshalUtil.WriteUint64(uint64(id))
}

func unpackMosaicId(r *wire.Reader) (UnresolvedMosaicId, error) {
	id, err := r.Uint64()
	return UnresolvedMosaicId(id), err
}

func packTag(marshalUtil *marshalutil.MarshalUtil, tag TagType) {
	marshalUtil.WriteUint16(uint16(tag))
}

func unpackTag(r *wire.Reader) (TagType, error) {
	tag, err := r.Uint16()
	return TagType(tag), err
}

// read and discard body alignment padding
//
// the value is not checked: decoding is lenient, packing always writes zero
func skipReserved(r *wire.Reader) error {
	_, err := r.Uint32()
	return err
}
