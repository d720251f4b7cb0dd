// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/marshalutil"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/account"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/wire"
)

// byte sizes of the headers
const (
	HeaderSize         = 4 + 4 + account.SignatureSize + account.PublicKeySize + 4 + 1 + 1 + 2 + 8 + 8
	EmbeddedHeaderSize = 4 + 4 + account.PublicKeySize + 4 + 1 + 1 + 2

	// start of the data covered by the signature
	signingOffset = 4 + 4 + account.SignatureSize + account.PublicKeySize + 4
)

// Header - fields common to every top level transaction
type Header struct {
	Signature account.Signature `json:"signature"`
	Signer    account.PublicKey `json:"signer"`
	Version   uint8             `json:"version"`
	Network   NetworkType       `json:"network"`
	Fee       Amount            `json:"maxFee,string"`
	Deadline  Timestamp         `json:"deadline,string"`

	// alignment padding as read from the wire
	// only kept for inspection, always packed as zero
	Reserved1 uint32 `json:"-"`
	Reserved2 uint32 `json:"-"`
}

// EmbeddedHeader - fields common to every embedded transaction
type EmbeddedHeader struct {
	Signer  account.PublicKey `json:"signer"`
	Version uint8             `json:"version"`
	Network NetworkType       `json:"network"`

	// alignment padding as read from the wire
	// only kept for inspection, always packed as zero
	Reserved1 uint32 `json:"-"`
	Reserved2 uint32 `json:"-"`
}

// ensure the total size fits the size field
func checkSize(size int) error {
	if int64(size) > math.MaxUint32 {
		return errors.Wrapf(fault.ErrCountOverflow, "transaction size: %d", size)
	}
	return nil
}

// pack Header
//
// size and type come from the body; reserved fields are written as zero
func (header *Header) pack(marshalUtil *marshalutil.MarshalUtil, size int, tag TagType) {
	marshalUtil.WriteUint32(uint32(size))
	marshalUtil.WriteUint32(0)
	marshalUtil.WriteBytes(header.Signature[:])
	marshalUtil.WriteBytes(header.Signer[:])
	marshalUtil.WriteUint32(0)
	marshalUtil.WriteByte(header.Version)
	marshalUtil.WriteByte(byte(header.Network))
	marshalUtil.WriteUint16(uint16(tag))
	marshalUtil.WriteUint64(uint64(header.Fee))
	marshalUtil.WriteUint64(uint64(header.Deadline))
}

// pack EmbeddedHeader
func (header *EmbeddedHeader) pack(marshalUtil *marshalutil.MarshalUtil, size int, tag TagType) {
	marshalUtil.WriteUint32(uint32(size))
	marshalUtil.WriteUint32(0)
	marshalUtil.WriteBytes(header.Signer[:])
	marshalUtil.WriteUint32(0)
	marshalUtil.WriteByte(header.Version)
	marshalUtil.WriteByte(byte(header.Network))
	marshalUtil.WriteUint16(uint16(tag))
}

// unpack a Header from a reader bounded to exactly one transaction
//
// the size field has already been checked against the bound
func unpackHeader(r *wire.Reader) (Header, TagType, error) {
	var header Header

	if _, err := r.Uint32(); nil != err {
		return header, 0, err
	}

	reserved1, err := r.Uint32()
	if nil != err {
		return header, 0, err
	}
	header.Reserved1 = reserved1

	if err := r.Fixed(header.Signature[:]); nil != err {
		return header, 0, errors.Wrap(err, "signature")
	}
	if err := r.Fixed(header.Signer[:]); nil != err {
		return header, 0, errors.Wrap(err, "signer")
	}

	reserved2, err := r.Uint32()
	if nil != err {
		return header, 0, err
	}
	header.Reserved2 = reserved2

	header.Version, err = r.Uint8()
	if nil != err {
		return header, 0, err
	}
	header.Network, err = readEnum(r, NetworkType.IsValid, fault.ErrUnknownNetwork)
	if nil != err {
		return header, 0, err
	}

	tag, err := r.Uint16()
	if nil != err {
		return header, 0, err
	}

	fee, err := r.Uint64()
	if nil != err {
		return header, 0, errors.Wrap(err, "fee")
	}
	header.Fee = Amount(fee)

	deadline, err := r.Uint64()
	if nil != err {
		return header, 0, errors.Wrap(err, "deadline")
	}
	header.Deadline = Timestamp(deadline)

	return header, TagType(tag), nil
}

// unpack an EmbeddedHeader from a reader bounded to exactly one
// embedded transaction
func unpackEmbeddedHeader(r *wire.Reader) (EmbeddedHeader, TagType, error) {
	var header EmbeddedHeader

	if _, err := r.Uint32(); nil != err {
		return header, 0, err
	}

	reserved1, err := r.Uint32()
	if nil != err {
		return header, 0, err
	}
	header.Reserved1 = reserved1

	if err := r.Fixed(header.Signer[:]); nil != err {
		return header, 0, errors.Wrap(err, "signer")
	}

	reserved2, err := r.Uint32()
	if nil != err {
		return header, 0, err
	}
	header.Reserved2 = reserved2

	header.Version, err = r.Uint8()
	if nil != err {
		return header, 0, err
	}
	header.Network, err = readEnum(r, NetworkType.IsValid, fault.ErrUnknownNetwork)
	if nil != err {
		return header, 0, err
	}

	tag, err := r.Uint16()
	if nil != err {
		return header, 0, err
	}
	return header, TagType(tag), nil
}
