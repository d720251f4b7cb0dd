// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/cockroachdb/errors"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/wire"
)

type unpacker func(r *wire.Reader) (Body, error)

// body decoder for each tag
//
// filled by init since the aggregate decoders recurse through unpackBody
var unpackers map[TagType]unpacker

func init() {
	unpackers = map[TagType]unpacker{
		AccountLinkTag:                 unpackAccountLink,
		TransferTag:                    unpackTransfer,
		MultisigAccountModificationTag: unpackMultisigAccountModification,
		AggregateCompleteTag:           unpackAggregateComplete,
		AggregateBondedTag:             unpackAggregateBonded,
		HashLockTag:                    unpackHashLock,
		SecretLockTag:                  unpackSecretLock,
		SecretProofTag:                 unpackSecretProof,
		MosaicDefinitionTag:            unpackMosaicDefinition,
		MosaicSupplyChangeTag:          unpackMosaicSupplyChange,
		NamespaceRegistrationTag:       unpackNamespaceRegistration,
		AddressAliasTag:                unpackAddressAlias,
		MosaicAliasTag:                 unpackMosaicAlias,
		AccountAddressRestrictionTag:   unpackAccountAddressRestriction,
		AccountMosaicRestrictionTag:    unpackAccountMosaicRestriction,
		AccountOperationRestrictionTag: unpackAccountOperationRestriction,
	}
}

// Unpack - turn a byte slice into a transaction
//
// decodes the transaction at the start of record and returns the
// number of bytes it occupied so concatenated records can be walked
func (record Packed) Unpack() (*Transaction, int, error) {
	r := wire.NewReader(record)

	entity, err := boundEntity(r, HeaderSize, fault.ErrTruncatedInput)
	if nil != err {
		return nil, 0, err
	}

	header, tag, err := unpackHeader(entity)
	if nil != err {
		return nil, 0, err
	}

	body, err := unpackBody(entity, tag)
	if nil != err {
		return nil, 0, err
	}

	return New(header, body), r.Offset(), nil
}

// UnpackEmbedded - turn a byte slice into an embedded transaction
func (record Packed) UnpackEmbedded() (*EmbeddedTransaction, int, error) {
	r := wire.NewReader(record)
	transaction, err := unpackEmbedded(r, fault.ErrTruncatedInput)
	if nil != err {
		return nil, 0, err
	}
	return transaction, r.Offset(), nil
}

// decode one embedded transaction
//
// a declared size beyond the end of r is reported as limit
func unpackEmbedded(r *wire.Reader, limit error) (*EmbeddedTransaction, error) {
	entity, err := boundEntity(r, EmbeddedHeaderSize, limit)
	if nil != err {
		return nil, err
	}

	header, tag, err := unpackEmbeddedHeader(entity)
	if nil != err {
		return nil, err
	}
	if tag.IsAggregate() {
		return nil, errors.Wrap(fault.ErrNotEmbeddable, tag.String())
	}

	body, err := unpackBody(entity, tag)
	if nil != err {
		return nil, err
	}

	return NewEmbedded(header, body), nil
}

// consume the next entity from r using its size field and return a
// reader bounded to it
func boundEntity(r *wire.Reader, headerSize int, limit error) (*wire.Reader, error) {
	if r.Remaining() < wire.Uint32Size {
		return nil, errors.Wrapf(limit, "size field at offset: %d", r.Offset())
	}
	size, err := r.PeekUint32()
	if nil != err {
		return nil, err
	}
	if int64(size) < int64(headerSize) {
		return nil, errors.Wrapf(fault.ErrInvalidSize, "size: %d minimum: %d", size, headerSize)
	}
	if int64(size) > int64(r.Remaining()) {
		return nil, errors.Wrapf(limit, "size: %d remaining: %d", size, r.Remaining())
	}
	return r.Sub(int(size))
}

// decode a body that must exactly fill the rest of entity
func unpackBody(entity *wire.Reader, tag TagType) (Body, error) {
	unpack, ok := unpackers[tag]
	if !ok {
		return nil, errors.Wrapf(fault.ErrUnknownTransactionType, "type: 0x%04x", uint16(tag))
	}

	body, err := unpack(entity)
	if nil != err {
		return nil, errors.Wrap(err, tag.String())
	}
	if !entity.Done() {
		return nil, errors.Wrapf(fault.ErrSizeMismatch, "%s: %d bytes unread", tag, entity.Remaining())
	}
	return body, nil
}
