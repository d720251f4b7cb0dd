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

// flags + addition count + deletion count + reserved
const restrictionFixedSize = 2 + 1 + 1 + reservedSize

// AccountAddressRestriction - allow or block addresses
type AccountAddressRestriction struct {
	Flags     AccountRestrictionFlags     `json:"restrictionFlags"`
	Additions []account.UnresolvedAddress `json:"additions"`
	Deletions []account.UnresolvedAddress `json:"deletions"`
}

// Type - address restriction tag
func (restriction *AccountAddressRestriction) Type() TagType {
	return AccountAddressRestrictionTag
}

// Size - packed body size
func (restriction *AccountAddressRestriction) Size() int {
	return restrictionFixedSize + (len(restriction.Additions)+len(restriction.Deletions))*account.AddressSize
}

func (restriction *AccountAddressRestriction) pack(marshalUtil *marshalutil.MarshalUtil) error {
	return packRestriction(marshalUtil, restriction.Flags, restriction.Additions, restriction.Deletions, packAddress)
}

func unpackAccountAddressRestriction(r *wire.Reader) (Body, error) {
	restriction := &AccountAddressRestriction{}
	err := unpackRestriction(r, &restriction.Flags, &restriction.Additions, &restriction.Deletions, unpackAddress)
	if nil != err {
		return nil, err
	}
	return restriction, nil
}

// AccountMosaicRestriction - allow or block mosaics
type AccountMosaicRestriction struct {
	Flags     AccountRestrictionFlags `json:"restrictionFlags"`
	Additions []UnresolvedMosaicId    `json:"additions"`
	Deletions []UnresolvedMosaicId    `json:"deletions"`
}

// Type - mosaic restriction tag
func (restriction *AccountMosaicRestriction) Type() TagType {
	return AccountMosaicRestrictionTag
}

// Size - packed body size
func (restriction *AccountMosaicRestriction) Size() int {
	return restrictionFixedSize + (len(restriction.Additions)+len(restriction.Deletions))*mosaicIdSize
}

func (restriction *AccountMosaicRestriction) pack(marshalUtil *marshalutil.MarshalUtil) error {
	return packRestriction(marshalUtil, restriction.Flags, restriction.Additions, restriction.Deletions, packMosaicId)
}

func unpackAccountMosaicRestriction(r *wire.Reader) (Body, error) {
	restriction := &AccountMosaicRestriction{}
	err := unpackRestriction(r, &restriction.Flags, &restriction.Additions, &restriction.Deletions, unpackMosaicId)
	if nil != err {
		return nil, err
	}
	return restriction, nil
}

// AccountOperationRestriction - allow or block outgoing transaction types
//
// the listed types are not checked against the known tags
type AccountOperationRestriction struct {
	Flags     AccountRestrictionFlags `json:"restrictionFlags"`
	Additions []TagType               `json:"additions"`
	Deletions []TagType               `json:"deletions"`
}

// Type - operation restriction tag
func (restriction *AccountOperationRestriction) Type() TagType {
	return AccountOperationRestrictionTag
}

// Size - packed body size
func (restriction *AccountOperationRestriction) Size() int {
	return restrictionFixedSize + (len(restriction.Additions)+len(restriction.Deletions))*wire.Uint16Size
}

func (restriction *AccountOperationRestriction) pack(marshalUtil *marshalutil.MarshalUtil) error {
	return packRestriction(marshalUtil, restriction.Flags, restriction.Additions, restriction.Deletions, packTag)
}

func unpackAccountOperationRestriction(r *wire.Reader) (Body, error) {
	restriction := &AccountOperationRestriction{}
	err := unpackRestriction(r, &restriction.Flags, &restriction.Additions, &restriction.Deletions, unpackTag)
	if nil != err {
		return nil, err
	}
	return restriction, nil
}

// common layout of the three restriction bodies
func packRestriction[T any](marshalUtil *marshalutil.MarshalUtil, flags AccountRestrictionFlags, additions []T, deletions []T, write wire.ElementWriter[T]) error {
	marshalUtil.WriteUint16(uint16(flags))
	if err := wire.WritePrefix(marshalUtil, wire.Prefix8, len(additions)); nil != err {
		return errors.Wrap(err, "additions")
	}
	if err := wire.WritePrefix(marshalUtil, wire.Prefix8, len(deletions)); nil != err {
		return errors.Wrap(err, "deletions")
	}
	wire.WriteReserved(marshalUtil, reservedSize)
	wire.WriteSequence(marshalUtil, additions, write)
	wire.WriteSequence(marshalUtil, deletions, write)
	return nil
}

func unpackRestriction[T any](r *wire.Reader, flags *AccountRestrictionFlags, additions *[]T, deletions *[]T, read wire.ElementReader[T]) error {
	f, err := r.Uint16()
	if nil != err {
		return err
	}
	*flags = AccountRestrictionFlags(f)

	additionCount, err := wire.ReadPrefix(r, wire.Prefix8)
	if nil != err {
		return err
	}
	deletionCount, err := wire.ReadPrefix(r, wire.Prefix8)
	if nil != err {
		return err
	}
	if err := skipReserved(r); nil != err {
		return err
	}

	*additions, err = wire.ReadSequence(r, additionCount, read)
	if nil != err {
		return errors.Wrap(err, "additions")
	}
	*deletions, err = wire.ReadSequence(r, deletionCount, read)
	if nil != err {
		return errors.Wrap(err, "deletions")
	}
	return nil
}
