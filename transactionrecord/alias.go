// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/marshalutil"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/account"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/wire"
)

// MosaicAlias - attach a namespace to a mosaic
type MosaicAlias struct {
	NamespaceId NamespaceId `json:"namespaceId,string"`
	MosaicId    MosaicId    `json:"mosaicId,string"`
	Action      AliasAction `json:"aliasAction"`
}

const mosaicAliasSize = namespaceIdSize + mosaicIdSize + 1

// Type - mosaic alias tag
func (alias *MosaicAlias) Type() TagType {
	return MosaicAliasTag
}

// Size - packed body size
func (alias *MosaicAlias) Size() int {
	return mosaicAliasSize
}

func (alias *MosaicAlias) pack(marshalUtil *marshalutil.MarshalUtil) error {
	marshalUtil.WriteUint64(uint64(alias.NamespaceId))
	marshalUtil.WriteUint64(uint64(alias.MosaicId))
	marshalUtil.WriteByte(byte(alias.Action))
	return nil
}

func unpackMosaicAlias(r *wire.Reader) (Body, error) {
	namespaceId, err := r.Uint64()
	if nil != err {
		return nil, err
	}
	mosaicId, err := r.Uint64()
	if nil != err {
		return nil, err
	}
	action, err := readEnum(r, AliasAction.isValid, fault.ErrUnknownAction)
	if nil != err {
		return nil, err
	}
	return &MosaicAlias{
		NamespaceId: NamespaceId(namespaceId),
		MosaicId:    MosaicId(mosaicId),
		Action:      action,
	}, nil
}

// AddressAlias - attach a namespace to an address
type AddressAlias struct {
	NamespaceId NamespaceId     `json:"namespaceId,string"`
	Address     account.Address `json:"address"`
	Action      AliasAction     `json:"aliasAction"`
}

const addressAliasSize = namespaceIdSize + account.AddressSize + 1

// Type - address alias tag
func (alias *AddressAlias) Type() TagType {
	return AddressAliasTag
}

// Size - packed body size
func (alias *AddressAlias) Size() int {
	return addressAliasSize
}

func (alias *AddressAlias) pack(marshalUtil *marshalutil.MarshalUtil) error {
	marshalUtil.WriteUint64(uint64(alias.NamespaceId))
	packAddress(marshalUtil, alias.Address)
	marshalUtil.WriteByte(byte(alias.Action))
	return nil
}

func unpackAddressAlias(r *wire.Reader) (Body, error) {
	namespaceId, err := r.Uint64()
	if nil != err {
		return nil, err
	}
	address, err := unpackAddress(r)
	if nil != err {
		return nil, errors.Wrap(err, "address")
	}
	action, err := readEnum(r, AliasAction.isValid, fault.ErrUnknownAction)
	if nil != err {
		return nil, err
	}
	return &AddressAlias{
		NamespaceId: NamespaceId(namespaceId),
		Address:     address,
		Action:      action,
	}, nil
}
