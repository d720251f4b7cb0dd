// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/iotaledger/hive.go/marshalutil"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/wire"
)

// MosaicDefinition - create a mosaic
type MosaicDefinition struct {
	MosaicId     MosaicId      `json:"id,string"`
	Duration     BlockDuration `json:"duration,string"`
	Nonce        MosaicNonce   `json:"nonce"`
	Flags        MosaicFlags   `json:"flags"`
	Divisibility uint8         `json:"divisibility"`
}

const mosaicDefinitionSize = mosaicIdSize + blockDurationSize + 4 + 1 + 1

// Type - mosaic definition tag
func (definition *MosaicDefinition) Type() TagType {
	return MosaicDefinitionTag
}

// Size - packed body size
func (definition *MosaicDefinition) Size() int {
	return mosaicDefinitionSize
}

func (definition *MosaicDefinition) pack(marshalUtil *marshalutil.MarshalUtil) error {
	marshalUtil.WriteUint64(uint64(definition.MosaicId))
	marshalUtil.WriteUint64(uint64(definition.Duration))
	marshalUtil.WriteUint32(uint32(definition.Nonce))
	marshalUtil.WriteByte(byte(definition.Flags))
	marshalUtil.WriteByte(definition.Divisibility)
	return nil
}

func unpackMosaicDefinition(r *wire.Reader) (Body, error) {
	id, err := r.Uint64()
	if nil != err {
		return nil, err
	}
	duration, err := r.Uint64()
	if nil != err {
		return nil, err
	}
	nonce, err := r.Uint32()
	if nil != err {
		return nil, err
	}
	flags, err := r.Uint8()
	if nil != err {
		return nil, err
	}
	divisibility, err := r.Uint8()
	if nil != err {
		return nil, err
	}
	return &MosaicDefinition{
		MosaicId:     MosaicId(id),
		Duration:     BlockDuration(duration),
		Nonce:        MosaicNonce(nonce),
		Flags:        MosaicFlags(flags),
		Divisibility: divisibility,
	}, nil
}

// MosaicSupplyChange - increase or decrease the supply of a mosaic
type MosaicSupplyChange struct {
	MosaicId UnresolvedMosaicId       `json:"mosaicId,string"`
	Delta    Amount                   `json:"delta,string"`
	Action   MosaicSupplyChangeAction `json:"action"`
}

const mosaicSupplyChangeSize = mosaicIdSize + amountSize + 1

// Type - supply change tag
func (change *MosaicSupplyChange) Type() TagType {
	return MosaicSupplyChangeTag
}

// Size - packed body size
func (change *MosaicSupplyChange) Size() int {
	return mosaicSupplyChangeSize
}

func (change *MosaicSupplyChange) pack(marshalUtil *marshalutil.MarshalUtil) error {
	marshalUtil.WriteUint64(uint64(change.MosaicId))
	marshalUtil.WriteUint64(uint64(change.Delta))
	marshalUtil.WriteByte(byte(change.Action))
	return nil
}

func unpackMosaicSupplyChange(r *wire.Reader) (Body, error) {
	id, err := r.Uint64()
	if nil != err {
		return nil, err
	}
	delta, err := r.Uint64()
	if nil != err {
		return nil, err
	}
	action, err := readEnum(r, MosaicSupplyChangeAction.isValid, fault.ErrUnknownAction)
	if nil != err {
		return nil, err
	}
	return &MosaicSupplyChange{
		MosaicId: UnresolvedMosaicId(id),
		Delta:    Amount(delta),
		Action:   action,
	}, nil
}
