// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/marshalutil"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/account"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/merkle"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/wire"
)

// byte sizes of cosignatures
const (
	CosignatureSize         = account.PublicKeySize + account.SignatureSize
	DetachedCosignatureSize = CosignatureSize + hash256Size
)

// Cosignature - an additional signature on an aggregate
type Cosignature struct {
	Signer    account.PublicKey `json:"signer"`
	Signature account.Signature `json:"signature"`
}

// DetachedCosignature - a cosignature sent separately from the
// aggregate it signs
type DetachedCosignature struct {
	Cosignature
	ParentHash merkle.Digest `json:"parentHash"`
}

// Size - packed size
func (cosignature Cosignature) Size() int {
	return CosignatureSize
}

// Pack - pack a cosignature
func (cosignature Cosignature) Pack() (Packed, error) {
	marshalUtil := marshalutil.New()
	packCosignature(marshalUtil, cosignature)
	return marshalUtil.Bytes(), nil
}

// Size - packed size
func (cosignature DetachedCosignature) Size() int {
	return DetachedCosignatureSize
}

// Pack - pack a detached cosignature
func (cosignature DetachedCosignature) Pack() (Packed, error) {
	marshalUtil := marshalutil.New()
	packCosignature(marshalUtil, cosignature.Cosignature)
	packHash(marshalUtil, cosignature.ParentHash)
	return marshalUtil.Bytes(), nil
}

// UnpackCosignature - decode a cosignature from the start of a record
func (record Packed) UnpackCosignature() (*Cosignature, int, error) {
	r := wire.NewReader(record)
	cosignature, err := unpackCosignature(r)
	if nil != err {
		return nil, 0, err
	}
	return &cosignature, r.Offset(), nil
}

// UnpackDetachedCosignature - decode a detached cosignature from the
// start of a record
func (record Packed) UnpackDetachedCosignature() (*DetachedCosignature, int, error) {
	r := wire.NewReader(record)
	cosignature, err := unpackCosignature(r)
	if nil != err {
		return nil, 0, err
	}
	parent, err := unpackHash(r)
	if nil != err {
		return nil, 0, errors.Wrap(err, "parent hash")
	}
	return &DetachedCosignature{
		Cosignature: cosignature,
		ParentHash:  parent,
	}, r.Offset(), nil
}

func packCosignature(marshalUtil *marshalutil.MarshalUtil, cosignature Cosignature) {
	marshalUtil.WriteBytes(cosignature.Signer[:])
	marshalUtil.WriteBytes(cosignature.Signature[:])
}

func unpackCosignature(r *wire.Reader) (Cosignature, error) {
	var cosignature Cosignature
	if err := r.Fixed(cosignature.Signer[:]); nil != err {
		return cosignature, errors.Wrap(err, "cosignature signer")
	}
	if err := r.Fixed(cosignature.Signature[:]); nil != err {
		return cosignature, errors.Wrap(err, "cosignature signature")
	}
	return cosignature, nil
}
