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

// MultisigAccountModification - change cosignatories and thresholds
type MultisigAccountModification struct {
	MinRemovalDelta  int8                `json:"minRemovalDelta"`
	MinApprovalDelta int8                `json:"minApprovalDelta"`
	Additions        []account.PublicKey `json:"publicKeyAdditions"`
	Deletions        []account.PublicKey `json:"publicKeyDeletions"`
}

// two deltas + two counts + reserved
const multisigFixedSize = 1 + 1 + 1 + 1 + reservedSize

// Type - multisig modification tag
func (modification *MultisigAccountModification) Type() TagType {
	return MultisigAccountModificationTag
}

// Size - packed body size
func (modification *MultisigAccountModification) Size() int {
	return multisigFixedSize + (len(modification.Additions)+len(modification.Deletions))*account.PublicKeySize
}

func (modification *MultisigAccountModification) pack(marshalUtil *marshalutil.MarshalUtil) error {
	marshalUtil.WriteByte(byte(modification.MinRemovalDelta))
	marshalUtil.WriteByte(byte(modification.MinApprovalDelta))
	if err := wire.WritePrefix(marshalUtil, wire.Prefix8, len(modification.Additions)); nil != err {
		return errors.Wrap(err, "additions")
	}
	if err := wire.WritePrefix(marshalUtil, wire.Prefix8, len(modification.Deletions)); nil != err {
		return errors.Wrap(err, "deletions")
	}
	wire.WriteReserved(marshalUtil, reservedSize)
	wire.WriteSequence(marshalUtil, modification.Additions, packPublicKey)
	wire.WriteSequence(marshalUtil, modification.Deletions, packPublicKey)
	return nil
}

func unpackMultisigAccountModification(r *wire.Reader) (Body, error) {
	modification := &MultisigAccountModification{}

	var err error
	modification.MinRemovalDelta, err = r.Int8()
	if nil != err {
		return nil, err
	}
	modification.MinApprovalDelta, err = r.Int8()
	if nil != err {
		return nil, err
	}
	additionCount, err := wire.ReadPrefix(r, wire.Prefix8)
	if nil != err {
		return nil, err
	}
	deletionCount, err := wire.ReadPrefix(r, wire.Prefix8)
	if nil != err {
		return nil, err
	}
	if err := skipReserved(r); nil != err {
		return nil, err
	}

	modification.Additions, err = wire.ReadSequence(r, additionCount, unpackPublicKey)
	if nil != err {
		return nil, errors.Wrap(err, "additions")
	}
	modification.Deletions, err = wire.ReadSequence(r, deletionCount, unpackPublicKey)
	if nil != err {
		return nil, errors.Wrap(err, "deletions")
	}
	return modification, nil
}
