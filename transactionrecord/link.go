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

// AccountLink - delegate harvesting to a remote account
type AccountLink struct {
	RemotePublicKey account.PublicKey `json:"remotePublicKey"`
	Action          LinkAction        `json:"linkAction"`
}

const accountLinkSize = account.PublicKeySize + 1

// Type - account link tag
func (link *AccountLink) Type() TagType {
	return AccountLinkTag
}

// Size - packed body size
func (link *AccountLink) Size() int {
	return accountLinkSize
}

func (link *AccountLink) pack(marshalUtil *marshalutil.MarshalUtil) error {
	packPublicKey(marshalUtil, link.RemotePublicKey)
	marshalUtil.WriteByte(byte(link.Action))
	return nil
}

func unpackAccountLink(r *wire.Reader) (Body, error) {
	key, err := unpackPublicKey(r)
	if nil != err {
		return nil, errors.Wrap(err, "remote public key")
	}
	action, err := readEnum(r, LinkAction.isValid, fault.ErrUnknownAction)
	if nil != err {
		return nil, err
	}
	return &AccountLink{
		RemotePublicKey: key,
		Action:          action,
	}, nil
}
