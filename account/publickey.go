// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"fmt"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
)

// PublicKeySize - bytes in a public key
const PublicKeySize = 32

// PublicKey - the type for a signer or cosigner key
type PublicKey [PublicKeySize]byte

// PublicKeyFromBytes - validate and copy a byte slice
func PublicKeyFromBytes(buffer []byte) (PublicKey, error) {
	var key PublicKey
	if PublicKeySize != len(buffer) {
		return key, fault.ErrInvalidPublicKeyLength
	}
	copy(key[:], buffer)
	return key, nil
}

// String - upper case hex for the fmt package (for %s)
func (key PublicKey) String() string {
	return toHex(key[:])
}

// GoString - for the fmt package (for %#v)
func (key PublicKey) GoString() string {
	return "<public-key:" + toHex(key[:]) + ">"
}

// Scan - for the fmt package scan routines
func (key *PublicKey) Scan(state fmt.ScanState, verb rune) error {
	token, err := scanHex(state)
	if nil != err {
		return err
	}
	return key.UnmarshalText(token)
}

// MarshalText - convert key to hex text
func (key PublicKey) MarshalText() ([]byte, error) {
	return []byte(toHex(key[:])), nil
}

// UnmarshalText - convert hex text to a key
func (key *PublicKey) UnmarshalText(s []byte) error {
	return fromHex(key[:], s, fault.ErrInvalidPublicKeyLength)
}
