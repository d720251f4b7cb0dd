// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"fmt"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
)

// SignatureSize - bytes in a signature
const SignatureSize = 64

// Signature - the type for a signature
type Signature [SignatureSize]byte

// SignatureFromBytes - validate and copy a byte slice
func SignatureFromBytes(buffer []byte) (Signature, error) {
	var signature Signature
	if SignatureSize != len(buffer) {
		return signature, fault.ErrInvalidSignatureLength
	}
	copy(signature[:], buffer)
	return signature, nil
}

// String - convert a binary signature to hex string for use by the
// fmt package (for %s)
func (signature Signature) String() string {
	return toHex(signature[:])
}

// GoString - convert a binary signature to hex string for use by the
// fmt package (for %#v)
func (signature Signature) GoString() string {
	return "<signature:" + toHex(signature[:]) + ">"
}

// Scan - convert a text representation to a signature for use by the
// format package scan routines
func (signature *Signature) Scan(state fmt.ScanState, verb rune) error {
	token, err := scanHex(state)
	if nil != err {
		return err
	}
	return signature.UnmarshalText(token)
}

// MarshalText - convert signature to text
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(toHex(signature[:])), nil
}

// UnmarshalText - convert text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	return fromHex(signature[:], s, fault.ErrInvalidSignatureLength)
}
