// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
)

// AddressSize - bytes in a decoded address
const AddressSize = 25

// Address - a decoded account address
//
// on the wire an unresolved address may instead hold a namespace
// alias; this package does not distinguish the two
type Address [AddressSize]byte

// UnresolvedAddress - an address as it appears in a recipient field
type UnresolvedAddress = Address

// AddressFromBytes - validate and copy a byte slice
func AddressFromBytes(buffer []byte) (Address, error) {
	var address Address
	if AddressSize != len(buffer) {
		return address, fault.ErrInvalidAddressLength
	}
	copy(address[:], buffer)
	return address, nil
}

// String - upper case hex for the fmt package
func (address Address) String() string {
	return toHex(address[:])
}

// MarshalText - convert address to hex text
func (address Address) MarshalText() ([]byte, error) {
	return []byte(toHex(address[:])), nil
}

// UnmarshalText - convert hex text to an address
func (address *Address) UnmarshalText(s []byte) error {
	return fromHex(address[:], s, fault.ErrInvalidAddressLength)
}
