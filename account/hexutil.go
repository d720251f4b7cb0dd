// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
)

// upper case hex as used in the node's JSON
func toHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// decode hex text into a fixed size destination
func fromHex(destination []byte, s []byte, lengthError error) error {
	if len(destination) != hex.DecodedLen(len(s)) {
		return lengthError
	}
	buffer := make([]byte, len(destination))
	if _, err := hex.Decode(buffer, s); nil != err {
		return fault.ErrInvalidHexString
	}
	copy(destination, buffer)
	return nil
}

// scan a hex token for the fmt package
func scanHex(state fmt.ScanState) ([]byte, error) {
	return state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
}
