// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
)

// HexToBytes - decode hex text as typed on a command line
//
// an optional 0x prefix and any white space are ignored, case is not
// significant
func HexToBytes(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidHexString
	}
	return b, nil
}
