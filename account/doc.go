// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - fixed width account identifiers
//
// Keys, signatures and addresses are carried as opaque byte arrays.
// No cryptographic operation is performed here: signatures are
// produced and verified elsewhere and only copied through.
package account
