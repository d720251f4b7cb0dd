// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - transaction wire format
//
// A transaction is a fixed header followed by a body whose layout is
// selected by the 16 bit type tag in the header.  Top level
// transactions carry a signature, fee and deadline; embedded
// transactions (the inner transactions of an aggregate) do not.
//
// All integers are little endian.  Sizes, counts and lengths are
// always computed from the values being packed, never stored, so a
// value can be changed and repacked without any header going stale.
//
// Decoding never trusts a declared size beyond using it to delimit
// an entity inside its enclosing buffer: an embedded transaction
// whose size runs past the aggregate payload is rejected with
// fault.ErrPayloadOverrun rather than read into the cosignatures.
//
// Packing layout of a top level transaction:
//
//	size          uint32
//	reserved      uint32    always packed as zero
//	signature     [64]byte
//	signer        [32]byte
//	reserved      uint32    always packed as zero
//	version       uint8
//	network       uint8
//	type          uint16
//	fee           uint64
//	deadline      uint64
//	body          (depends on type)
//
// An embedded transaction has the same layout without signature, fee
// and deadline.
package transactionrecord
