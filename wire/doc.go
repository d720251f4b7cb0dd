// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire - primitive little-endian codecs
//
// A Reader is a bounded cursor over a byte slice; every read either
// consumes exactly the fixed width of its field or fails with
// fault.ErrTruncatedInput leaving the cursor unchanged.  Writing is
// done directly with a marshalutil.MarshalUtil.
//
// Counts and lengths are written from the live collection at encode
// time; there is no separately stored length field anywhere.
package wire
