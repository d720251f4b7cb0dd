// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Codec errors fall into four classes matching the ways a buffer can
// be malformed: truncated, an unknown enumeration value, a wrong
// length and an aggregate payload overrun.  Callers add context with
// errors.Wrapf; the IsErrX predicates still classify wrapped errors.
package fault
