// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Transaction codec utility
//
// This program decodes hex encoded catapult transactions to JSON,
// computes their links and aggregate transactions hashes, and keeps
// an archive of decoded transactions in a LevelDB database.
package main
