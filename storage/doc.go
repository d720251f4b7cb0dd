// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk transaction archive
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++    = concatenation of byte data
// 3. link  = transaction digest as 32 byte SHA3-256(packed transaction)
// 4. tag   = transaction type as big endian uint16 (2 bytes)
//
// Transactions:
//
//	T ++ link         - archived transactions
//	                    data: packed transaction
//
//	Y ++ tag ++ link  - transactions by type
//	                    data: empty
//
// Version:
//
//	0x00 ++ VERSION   - database layout version (big endian uint32)
package storage
