// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
)

// PoolHandle - access to one prefixed table
type PoolHandle struct {
	prefix   byte
	limit    []byte
	database *leveldb.DB
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// the whole key range of the pool
func (p *PoolHandle) keyRange() *ldb_util.Range {
	return &ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		return fault.ErrDatabaseIsNotSet
	}
	return p.database.Put(p.prefixKey(key), value, nil)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		return fault.ErrDatabaseIsNotSet
	}
	return p.database.Delete(p.prefixKey(key), nil)
}

// Get - read a value for a given key
//
// a missing key returns nil without error
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		return nil, fault.ErrDatabaseIsNotSet
	}
	value, err := p.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) (bool, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		return false, fault.ErrDatabaseIsNotSet
	}
	return p.database.Has(p.prefixKey(key), nil)
}

// batch - several pool writes applied atomically
type batch struct {
	database *leveldb.DB
	batch    leveldb.Batch
}

func newBatch() *batch {
	return &batch{
		database: poolData.database,
	}
}

func (b *batch) put(p *PoolHandle, key []byte, value []byte) {
	b.batch.Put(p.prefixKey(key), value)
}

func (b *batch) delete(p *PoolHandle, key []byte) {
	b.batch.Delete(p.prefixKey(key))
}

func (b *batch) commit() error {
	if nil == b.database {
		return fault.ErrDatabaseIsNotSet
	}
	return b.database.Write(&b.batch, nil)
}
