// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/merkle"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/transactionrecord"
)

// type index key: tag ++ link
func typeKey(tag transactionrecord.TagType, link merkle.Digest) []byte {
	key := make([]byte, 2, 2+merkle.DigestLength)
	binary.BigEndian.PutUint16(key, uint16(tag))
	return append(key, link[:]...)
}

// StoreTransaction - decode and archive one packed transaction
//
// the record must decode completely with no trailing bytes
func StoreTransaction(packed transactionrecord.Packed) (merkle.Digest, error) {
	transaction, n, err := packed.Unpack()
	if nil != err {
		return merkle.Digest{}, err
	}
	if n != len(packed) {
		return merkle.Digest{}, errors.Wrapf(fault.ErrSizeMismatch, "%d trailing bytes", len(packed)-n)
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return merkle.Digest{}, fault.ErrNotInitialised
	}

	link := packed.MakeLink()

	b := newBatch()
	b.put(Pool.Transactions, link[:], packed)
	b.put(Pool.TypeIndex, typeKey(transaction.Type(), link), []byte{})
	if err := b.commit(); nil != err {
		return merkle.Digest{}, err
	}

	poolData.cache.Set(link, transaction)
	poolData.log.Debugf("stored: %s  type: %s", link, transaction.Type())
	return link, nil
}

// LoadTransaction - fetch and decode a transaction by its link
func LoadTransaction(link merkle.Digest) (*transactionrecord.Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return nil, fault.ErrNotInitialised
	}

	if transaction, ok := poolData.cache.Get(link); ok {
		return transaction, nil
	}

	packed, err := poolData.database.Get(Pool.Transactions.prefixKey(link[:]), nil)
	if leveldb.ErrNotFound == err {
		return nil, errors.Wrapf(fault.ErrTransactionNotFound, "link: %s", link)
	} else if nil != err {
		return nil, err
	}

	transaction, _, err := transactionrecord.Packed(packed).Unpack()
	if nil != err {
		poolData.log.Errorf("corrupt record: %s  error: %s", link, err)
		return nil, err
	}
	poolData.cache.Set(link, transaction)
	return transaction, nil
}

// DeleteTransaction - remove a transaction and its index entry
func DeleteTransaction(link merkle.Digest) error {
	transaction, err := LoadTransaction(link)
	if nil != err {
		return err
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return fault.ErrNotInitialised
	}

	b := newBatch()
	b.delete(Pool.Transactions, link[:])
	b.delete(Pool.TypeIndex, typeKey(transaction.Type(), link))
	if err := b.commit(); nil != err {
		return err
	}
	poolData.cache.Delete(link)
	return nil
}

// List - call f for every archived transaction in link order
//
// iteration stops at the first error returned by f
func List(f func(link merkle.Digest, packed transactionrecord.Packed) error) error {
	if nil == Pool.Transactions {
		return fault.ErrNotInitialised
	}
	return Pool.Transactions.NewFetchCursor().Map(func(key []byte, value []byte) error {
		var link merkle.Digest
		if err := merkle.DigestFromBytes(&link, key); nil != err {
			return err
		}
		return f(link, value)
	})
}

// ListByType - the links of all archived transactions of one type
func ListByType(tag transactionrecord.TagType) ([]merkle.Digest, error) {
	if nil == Pool.TypeIndex {
		return nil, fault.ErrNotInitialised
	}

	prefix := make([]byte, 2)
	binary.BigEndian.PutUint16(prefix, uint16(tag))

	cursor := Pool.TypeIndex.NewFetchCursor().Seek(prefix)
	links := []merkle.Digest(nil)
	err := cursor.Map(func(key []byte, value []byte) error {
		if uint16(tag) != binary.BigEndian.Uint16(key) {
			return errStopIteration
		}
		var link merkle.Digest
		if err := merkle.DigestFromBytes(&link, key[2:]); nil != err {
			return err
		}
		links = append(links, link)
		return nil
	})
	if errStopIteration == err {
		err = nil
	}
	return links, err
}

var errStopIteration = errors.New("stop iteration")
