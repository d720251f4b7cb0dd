// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/merkle"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/transactionrecord"
)

const (
	cacheExpiration = 10 * time.Minute
	cacheCleanup    = 15 * time.Minute
)

// decoded transactions keyed by link
type transactionCache struct {
	c *cache.Cache
}

func newTransactionCache() *transactionCache {
	return &transactionCache{
		c: cache.New(cacheExpiration, cacheCleanup),
	}
}

func (t *transactionCache) Get(link merkle.Digest) (*transactionrecord.Transaction, bool) {
	obj, found := t.c.Get(link.String())
	if !found {
		return nil, false
	}
	return obj.(*transactionrecord.Transaction), true
}

func (t *transactionCache) Set(link merkle.Digest, transaction *transactionrecord.Transaction) {
	t.c.Set(link.String(), transaction, cache.DefaultExpiration)
}

func (t *transactionCache) Delete(link merkle.Digest) {
	t.c.Delete(link.String())
}

func (t *transactionCache) Clear() {
	t.c.Flush()
}

func (t *transactionCache) Count() int {
	return t.c.ItemCount()
}
