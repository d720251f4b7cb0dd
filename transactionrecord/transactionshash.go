// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/cockroachdb/errors"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/merkle"
)

// TransactionsHash - merkle root of the embedded transactions of an
// aggregate
//
// each leaf is the SHA3-256 of one packed embedded transaction, in
// order; no transactions gives the zero digest
func TransactionsHash(transactions []*EmbeddedTransaction) (merkle.Digest, error) {
	leaves := make([]merkle.Digest, 0, len(transactions))
	for i, transaction := range transactions {
		packed, err := transaction.Pack()
		if nil != err {
			return merkle.Digest{}, errors.Wrapf(err, "embedded transaction: %d", i)
		}
		leaves = append(leaves, packed.MakeLink())
	}
	return merkle.MerkleRoot(leaves), nil
}
