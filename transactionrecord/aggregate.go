// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/marshalutil"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/merkle"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/wire"
)

// Aggregate - a group of embedded transactions with cosignatures
//
// complete aggregates carry every required cosignature, bonded ones
// collect them later against a hash lock
type Aggregate struct {
	Bonded           bool                   `json:"bonded"`
	TransactionsHash merkle.Digest          `json:"transactionsHash"`
	Transactions     []*EmbeddedTransaction `json:"transactions"`
	Cosignatures     []Cosignature          `json:"cosignatures"`
}

// transactions hash + payload size + reserved
const aggregateFixedSize = hash256Size + 4 + reservedSize

// NewAggregate - create an aggregate body with its transactions hash
// computed from the embedded transactions
func NewAggregate(bonded bool, transactions []*EmbeddedTransaction, cosignatures []Cosignature) (*Aggregate, error) {
	hash, err := TransactionsHash(transactions)
	if nil != err {
		return nil, err
	}
	return &Aggregate{
		Bonded:           bonded,
		TransactionsHash: hash,
		Transactions:     transactions,
		Cosignatures:     cosignatures,
	}, nil
}

// Type - complete or bonded aggregate tag
func (aggregate *Aggregate) Type() TagType {
	if aggregate.Bonded {
		return AggregateBondedTag
	}
	return AggregateCompleteTag
}

// PayloadSize - total size of the embedded transactions
func (aggregate *Aggregate) PayloadSize() int {
	n := 0
	for _, transaction := range aggregate.Transactions {
		n += transaction.Size()
	}
	return n
}

// Size - packed body size
func (aggregate *Aggregate) Size() int {
	return aggregateFixedSize + aggregate.PayloadSize() + len(aggregate.Cosignatures)*CosignatureSize
}

// VerifyTransactionsHash - recompute the transactions hash and compare
// it with the stored value
func (aggregate *Aggregate) VerifyTransactionsHash() (bool, error) {
	hash, err := TransactionsHash(aggregate.Transactions)
	if nil != err {
		return false, err
	}
	return hash == aggregate.TransactionsHash, nil
}

func (aggregate *Aggregate) pack(marshalUtil *marshalutil.MarshalUtil) error {
	payloadSize := aggregate.PayloadSize()
	if int64(payloadSize) > math.MaxUint32 {
		return errors.Wrapf(fault.ErrCountOverflow, "payload size: %d", payloadSize)
	}

	packHash(marshalUtil, aggregate.TransactionsHash)
	marshalUtil.WriteUint32(uint32(payloadSize))
	wire.WriteReserved(marshalUtil, reservedSize)

	for i, transaction := range aggregate.Transactions {
		packed, err := transaction.Pack()
		if nil != err {
			return errors.Wrapf(err, "embedded transaction: %d", i)
		}
		marshalUtil.WriteBytes(packed)
	}
	wire.WriteSequence(marshalUtil, aggregate.Cosignatures, packCosignature)
	return nil
}

func unpackAggregateComplete(r *wire.Reader) (Body, error) {
	return unpackAggregate(r, false)
}

func unpackAggregateBonded(r *wire.Reader) (Body, error) {
	return unpackAggregate(r, true)
}

// r is bounded to the enclosing transaction so cosignatures are read
// until it is exhausted
func unpackAggregate(r *wire.Reader, bonded bool) (Body, error) {
	aggregate := &Aggregate{
		Bonded: bonded,
	}

	hash, err := unpackHash(r)
	if nil != err {
		return nil, errors.Wrap(err, "transactions hash")
	}
	aggregate.TransactionsHash = hash

	payloadSize, err := r.Uint32()
	if nil != err {
		return nil, err
	}
	if err := skipReserved(r); nil != err {
		return nil, err
	}

	if int64(payloadSize) > int64(r.Remaining()) {
		return nil, errors.Wrapf(fault.ErrPayloadOverrun, "payload size: %d remaining: %d", payloadSize, r.Remaining())
	}
	payload, err := r.Sub(int(payloadSize))
	if nil != err {
		return nil, err
	}

	for n := 0; !payload.Done(); n += 1 {
		transaction, err := unpackEmbedded(payload, fault.ErrPayloadOverrun)
		if nil != err {
			return nil, errors.Wrapf(err, "embedded transaction: %d", n)
		}
		aggregate.Transactions = append(aggregate.Transactions, transaction)
	}

	for n := 0; !r.Done(); n += 1 {
		cosignature, err := unpackCosignature(r)
		if nil != err {
			return nil, errors.Wrapf(err, "cosignature: %d", n)
		}
		aggregate.Cosignatures = append(aggregate.Cosignatures, cosignature)
	}

	return aggregate, nil
}
