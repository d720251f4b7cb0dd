// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/marshalutil"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/account"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
)

// Transaction - a top level transaction
type Transaction struct {
	Header
	Body Body `json:"body"`
}

// EmbeddedTransaction - a transaction inside an aggregate
type EmbeddedTransaction struct {
	EmbeddedHeader
	Body Body `json:"body"`
}

// New - create a transaction from a header and a body
func New(header Header, body Body) *Transaction {
	return &Transaction{
		Header: header,
		Body:   body,
	}
}

// NewEmbedded - create an embedded transaction from a header and a body
func NewEmbedded(header EmbeddedHeader, body Body) *EmbeddedTransaction {
	return &EmbeddedTransaction{
		EmbeddedHeader: header,
		Body:           body,
	}
}

// Type - tag of the body, zero if there is no body
func (transaction *Transaction) Type() TagType {
	if nil == transaction.Body {
		return 0
	}
	return transaction.Body.Type()
}

// Size - packed size of the whole transaction
func (transaction *Transaction) Size() int {
	if nil == transaction.Body {
		return HeaderSize
	}
	return HeaderSize + transaction.Body.Size()
}

// Pack - turn a transaction into its wire form
//
// the size field is computed here, the signature is packed as given
func (transaction *Transaction) Pack() (Packed, error) {
	if nil == transaction.Body {
		return nil, fault.ErrInvalidStructPointer
	}

	size := transaction.Size()
	if err := checkSize(size); nil != err {
		return nil, err
	}

	marshalUtil := marshalutil.New()
	transaction.Header.pack(marshalUtil, size, transaction.Body.Type())
	if err := transaction.Body.pack(marshalUtil); nil != err {
		return nil, errors.Wrap(err, transaction.Body.Type().String())
	}
	return finish(marshalUtil, size)
}

// SigningPayload - the packed bytes covered by the signature
//
// everything after the signer and its padding: version, network, type,
// fee, deadline and body
func (transaction *Transaction) SigningPayload() ([]byte, error) {
	packed, err := transaction.Pack()
	if nil != err {
		return nil, err
	}
	return packed[signingOffset:], nil
}

// WithSignature - a copy of the transaction carrying signature
func (transaction *Transaction) WithSignature(signature account.Signature) *Transaction {
	signed := *transaction
	signed.Signature = signature
	return &signed
}

// ToEmbedded - the embedded form of the transaction for inclusion in
// an aggregate
func (transaction *Transaction) ToEmbedded() (*EmbeddedTransaction, error) {
	if nil == transaction.Body {
		return nil, fault.ErrInvalidStructPointer
	}
	if transaction.Body.Type().IsAggregate() {
		return nil, errors.Wrap(fault.ErrNotEmbeddable, transaction.Body.Type().String())
	}
	header := EmbeddedHeader{
		Signer:  transaction.Signer,
		Version: transaction.Version,
		Network: transaction.Network,
	}
	return NewEmbedded(header, transaction.Body), nil
}

// Type - tag of the body, zero if there is no body
func (transaction *EmbeddedTransaction) Type() TagType {
	if nil == transaction || nil == transaction.Body {
		return 0
	}
	return transaction.Body.Type()
}

// Size - packed size of the whole embedded transaction
//
// a nil transaction has no size; Pack rejects it
func (transaction *EmbeddedTransaction) Size() int {
	if nil == transaction {
		return 0
	}
	if nil == transaction.Body {
		return EmbeddedHeaderSize
	}
	return EmbeddedHeaderSize + transaction.Body.Size()
}

// Pack - turn an embedded transaction into its wire form
func (transaction *EmbeddedTransaction) Pack() (Packed, error) {
	if nil == transaction || nil == transaction.Body {
		return nil, fault.ErrInvalidStructPointer
	}
	tag := transaction.Body.Type()
	if tag.IsAggregate() {
		return nil, errors.Wrap(fault.ErrNotEmbeddable, tag.String())
	}

	size := transaction.Size()
	if err := checkSize(size); nil != err {
		return nil, err
	}

	marshalUtil := marshalutil.New()
	transaction.EmbeddedHeader.pack(marshalUtil, size, tag)
	if err := transaction.Body.pack(marshalUtil); nil != err {
		return nil, errors.Wrap(err, tag.String())
	}
	return finish(marshalUtil, size)
}

// the written length must agree with the size field
func finish(marshalUtil *marshalutil.MarshalUtil, size int) (Packed, error) {
	packed := marshalUtil.Bytes()
	if size != len(packed) {
		return nil, errors.Wrapf(fault.ErrSizeMismatch, "declared: %d packed: %d", size, len(packed))
	}
	return packed, nil
}
