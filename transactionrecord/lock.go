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
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/merkle"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/wire"
)

// HashLock - deposit funds against the hash of an aggregate bonded
type HashLock struct {
	Mosaic   Mosaic        `json:"mosaic"`
	Duration BlockDuration `json:"duration,string"`
	Hash     merkle.Digest `json:"hash"`
}

const hashLockSize = MosaicSize + blockDurationSize + hash256Size

// Type - hash lock tag
func (lock *HashLock) Type() TagType {
	return HashLockTag
}

// Size - packed body size
func (lock *HashLock) Size() int {
	return hashLockSize
}

func (lock *HashLock) pack(marshalUtil *marshalutil.MarshalUtil) error {
	packMosaic(marshalUtil, lock.Mosaic)
	marshalUtil.WriteUint64(uint64(lock.Duration))
	packHash(marshalUtil, lock.Hash)
	return nil
}

func unpackHashLock(r *wire.Reader) (Body, error) {
	mosaic, err := unpackMosaic(r)
	if nil != err {
		return nil, err
	}
	duration, err := r.Uint64()
	if nil != err {
		return nil, err
	}
	hash, err := unpackHash(r)
	if nil != err {
		return nil, errors.Wrap(err, "hash")
	}
	return &HashLock{
		Mosaic:   mosaic,
		Duration: BlockDuration(duration),
		Hash:     hash,
	}, nil
}

// SecretLock - lock funds until a proof of the secret is revealed
type SecretLock struct {
	Secret    merkle.Digest             `json:"secret"`
	Mosaic    Mosaic                    `json:"mosaic"`
	Duration  BlockDuration             `json:"duration,string"`
	Algorithm LockHashAlgorithm         `json:"hashAlgorithm"`
	Recipient account.UnresolvedAddress `json:"recipient"`
}

const secretLockSize = hash256Size + MosaicSize + blockDurationSize + 1 + account.AddressSize

// Type - secret lock tag
func (lock *SecretLock) Type() TagType {
	return SecretLockTag
}

// Size - packed body size
func (lock *SecretLock) Size() int {
	return secretLockSize
}

func (lock *SecretLock) pack(marshalUtil *marshalutil.MarshalUtil) error {
	packHash(marshalUtil, lock.Secret)
	packMosaic(marshalUtil, lock.Mosaic)
	marshalUtil.WriteUint64(uint64(lock.Duration))
	marshalUtil.WriteByte(byte(lock.Algorithm))
	packAddress(marshalUtil, lock.Recipient)
	return nil
}

func unpackSecretLock(r *wire.Reader) (Body, error) {
	secret, err := unpackHash(r)
	if nil != err {
		return nil, errors.Wrap(err, "secret")
	}
	mosaic, err := unpackMosaic(r)
	if nil != err {
		return nil, err
	}
	duration, err := r.Uint64()
	if nil != err {
		return nil, err
	}
	algorithm, err := readEnum(r, LockHashAlgorithm.isValid, fault.ErrUnknownHashAlgorithm)
	if nil != err {
		return nil, err
	}
	recipient, err := unpackAddress(r)
	if nil != err {
		return nil, errors.Wrap(err, "recipient")
	}
	return &SecretLock{
		Secret:    secret,
		Mosaic:    mosaic,
		Duration:  BlockDuration(duration),
		Algorithm: algorithm,
		Recipient: recipient,
	}, nil
}

// SecretProof - reveal the proof that unlocks a secret lock
type SecretProof struct {
	Secret    merkle.Digest             `json:"secret"`
	Algorithm LockHashAlgorithm         `json:"hashAlgorithm"`
	Recipient account.UnresolvedAddress `json:"recipient"`
	Proof     []byte                    `json:"proof"`
}

// secret + proof length + algorithm + recipient
const secretProofFixedSize = hash256Size + 2 + 1 + account.AddressSize

// Type - secret proof tag
func (proof *SecretProof) Type() TagType {
	return SecretProofTag
}

// Size - packed body size
func (proof *SecretProof) Size() int {
	return secretProofFixedSize + len(proof.Proof)
}

func (proof *SecretProof) pack(marshalUtil *marshalutil.MarshalUtil) error {
	packHash(marshalUtil, proof.Secret)
	if err := wire.WritePrefix(marshalUtil, wire.Prefix16, len(proof.Proof)); nil != err {
		return errors.Wrap(err, "proof")
	}
	marshalUtil.WriteByte(byte(proof.Algorithm))
	packAddress(marshalUtil, proof.Recipient)
	marshalUtil.WriteBytes(proof.Proof)
	return nil
}

func unpackSecretProof(r *wire.Reader) (Body, error) {
	secret, err := unpackHash(r)
	if nil != err {
		return nil, errors.Wrap(err, "secret")
	}
	proofSize, err := wire.ReadPrefix(r, wire.Prefix16)
	if nil != err {
		return nil, err
	}
	algorithm, err := readEnum(r, LockHashAlgorithm.isValid, fault.ErrUnknownHashAlgorithm)
	if nil != err {
		return nil, err
	}
	recipient, err := unpackAddress(r)
	if nil != err {
		return nil, errors.Wrap(err, "recipient")
	}
	proof, err := r.Bytes(proofSize)
	if nil != err {
		return nil, errors.Wrap(err, "proof")
	}
	return &SecretProof{
		Secret:    secret,
		Algorithm: algorithm,
		Recipient: recipient,
		Proof:     proof,
	}, nil
}
